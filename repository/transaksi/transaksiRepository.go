// repository/transaksi/repo.go
package transaksirepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/DurrrA/sigril-sub001/model"
)

// AdminItemRow carries a rental line item with enough catalog data to
// compute a subtotal when no line total was stored.
type AdminItemRow struct {
	ID          int64   `json:"id"`
	IDBarang    int64   `json:"id_barang"`
	BarangNama  string  `json:"barang_nama"`
	BarangHarga float64 `json:"barang_harga"`
	Jumlah      int64   `json:"jumlah"`
	HargaTotal  float64 `json:"harga_total"`
}

// AdminRow is one transaction joined with its user and, when present, the
// rental request it pays for.
type AdminRow struct {
	ID               int64                 `json:"id"`
	IDUser           int64                 `json:"id_user"`
	Username         string                `json:"username"`
	IDSewaReq        *int64                `json:"id_sewa_req"`
	BuktiPembayaran  *string               `json:"bukti_pembayaran"`
	TotalPembayaran  float64               `json:"total_pembayaran"`
	Status           model.TransaksiStatus `json:"status"`
	TanggalTransaksi time.Time             `json:"tanggal_transaksi"`
	Items            []AdminItemRow        `json:"items"`
}

// RecentOrder is the reduced shape shown on the dashboard.
type RecentOrder struct {
	ID       int64                 `json:"id"`
	Username string                `json:"username"`
	Tanggal  time.Time             `json:"tanggal"`
	Status   model.TransaksiStatus `json:"status"`
	Total    float64               `json:"total"`
}

type Repo interface {
	Insert(ctx context.Context, t *model.Transaksi) error
	UpdateStatus(ctx context.Context, id int64, status model.TransaksiStatus) (int64, error)
	ListAdmin(ctx context.Context) ([]AdminRow, error)

	// Dashboard aggregates
	CountUsersExcludingRole(ctx context.Context, role string) (int64, error)
	CountTransaksi(ctx context.Context) (int64, error)
	SumPembayaranByStatus(ctx context.Context, status model.TransaksiStatus) (float64, error)
	CountSewaByStatus(ctx context.Context, status model.SewaStatus) (int64, error)
	RecentTransaksi(ctx context.Context, limit int) ([]RecentOrder, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, t *model.Transaksi) error {
	const q = `
	INSERT INTO transaksi (id_user, id_sewa_req, bukti_pembayaran, total_pembayaran, status)
	VALUES ($1,$2,$3,$4,$5)
	RETURNING id, tanggal_transaksi`
	return r.db.QueryRowContext(ctx, q,
		t.IDUser, t.IDSewaReq, t.BuktiPembayaran, t.TotalPembayaran, t.Status,
	).Scan(&t.ID, &t.TanggalTransaksi)
}

func (r *repo) UpdateStatus(ctx context.Context, id int64, status model.TransaksiStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transaksi SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) ListAdmin(ctx context.Context) ([]AdminRow, error) {
	const q = `
	SELECT t.id, t.id_user, u.username, t.id_sewa_req, t.bukti_pembayaran,
	       t.total_pembayaran, t.status, t.tanggal_transaksi
	FROM transaksi t
	JOIN users u ON u.id = t.id_user
	ORDER BY t.tanggal_transaksi DESC, t.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AdminRow, 0)
	index := make(map[int64][]int) // sewa_req id -> positions in out
	sewaIDs := make([]int64, 0)
	for rows.Next() {
		var ar AdminRow
		if err := rows.Scan(
			&ar.ID, &ar.IDUser, &ar.Username, &ar.IDSewaReq, &ar.BuktiPembayaran,
			&ar.TotalPembayaran, &ar.Status, &ar.TanggalTransaksi,
		); err != nil {
			return nil, err
		}
		ar.Items = []AdminItemRow{}
		if ar.IDSewaReq != nil {
			if _, seen := index[*ar.IDSewaReq]; !seen {
				sewaIDs = append(sewaIDs, *ar.IDSewaReq)
			}
			index[*ar.IDSewaReq] = append(index[*ar.IDSewaReq], len(out))
		}
		out = append(out, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sewaIDs) == 0 {
		return out, nil
	}

	const itemQ = `
	SELECT si.id_sewa_req, si.id, si.id_barang, b.nama, b.harga, si.jumlah, si.harga_total
	FROM sewa_items si
	JOIN barang b ON b.id = si.id_barang
	WHERE si.id_sewa_req = ANY($1)
	ORDER BY si.id_sewa_req, si.id`
	irows, err := r.db.QueryContext(ctx, itemQ, sewaIDs)
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		var reqID int64
		var it AdminItemRow
		if err := irows.Scan(&reqID, &it.ID, &it.IDBarang, &it.BarangNama, &it.BarangHarga, &it.Jumlah, &it.HargaTotal); err != nil {
			return nil, err
		}
		for _, idx := range index[reqID] {
			out[idx].Items = append(out[idx].Items, it)
		}
	}
	return out, irows.Err()
}

func (r *repo) CountUsersExcludingRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role <> $1`, role).Scan(&n)
	return n, err
}

func (r *repo) CountTransaksi(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transaksi`).Scan(&n)
	return n, err
}

func (r *repo) SumPembayaranByStatus(ctx context.Context, status model.TransaksiStatus) (float64, error) {
	var sum float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_pembayaran),0) FROM transaksi WHERE status = $1`, status).Scan(&sum)
	return sum, err
}

func (r *repo) CountSewaByStatus(ctx context.Context, status model.SewaStatus) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sewa_req WHERE status = $1`, status).Scan(&n)
	return n, err
}

func (r *repo) RecentTransaksi(ctx context.Context, limit int) ([]RecentOrder, error) {
	const q = `
	SELECT t.id, u.username, t.tanggal_transaksi, t.status, t.total_pembayaran
	FROM transaksi t
	JOIN users u ON u.id = t.id_user
	ORDER BY t.tanggal_transaksi DESC, t.id DESC
	LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentOrder
	for rows.Next() {
		var ro RecentOrder
		if err := rows.Scan(&ro.ID, &ro.Username, &ro.Tanggal, &ro.Status, &ro.Total); err != nil {
			return nil, err
		}
		out = append(out, ro)
	}
	return out, rows.Err()
}
