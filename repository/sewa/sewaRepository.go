// repository/sewa/repo.go
package sewa

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DurrrA/sigril-sub001/model"
)

// ItemRow is a rental line item joined with its catalog entry, as shown in
// admin listings.
type ItemRow struct {
	ID         int64   `json:"id"`
	IDBarang   int64   `json:"id_barang"`
	BarangNama string  `json:"barang_nama"`
	Jumlah     int64   `json:"jumlah"`
	HargaTotal float64 `json:"harga_total"`
}

// ListRow is one rental request with its requesting user and line items.
type ListRow struct {
	ID            int64               `json:"id"`
	IDUser        int64               `json:"id_user"`
	Username      string              `json:"username"`
	Email         string              `json:"email"`
	StartDate     time.Time           `json:"start_date"`
	EndDate       time.Time           `json:"end_date"`
	Status        model.SewaStatus    `json:"status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	TotalHarga    *float64            `json:"total_harga"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []ItemRow           `json:"items"`
}

type Repo interface {
	// Availability
	CountOverlapping(ctx context.Context, barangID int64, start, end time.Time) (int64, error)
	CountOverlappingTx(ctx context.Context, tx *sql.Tx, barangID int64, start, end time.Time) (int64, error)

	// Booking (transactional steps)
	LockBarangTx(ctx context.Context, tx *sql.Tx, barangIDs []int64) ([]int64, error)
	InsertSewaReqTx(ctx context.Context, tx *sql.Tx, req *model.SewaReq) error
	InsertItemsBulkTx(ctx context.Context, tx *sql.Tx, items []model.SewaItem) error

	// Listing & status
	List(ctx context.Context) ([]ListRow, error)
	UpdateStatus(ctx context.Context, id int64, status model.SewaStatus) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

// Interval-overlap test: an existing non-cancelled request [s,e] blocks a
// query window [qs,qe] when s <= qe AND e >= qs.
const overlapQuery = `
	SELECT COUNT(*)
	FROM sewa_items si
	JOIN sewa_req sr ON sr.id = si.id_sewa_req
	WHERE si.id_barang = $1
	  AND sr.status <> 'cancelled'
	  AND sr.start_date <= $3
	  AND sr.end_date >= $2`

func (r *repo) CountOverlapping(ctx context.Context, barangID int64, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, overlapQuery, barangID, start, end).Scan(&n)
	return n, err
}

func (r *repo) CountOverlappingTx(ctx context.Context, tx *sql.Tx, barangID int64, start, end time.Time) (int64, error) {
	var n int64
	err := tx.QueryRowContext(ctx, overlapQuery, barangID, start, end).Scan(&n)
	return n, err
}

// LockBarangTx locks the catalog rows for the requested items so concurrent
// bookings for the same barang serialize on the row locks. Returns the ids
// that actually exist; the caller detects missing items by comparing lengths.
func (r *repo) LockBarangTx(ctx context.Context, tx *sql.Tx, barangIDs []int64) ([]int64, error) {
	const q = `
		SELECT id
		FROM barang
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, barangIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		found = append(found, id)
	}
	return found, rows.Err()
}

func (r *repo) InsertSewaReqTx(ctx context.Context, tx *sql.Tx, req *model.SewaReq) error {
	const q = `
		INSERT INTO sewa_req (id_user, start_date, end_date, status, payment_status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`
	return tx.QueryRowContext(ctx, q,
		req.IDUser, req.StartDate, req.EndDate, req.Status, req.PaymentStatus,
	).Scan(&req.ID, &req.CreatedAt)
}

func (r *repo) InsertItemsBulkTx(ctx context.Context, tx *sql.Tx, items []model.SewaItem) error {
	if len(items) == 0 {
		return nil
	}
	q := `INSERT INTO sewa_items (id_sewa_req, id_barang, jumlah, harga_total) VALUES `
	args := make([]any, 0, len(items)*4)
	for i, it := range items {
		if i > 0 {
			q += ","
		}
		n := i * 4
		q += fmt.Sprintf("($%d,$%d,$%d,$%d)", n+1, n+2, n+3, n+4)
		args = append(args, it.IDSewaReq, it.IDBarang, it.Jumlah, it.HargaTotal)
	}
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

func (r *repo) List(ctx context.Context) ([]ListRow, error) {
	const q = `
		SELECT sr.id, sr.id_user, u.username, u.email,
		       sr.start_date, sr.end_date, sr.status, sr.payment_status,
		       sr.total_harga, sr.created_at
		FROM sewa_req sr
		JOIN users u ON u.id = sr.id_user
		ORDER BY sr.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ListRow, 0)
	index := make(map[int64]int)
	ids := make([]int64, 0)
	for rows.Next() {
		var lr ListRow
		if err := rows.Scan(
			&lr.ID, &lr.IDUser, &lr.Username, &lr.Email,
			&lr.StartDate, &lr.EndDate, &lr.Status, &lr.PaymentStatus,
			&lr.TotalHarga, &lr.CreatedAt,
		); err != nil {
			return nil, err
		}
		lr.Items = []ItemRow{}
		index[lr.ID] = len(out)
		ids = append(ids, lr.ID)
		out = append(out, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	// Populate line items for all requests in one query.
	const itemQ = `
		SELECT si.id_sewa_req, si.id, si.id_barang, b.nama, si.jumlah, si.harga_total
		FROM sewa_items si
		JOIN barang b ON b.id = si.id_barang
		WHERE si.id_sewa_req = ANY($1)
		ORDER BY si.id_sewa_req, si.id`
	irows, err := r.db.QueryContext(ctx, itemQ, ids)
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		var reqID int64
		var it ItemRow
		if err := irows.Scan(&reqID, &it.ID, &it.IDBarang, &it.BarangNama, &it.Jumlah, &it.HargaTotal); err != nil {
			return nil, err
		}
		idx, ok := index[reqID]
		if !ok {
			continue
		}
		out[idx].Items = append(out[idx].Items, it)
	}
	return out, irows.Err()
}

func (r *repo) UpdateStatus(ctx context.Context, id int64, status model.SewaStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sewa_req SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
