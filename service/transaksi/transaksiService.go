package transaksi

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DurrrA/sigril-sub001/model"
	trepo "github.com/DurrrA/sigril-sub001/repository/transaksi"
)

type ErrCode string

const (
	ErrBadInput  ErrCode = "BAD_INPUT"
	ErrBadStatus ErrCode = "BAD_STATUS"
	ErrNotFound  ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

// ItemRow adds the display subtotal: the stored line total when one was
// recorded, otherwise quantity times the current catalog price.
type ItemRow struct {
	trepo.AdminItemRow
	Subtotal float64 `json:"subtotal"`
}

type Row struct {
	ID               int64                 `json:"id"`
	IDUser           int64                 `json:"id_user"`
	Username         string                `json:"username"`
	IDSewaReq        *int64                `json:"id_sewa_req"`
	BuktiPembayaran  *string               `json:"bukti_pembayaran"`
	TotalPembayaran  float64               `json:"total_pembayaran"`
	Status           model.TransaksiStatus `json:"status"`
	TanggalTransaksi time.Time             `json:"tanggal_transaksi"`
	Items            []ItemRow             `json:"items"`
}

type Stats struct {
	TotalUsers    int64               `json:"total_users"`
	TotalOrders   int64               `json:"total_orders"`
	TotalRevenue  float64             `json:"total_revenue"`
	ActiveRentals int64               `json:"active_rentals"`
	RecentOrders  []trepo.RecentOrder `json:"recent_orders"`
}

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
	recentLimit   = 5
)

type Repo interface {
	Insert(ctx context.Context, t *model.Transaksi) error
	UpdateStatus(ctx context.Context, id int64, status model.TransaksiStatus) (int64, error)
	ListAdmin(ctx context.Context) ([]trepo.AdminRow, error)

	CountUsersExcludingRole(ctx context.Context, role string) (int64, error)
	CountTransaksi(ctx context.Context) (int64, error)
	SumPembayaranByStatus(ctx context.Context, status model.TransaksiStatus) (float64, error)
	CountSewaByStatus(ctx context.Context, status model.SewaStatus) (int64, error)
	RecentTransaksi(ctx context.Context, limit int) ([]trepo.RecentOrder, error)
}

type Service interface {
	Create(ctx context.Context, userID int64, idSewaReq *int64, bukti *string, total float64) (*model.Transaksi, error)
	UpdateStatus(ctx context.Context, id int64, status model.TransaksiStatus) error
	ListAdmin(ctx context.Context) ([]Row, error)
	Dashboard(ctx context.Context) (*Stats, error)
}

type service struct {
	r   Repo
	rdb *redis.Client // nil disables caching
}

func New(r Repo, rdb *redis.Client) Service { return &service{r: r, rdb: rdb} }

func (s *service) Create(ctx context.Context, userID int64, idSewaReq *int64, bukti *string, total float64) (*model.Transaksi, error) {
	if userID <= 0 || total <= 0 {
		return nil, makeErr(ErrBadInput)
	}
	t := &model.Transaksi{
		IDUser:          userID,
		IDSewaReq:       idSewaReq,
		BuktiPembayaran: bukti,
		TotalPembayaran: total,
		Status:          model.TransaksiPending,
	}
	if err := s.r.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status model.TransaksiStatus) error {
	if id <= 0 {
		return makeErr(ErrBadInput)
	}
	if !model.ValidTransaksiStatus(status) {
		return makeErr(ErrBadStatus)
	}
	n, err := s.r.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if n == 0 {
		return makeErr(ErrNotFound)
	}
	// A status change moves revenue; drop the cached dashboard.
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, statsCacheKey).Err()
	}
	return nil
}

func (s *service) ListAdmin(ctx context.Context) ([]Row, error) {
	rows, err := s.r.ListAdmin(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(rows))
	for _, ar := range rows {
		row := Row{
			ID:               ar.ID,
			IDUser:           ar.IDUser,
			Username:         ar.Username,
			IDSewaReq:        ar.IDSewaReq,
			BuktiPembayaran:  ar.BuktiPembayaran,
			TotalPembayaran:  ar.TotalPembayaran,
			Status:           ar.Status,
			TanggalTransaksi: ar.TanggalTransaksi,
			Items:            make([]ItemRow, 0, len(ar.Items)),
		}
		for _, it := range ar.Items {
			sub := it.HargaTotal
			if sub == 0 {
				sub = float64(it.Jumlah) * it.BarangHarga
			}
			row.Items = append(row.Items, ItemRow{AdminItemRow: it, Subtotal: sub})
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *service) Dashboard(ctx context.Context) (*Stats, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var cached Stats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	st := &Stats{}
	var err error
	if st.TotalUsers, err = s.r.CountUsersExcludingRole(ctx, model.RoleAdmin); err != nil {
		return nil, err
	}
	if st.TotalOrders, err = s.r.CountTransaksi(ctx); err != nil {
		return nil, err
	}
	// Revenue counts transactions whose status is exactly PAID.
	if st.TotalRevenue, err = s.r.SumPembayaranByStatus(ctx, model.TransaksiPaid); err != nil {
		return nil, err
	}
	if st.ActiveRentals, err = s.r.CountSewaByStatus(ctx, model.SewaActive); err != nil {
		return nil, err
	}
	if st.RecentOrders, err = s.r.RecentTransaksi(ctx, recentLimit); err != nil {
		return nil, err
	}
	if st.RecentOrders == nil {
		st.RecentOrders = []trepo.RecentOrder{}
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(st); err == nil {
			_ = s.rdb.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err()
		}
	}
	return st, nil
}
