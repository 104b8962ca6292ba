package transaksi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DurrrA/sigril-sub001/model"
	trepo "github.com/DurrrA/sigril-sub001/repository/transaksi"
)

type mockRepo struct {
	insertFn       func(ctx context.Context, t *model.Transaksi) error
	updateStatusFn func(ctx context.Context, id int64, status model.TransaksiStatus) (int64, error)
	listAdminFn    func(ctx context.Context) ([]trepo.AdminRow, error)

	countUsersFn func(ctx context.Context, role string) (int64, error)
	countTransFn func(ctx context.Context) (int64, error)
	sumFn        func(ctx context.Context, status model.TransaksiStatus) (float64, error)
	countSewaFn  func(ctx context.Context, status model.SewaStatus) (int64, error)
	recentFn     func(ctx context.Context, limit int) ([]trepo.RecentOrder, error)
}

var _ Repo = (*mockRepo)(nil)

func (m *mockRepo) Insert(ctx context.Context, t *model.Transaksi) error {
	return m.insertFn(ctx, t)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status model.TransaksiStatus) (int64, error) {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockRepo) ListAdmin(ctx context.Context) ([]trepo.AdminRow, error) {
	return m.listAdminFn(ctx)
}

func (m *mockRepo) CountUsersExcludingRole(ctx context.Context, role string) (int64, error) {
	return m.countUsersFn(ctx, role)
}

func (m *mockRepo) CountTransaksi(ctx context.Context) (int64, error) { return m.countTransFn(ctx) }

func (m *mockRepo) SumPembayaranByStatus(ctx context.Context, status model.TransaksiStatus) (float64, error) {
	return m.sumFn(ctx, status)
}

func (m *mockRepo) CountSewaByStatus(ctx context.Context, status model.SewaStatus) (int64, error) {
	return m.countSewaFn(ctx, status)
}

func (m *mockRepo) RecentTransaksi(ctx context.Context, limit int) ([]trepo.RecentOrder, error) {
	return m.recentFn(ctx, limit)
}

func TestCreate_StartsPending(t *testing.T) {
	m := &mockRepo{
		insertFn: func(ctx context.Context, tr *model.Transaksi) error {
			tr.ID = 11
			tr.TanggalTransaksi = time.Now()
			return nil
		},
	}
	s := New(m, nil)

	sewaID := int64(3)
	bukti := "uploads/bukti.jpg"
	tr, err := s.Create(context.Background(), 7, &sewaID, &bukti, 120000)
	require.NoError(t, err)
	require.Equal(t, int64(11), tr.ID)
	require.Equal(t, model.TransaksiPending, tr.Status)
	require.Equal(t, 120000.0, tr.TotalPembayaran)
}

func TestCreate_BadInput(t *testing.T) {
	s := New(&mockRepo{}, nil)

	_, err := s.Create(context.Background(), 0, nil, nil, 100)
	require.Equal(t, ErrBadInput, Code(err))

	_, err = s.Create(context.Background(), 7, nil, nil, 0)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestUpdateStatus_Invalid(t *testing.T) {
	s := New(&mockRepo{}, nil)

	err := s.UpdateStatus(context.Background(), 1, model.TransaksiStatus("paid"))
	require.Equal(t, ErrBadStatus, Code(err))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	m := &mockRepo{
		updateStatusFn: func(ctx context.Context, id int64, status model.TransaksiStatus) (int64, error) {
			return 0, nil
		},
	}
	s := New(m, nil)

	err := s.UpdateStatus(context.Background(), 404, model.TransaksiPaid)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestListAdmin_SubtotalFallback(t *testing.T) {
	m := &mockRepo{
		listAdminFn: func(ctx context.Context) ([]trepo.AdminRow, error) {
			return []trepo.AdminRow{{
				ID:              1,
				IDUser:          7,
				Username:        "halim",
				TotalPembayaran: 90000,
				Status:          model.TransaksiPending,
				Items: []trepo.AdminItemRow{
					{IDBarang: 1, Jumlah: 2, HargaTotal: 50000, BarangHarga: 30000},
					{IDBarang: 2, Jumlah: 3, HargaTotal: 0, BarangHarga: 15000},
				},
			}}, nil
		},
	}
	s := New(m, nil)

	rows, err := s.ListAdmin(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Items, 2)

	// Stored line total wins when present.
	require.Equal(t, 50000.0, rows[0].Items[0].Subtotal)
	// Zero line total falls back to jumlah * catalog price.
	require.Equal(t, 45000.0, rows[0].Items[1].Subtotal)
}

func TestDashboard_Stats(t *testing.T) {
	var sumStatus model.TransaksiStatus
	var sewaStatus model.SewaStatus
	var excludedRole string
	var gotLimit int

	m := &mockRepo{
		countUsersFn: func(ctx context.Context, role string) (int64, error) {
			excludedRole = role
			return 12, nil
		},
		countTransFn: func(ctx context.Context) (int64, error) { return 34, nil },
		sumFn: func(ctx context.Context, status model.TransaksiStatus) (float64, error) {
			sumStatus = status
			return 560000, nil
		},
		countSewaFn: func(ctx context.Context, status model.SewaStatus) (int64, error) {
			sewaStatus = status
			return 4, nil
		},
		recentFn: func(ctx context.Context, limit int) ([]trepo.RecentOrder, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	s := New(m, nil)

	st, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(12), st.TotalUsers)
	require.Equal(t, int64(34), st.TotalOrders)
	require.Equal(t, 560000.0, st.TotalRevenue)
	require.Equal(t, int64(4), st.ActiveRentals)
	require.NotNil(t, st.RecentOrders)
	require.Empty(t, st.RecentOrders)

	// Revenue counts PAID only, active rentals use the sewa 'active' status,
	// admins are excluded from the user count.
	require.Equal(t, model.TransaksiPaid, sumStatus)
	require.Equal(t, model.SewaActive, sewaStatus)
	require.Equal(t, model.RoleAdmin, excludedRole)
	require.Equal(t, 5, gotLimit)
}

func TestDashboard_RepoError(t *testing.T) {
	m := &mockRepo{
		countUsersFn: func(ctx context.Context, role string) (int64, error) {
			return 0, errors.New("db down")
		},
	}
	s := New(m, nil)

	_, err := s.Dashboard(context.Background())
	require.Error(t, err)
}
