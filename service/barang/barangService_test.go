package barang_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DurrrA/sigril-sub001/model"
	brepo "github.com/DurrrA/sigril-sub001/repository/barang"
	barangsvc "github.com/DurrrA/sigril-sub001/service/barang"
)

type repoMock struct {
	listFn           func(ctx context.Context) ([]model.Barang, error)
	detailFn         func(ctx context.Context, id int64) (*model.Barang, error)
	createFn         func(ctx context.Context, b *model.Barang) error
	updateFn         func(ctx context.Context, b *model.Barang) (int64, error)
	listKategoriFn   func(ctx context.Context) ([]model.Kategori, error)
	createKategoriFn func(ctx context.Context, k *model.Kategori) error
}

var _ brepo.Repo = (*repoMock)(nil)

func (m *repoMock) List(ctx context.Context) ([]model.Barang, error) { return m.listFn(ctx) }
func (m *repoMock) Detail(ctx context.Context, id int64) (*model.Barang, error) {
	return m.detailFn(ctx, id)
}
func (m *repoMock) Create(ctx context.Context, b *model.Barang) error { return m.createFn(ctx, b) }
func (m *repoMock) Update(ctx context.Context, b *model.Barang) (int64, error) {
	return m.updateFn(ctx, b)
}
func (m *repoMock) ListKategori(ctx context.Context) ([]model.Kategori, error) {
	return m.listKategoriFn(ctx)
}
func (m *repoMock) CreateKategori(ctx context.Context, k *model.Kategori) error {
	return m.createKategoriFn(ctx, k)
}

func TestCreate_Validation(t *testing.T) {
	s := barangsvc.New(&repoMock{})
	ctx := context.Background()

	cases := []model.Barang{
		{Nama: "", Stok: 1, Harga: 10, IDKategori: 1},
		{Nama: "Grill", Stok: -1, Harga: 10, IDKategori: 1},
		{Nama: "Grill", Stok: 1, Harga: -10, IDKategori: 1},
		{Nama: "Grill", Stok: 1, Harga: 10, DendaPerJam: -1, IDKategori: 1},
		{Nama: "Grill", Stok: 1, Harga: 10, IDKategori: 0},
	}
	for i := range cases {
		if err := s.Create(ctx, &cases[i]); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Barang) error {
			if b.Nama != "Grill Besar" || b.IDKategori != 2 {
				return errors.New("bad args")
			}
			b.ID = 42
			return nil
		},
	}
	s := barangsvc.New(m)

	b := model.Barang{Nama: "Grill Besar", Stok: 5, Harga: 80000, DendaPerJam: 5000, IDKategori: 2}
	if err := s.Create(context.Background(), &b); err != nil || b.ID != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", b.ID, err)
	}
}

func TestDetail_NotFound(t *testing.T) {
	m := &repoMock{
		detailFn: func(ctx context.Context, id int64) (*model.Barang, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := barangsvc.New(m)

	_, err := s.Detail(context.Background(), 99)
	if barangsvc.Code(err) != barangsvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, b *model.Barang) (int64, error) { return 0, nil },
	}
	s := barangsvc.New(m)

	b := model.Barang{ID: 99, Nama: "Grill", Stok: 1, Harga: 10, IDKategori: 1}
	if err := s.Update(context.Background(), &b); barangsvc.Code(err) != barangsvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestKategori(t *testing.T) {
	m := &repoMock{
		listKategoriFn: func(ctx context.Context) ([]model.Kategori, error) {
			return []model.Kategori{{ID: 1, Nama: "Outdoor"}}, nil
		},
		createKategoriFn: func(ctx context.Context, k *model.Kategori) error {
			k.ID = 7
			return nil
		},
	}
	s := barangsvc.New(m)

	ks, err := s.ListKategori(context.Background())
	if err != nil || len(ks) != 1 {
		t.Fatalf("ListKategori got %v %v; want one row", ks, err)
	}

	k, err := s.CreateKategori(context.Background(), "Indoor")
	if err != nil || k.ID != 7 {
		t.Fatalf("CreateKategori got %v %v; want id 7", k, err)
	}

	if _, err := s.CreateKategori(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty nama")
	}
}
