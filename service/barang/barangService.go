package barang

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DurrrA/sigril-sub001/model"
	brepo "github.com/DurrrA/sigril-sub001/repository/barang"
)

type ErrCode string

const (
	ErrBadInput ErrCode = "BAD_INPUT"
	ErrNotFound ErrCode = "NOT_FOUND"
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

type Service interface {
	List(ctx context.Context) ([]model.Barang, error)
	Detail(ctx context.Context, id int64) (*model.Barang, error)
	Create(ctx context.Context, b *model.Barang) error
	Update(ctx context.Context, b *model.Barang) error

	ListKategori(ctx context.Context) ([]model.Kategori, error)
	CreateKategori(ctx context.Context, nama string) (*model.Kategori, error)
}

type service struct{ r brepo.Repo }

func New(r brepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Barang, error) {
	return s.r.List(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Barang, error) {
	if id <= 0 {
		return nil, makeErr(ErrBadInput)
	}
	b, err := s.r.Detail(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	return b, err
}

func validate(b *model.Barang) error {
	if b.Nama == "" || b.Stok < 0 || b.Harga < 0 || b.DendaPerJam < 0 || b.IDKategori <= 0 {
		return makeErr(ErrBadInput)
	}
	return nil
}

func (s *service) Create(ctx context.Context, b *model.Barang) error {
	if err := validate(b); err != nil {
		return err
	}
	return s.r.Create(ctx, b)
}

func (s *service) Update(ctx context.Context, b *model.Barang) error {
	if b.ID <= 0 {
		return makeErr(ErrBadInput)
	}
	if err := validate(b); err != nil {
		return err
	}
	n, err := s.r.Update(ctx, b)
	if err != nil {
		return err
	}
	if n == 0 {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) ListKategori(ctx context.Context) ([]model.Kategori, error) {
	return s.r.ListKategori(ctx)
}

func (s *service) CreateKategori(ctx context.Context, nama string) (*model.Kategori, error) {
	if nama == "" {
		return nil, makeErr(ErrBadInput)
	}
	k := &model.Kategori{Nama: nama}
	if err := s.r.CreateKategori(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}
