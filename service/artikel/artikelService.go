package artikel

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DurrrA/sigril-sub001/model"
	arepo "github.com/DurrrA/sigril-sub001/repository/artikel"
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

type CreateReq struct {
	Judul            string
	Konten           string
	Foto             *string
	IDTag            int64
	TanggalPublikasi time.Time
	Published        bool
}

type Service interface {
	Create(ctx context.Context, req CreateReq) (*model.Artikel, error)
	// List returns non-deleted articles, newest first, with tag and comments.
	List(ctx context.Context) ([]model.Artikel, error)
	Delete(ctx context.Context, id int64) error
	AddKomentar(ctx context.Context, artikelID int64, nama, isi string) (*model.Komentar, error)

	CreateTag(ctx context.Context, nama string) (*model.Tag, error)
	ListTags(ctx context.Context) ([]model.Tag, error)
}

type service struct{ r arepo.Repo }

func New(r arepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Artikel, error) {
	if strings.TrimSpace(req.Judul) == "" || strings.TrimSpace(req.Konten) == "" || req.IDTag <= 0 {
		return nil, makeErr(ErrBadInput)
	}
	if req.TanggalPublikasi.IsZero() {
		req.TanggalPublikasi = time.Now().UTC()
	}
	a := &model.Artikel{
		Judul:            req.Judul,
		Konten:           req.Konten,
		Foto:             req.Foto,
		IDTag:            req.IDTag,
		TanggalPublikasi: req.TanggalPublikasi,
		Published:        req.Published,
		Komentar:         []model.Komentar{},
	}
	if err := s.r.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) List(ctx context.Context) ([]model.Artikel, error) {
	return s.r.List(ctx)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return makeErr(ErrBadInput)
	}
	n, err := s.r.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) AddKomentar(ctx context.Context, artikelID int64, nama, isi string) (*model.Komentar, error) {
	if artikelID <= 0 || strings.TrimSpace(nama) == "" || strings.TrimSpace(isi) == "" {
		return nil, makeErr(ErrBadInput)
	}
	ok, err := s.r.Exists(ctx, artikelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	k := &model.Komentar{IDArtikel: artikelID, Nama: nama, Isi: isi}
	if err := s.r.CreateKomentar(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *service) CreateTag(ctx context.Context, nama string) (*model.Tag, error) {
	if strings.TrimSpace(nama) == "" {
		return nil, makeErr(ErrBadInput)
	}
	t := &model.Tag{Nama: nama}
	if err := s.r.CreateTag(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.r.ListTags(ctx)
}
