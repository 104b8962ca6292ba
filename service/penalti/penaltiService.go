package penalti

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DurrrA/sigril-sub001/model"
	prepo "github.com/DurrrA/sigril-sub001/repository/penalti"
)

type ErrCode string

const (
	ErrBadInput       ErrCode = "BAD_INPUT"
	ErrUserNotFound   ErrCode = "USER_NOT_FOUND"
	ErrBarangNotFound ErrCode = "BARANG_NOT_FOUND"
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
	// Create records a penalty charge against a user for an item.
	Create(ctx context.Context, userID, barangID int64, totalBayar float64) (*model.Penalti, error)
	List(ctx context.Context) ([]model.Penalti, error)
}

type service struct{ r prepo.Repo }

func New(r prepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, userID, barangID int64, totalBayar float64) (*model.Penalti, error) {
	if userID <= 0 || barangID <= 0 || totalBayar <= 0 {
		return nil, makeErr(ErrBadInput)
	}
	p := &model.Penalti{IDUser: userID, IDBarang: barangID, TotalBayar: totalBayar}
	if err := s.r.Insert(ctx, p); err != nil {
		if ferr := mapFKErr(err); ferr != nil {
			return nil, ferr
		}
		return nil, err
	}
	return p, nil
}

// mapFKErr turns foreign-key violations into coded not-found errors so the
// controller can answer 404 instead of 500.
func mapFKErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		switch pgErr.ConstraintName {
		case "penalti_id_user_fkey":
			return makeErr(ErrUserNotFound)
		case "penalti_id_barang_fkey":
			return makeErr(ErrBarangNotFound)
		}
		return makeErr(ErrBadInput)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]model.Penalti, error) {
	return s.r.List(ctx)
}
