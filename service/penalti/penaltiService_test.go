package penalti

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/DurrrA/sigril-sub001/model"
	prepo "github.com/DurrrA/sigril-sub001/repository/penalti"
)

type mockRepo struct {
	insertFn func(ctx context.Context, p *model.Penalti) error
	listFn   func(ctx context.Context) ([]model.Penalti, error)
}

var _ prepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Insert(ctx context.Context, p *model.Penalti) error { return m.insertFn(ctx, p) }
func (m *mockRepo) List(ctx context.Context) ([]model.Penalti, error) { return m.listFn(ctx) }

func TestCreate_Success(t *testing.T) {
	m := &mockRepo{
		insertFn: func(ctx context.Context, p *model.Penalti) error {
			p.ID = 5
			return nil
		},
	}
	s := New(m)

	p, err := s.Create(context.Background(), 7, 3, 25000)
	require.NoError(t, err)
	require.Equal(t, int64(5), p.ID)
	require.Equal(t, int64(7), p.IDUser)
	require.Equal(t, int64(3), p.IDBarang)
	require.Equal(t, 25000.0, p.TotalBayar)
}

func TestCreate_BadInput(t *testing.T) {
	s := New(&mockRepo{})
	ctx := context.Background()

	_, err := s.Create(ctx, 0, 3, 25000)
	require.Equal(t, ErrBadInput, Code(err))

	_, err = s.Create(ctx, 7, 0, 25000)
	require.Equal(t, ErrBadInput, Code(err))

	_, err = s.Create(ctx, 7, 3, 0)
	require.Equal(t, ErrBadInput, Code(err))
}

func fkViolation(constraint string) error {
	return &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: constraint,
	}
}

func TestCreate_UserNotFound(t *testing.T) {
	m := &mockRepo{
		insertFn: func(ctx context.Context, p *model.Penalti) error {
			return fkViolation("penalti_id_user_fkey")
		},
	}
	s := New(m)

	_, err := s.Create(context.Background(), 999, 3, 25000)
	require.Equal(t, ErrUserNotFound, Code(err))
}

func TestCreate_BarangNotFound(t *testing.T) {
	m := &mockRepo{
		insertFn: func(ctx context.Context, p *model.Penalti) error {
			return fkViolation("penalti_id_barang_fkey")
		},
	}
	s := New(m)

	_, err := s.Create(context.Background(), 7, 999, 25000)
	require.Equal(t, ErrBarangNotFound, Code(err))
}

func TestCreate_PlainErrorPassesThrough(t *testing.T) {
	dbErr := errors.New("db down")
	m := &mockRepo{
		insertFn: func(ctx context.Context, p *model.Penalti) error { return dbErr },
	}
	s := New(m)

	_, err := s.Create(context.Background(), 7, 3, 25000)
	require.ErrorIs(t, err, dbErr)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestList(t *testing.T) {
	m := &mockRepo{
		listFn: func(ctx context.Context) ([]model.Penalti, error) {
			return []model.Penalti{{ID: 1}, {ID: 2}}, nil
		},
	}
	s := New(m)

	out, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
}
