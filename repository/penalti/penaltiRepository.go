package penalti

import (
	"context"
	"database/sql"

	"github.com/DurrrA/sigril-sub001/model"
)

type Repo interface {
	Insert(ctx context.Context, p *model.Penalti) error
	List(ctx context.Context) ([]model.Penalti, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, p *model.Penalti) error {
	const q = `
	INSERT INTO penalti (id_user, id_barang, total_bayar)
	VALUES ($1,$2,$3)
	RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q, p.IDUser, p.IDBarang, p.TotalBayar).Scan(&p.ID, &p.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Penalti, error) {
	const q = `
	SELECT id, id_user, id_barang, total_bayar, created_at
	FROM penalti
	ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Penalti
	for rows.Next() {
		var p model.Penalti
		if err := rows.Scan(&p.ID, &p.IDUser, &p.IDBarang, &p.TotalBayar, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
