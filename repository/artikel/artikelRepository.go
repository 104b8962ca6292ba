package artikel

import (
	"context"
	"database/sql"

	"github.com/DurrrA/sigril-sub001/model"
)

type Repo interface {
	Create(ctx context.Context, a *model.Artikel) error
	List(ctx context.Context) ([]model.Artikel, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)

	CreateKomentar(ctx context.Context, k *model.Komentar) error

	CreateTag(ctx context.Context, t *model.Tag) error
	ListTags(ctx context.Context) ([]model.Tag, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, a *model.Artikel) error {
	const q = `
	INSERT INTO artikel (judul, konten, foto, id_tag, tanggal_publikasi, published)
	VALUES ($1,$2,$3,$4,$5,$6)
	RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		a.Judul, a.Konten, a.Foto, a.IDTag, a.TanggalPublikasi, a.Published,
	).Scan(&a.ID, &a.CreatedAt)
}

// List returns non-deleted articles newest first, each with its tag and
// comments.
func (r *repo) List(ctx context.Context) ([]model.Artikel, error) {
	const q = `
	SELECT a.id, a.judul, a.konten, a.foto, a.id_tag, t.nama,
	       a.tanggal_publikasi, a.published, a.created_at
	FROM artikel a
	JOIN tags t ON t.id = a.id_tag
	WHERE a.is_deleted = FALSE
	ORDER BY a.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Artikel, 0)
	index := make(map[int64]int)
	ids := make([]int64, 0)
	for rows.Next() {
		var a model.Artikel
		var tagNama string
		if err := rows.Scan(
			&a.ID, &a.Judul, &a.Konten, &a.Foto, &a.IDTag, &tagNama,
			&a.TanggalPublikasi, &a.Published, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Tag = &model.Tag{ID: a.IDTag, Nama: tagNama}
		a.Komentar = []model.Komentar{}
		index[a.ID] = len(out)
		ids = append(ids, a.ID)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	const komentarQ = `
	SELECT id, id_artikel, nama, isi, created_at
	FROM artikel_komentar
	WHERE id_artikel = ANY($1)
	ORDER BY id_artikel, id`
	krows, err := r.db.QueryContext(ctx, komentarQ, ids)
	if err != nil {
		return nil, err
	}
	defer krows.Close()
	for krows.Next() {
		var k model.Komentar
		if err := krows.Scan(&k.ID, &k.IDArtikel, &k.Nama, &k.Isi, &k.CreatedAt); err != nil {
			return nil, err
		}
		idx, ok := index[k.IDArtikel]
		if !ok {
			continue
		}
		out[idx].Komentar = append(out[idx].Komentar, k)
	}
	return out, krows.Err()
}

func (r *repo) SoftDelete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE artikel SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM artikel WHERE id = $1 AND is_deleted = FALSE)`, id).Scan(&ok)
	return ok, err
}

func (r *repo) CreateKomentar(ctx context.Context, k *model.Komentar) error {
	const q = `
	INSERT INTO artikel_komentar (id_artikel, nama, isi)
	VALUES ($1,$2,$3)
	RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q, k.IDArtikel, k.Nama, k.Isi).Scan(&k.ID, &k.CreatedAt)
}

func (r *repo) CreateTag(ctx context.Context, t *model.Tag) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO tags (nama) VALUES ($1) RETURNING id`, t.Nama).Scan(&t.ID)
}

func (r *repo) ListTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nama FROM tags ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Nama); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
