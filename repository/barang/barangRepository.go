package barangrepo

import (
	"context"
	"database/sql"

	"github.com/DurrrA/sigril-sub001/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Barang, error)
	Detail(ctx context.Context, id int64) (*model.Barang, error)
	Create(ctx context.Context, b *model.Barang) error
	Update(ctx context.Context, b *model.Barang) (int64, error)

	ListKategori(ctx context.Context) ([]model.Kategori, error)
	CreateKategori(ctx context.Context, k *model.Kategori) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context) ([]model.Barang, error) {
	const q = `
	SELECT b.id, b.nama, b.stok, b.harga, b.denda_per_jam, b.id_kategori, k.nama, b.foto
	FROM barang b
	JOIN kategori k ON k.id = b.id_kategori
	ORDER BY b.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Barang
	for rows.Next() {
		var b model.Barang
		if err := rows.Scan(&b.ID, &b.Nama, &b.Stok, &b.Harga, &b.DendaPerJam, &b.IDKategori, &b.KategoriNama, &b.Foto); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Barang, error) {
	const q = `
	SELECT b.id, b.nama, b.stok, b.harga, b.denda_per_jam, b.id_kategori, k.nama, b.foto
	FROM barang b
	JOIN kategori k ON k.id = b.id_kategori
	WHERE b.id = $1`
	var b model.Barang
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Nama, &b.Stok, &b.Harga, &b.DendaPerJam, &b.IDKategori, &b.KategoriNama, &b.Foto); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Create(ctx context.Context, b *model.Barang) error {
	const q = `
	INSERT INTO barang (nama, stok, harga, denda_per_jam, id_kategori, foto)
	VALUES ($1,$2,$3,$4,$5,$6)
	RETURNING id`
	return r.db.QueryRowContext(ctx, q, b.Nama, b.Stok, b.Harga, b.DendaPerJam, b.IDKategori, b.Foto).Scan(&b.ID)
}

func (r *repo) Update(ctx context.Context, b *model.Barang) (int64, error) {
	const q = `
	UPDATE barang
	SET nama=$2, stok=$3, harga=$4, denda_per_jam=$5, id_kategori=$6, foto=$7
	WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, b.ID, b.Nama, b.Stok, b.Harga, b.DendaPerJam, b.IDKategori, b.Foto)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) ListKategori(ctx context.Context) ([]model.Kategori, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nama FROM kategori ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Kategori
	for rows.Next() {
		var k model.Kategori
		if err := rows.Scan(&k.ID, &k.Nama); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *repo) CreateKategori(ctx context.Context, k *model.Kategori) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO kategori (nama) VALUES ($1) RETURNING id`, k.Nama,
	).Scan(&k.ID)
}
