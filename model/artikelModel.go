// model/artikel.go
package model

import "time"

type Tag struct {
	ID   int64  `json:"id"`
	Nama string `json:"nama"`
}

type Komentar struct {
	ID        int64     `json:"id"`
	IDArtikel int64     `json:"id_artikel"`
	Nama      string    `json:"nama"`
	Isi       string    `json:"isi"`
	CreatedAt time.Time `json:"created_at"`
}

type Artikel struct {
	ID               int64      `json:"id"`
	Judul            string     `json:"judul"`
	Konten           string     `json:"konten"`
	Foto             *string    `json:"foto,omitempty"`
	IDTag            int64      `json:"id_tag"`
	Tag              *Tag       `json:"tag,omitempty"`
	TanggalPublikasi time.Time  `json:"tanggal_publikasi"`
	Published        bool       `json:"published"`
	IsDeleted        bool       `json:"-"`
	Komentar         []Komentar `json:"komentar"`
	CreatedAt        time.Time  `json:"created_at"`
}
