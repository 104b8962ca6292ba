package artikel

type CreateArtikelReq struct {
	Judul            string  `json:"judul" validate:"required"`
	Konten           string  `json:"konten" validate:"required"`
	Foto             *string `json:"foto"`
	IDTag            int64   `json:"id_tag" validate:"required,gt=0"`
	TanggalPublikasi string  `json:"tanggal_publikasi" validate:"omitempty,datetime=2006-01-02"`
	Published        bool    `json:"published"`
}

type CreateKomentarReq struct {
	Nama string `json:"nama" validate:"required"`
	Isi  string `json:"isi" validate:"required"`
}

type CreateTagReq struct {
	Nama string `json:"nama" validate:"required"`
}
