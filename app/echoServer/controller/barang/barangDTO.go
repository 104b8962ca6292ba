package barang

type UpsertBarangReq struct {
	Nama        string  `json:"nama" validate:"required"`
	Stok        int64   `json:"stok" validate:"gte=0"`
	Harga       float64 `json:"harga" validate:"gte=0"`
	DendaPerJam float64 `json:"denda_per_jam" validate:"gte=0"`
	IDKategori  int64   `json:"id_kategori" validate:"required,gt=0"`
	Foto        *string `json:"foto"`
}

type CreateKategoriReq struct {
	Nama string `json:"nama" validate:"required"`
}
