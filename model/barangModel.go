// model/barang.go
package model

type Kategori struct {
	ID   int64  `json:"id"`
	Nama string `json:"nama"`
}

type Barang struct {
	ID           int64   `json:"id"`
	Nama         string  `json:"nama"`
	Stok         int64   `json:"stok"`
	Harga        float64 `json:"harga"`
	DendaPerJam  float64 `json:"denda_per_jam"`
	IDKategori   int64   `json:"id_kategori"`
	KategoriNama string  `json:"kategori_nama,omitempty"`
	Foto         *string `json:"foto,omitempty"`
}
