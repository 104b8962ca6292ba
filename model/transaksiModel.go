// model/transaksi.go
package model

import "time"

type TransaksiStatus string

const (
	TransaksiPending  TransaksiStatus = "PENDING"
	TransaksiPaid     TransaksiStatus = "PAID"
	TransaksiRejected TransaksiStatus = "REJECTED"
)

func ValidTransaksiStatus(s TransaksiStatus) bool {
	switch s {
	case TransaksiPending, TransaksiPaid, TransaksiRejected:
		return true
	}
	return false
}

type Transaksi struct {
	ID               int64           `json:"id"`
	IDUser           int64           `json:"id_user"`
	IDSewaReq        *int64          `json:"id_sewa_req,omitempty"`
	BuktiPembayaran  *string         `json:"bukti_pembayaran,omitempty"`
	TotalPembayaran  float64         `json:"total_pembayaran"`
	Status           TransaksiStatus `json:"status"`
	TanggalTransaksi time.Time       `json:"tanggal_transaksi"`
}
