// model/sewa.go
package model

import "time"

type SewaStatus string

const (
	SewaPending   SewaStatus = "pending"
	SewaActive    SewaStatus = "active"
	SewaCancelled SewaStatus = "cancelled"
	SewaCompleted SewaStatus = "completed"
)

// ValidSewaStatus reports whether s is one of the closed set of rental
// statuses. Status strings arrive from clients and must never be stored
// unchecked.
func ValidSewaStatus(s SewaStatus) bool {
	switch s {
	case SewaPending, SewaActive, SewaCancelled, SewaCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type SewaReq struct {
	ID            int64         `json:"id"`
	IDUser        int64         `json:"id_user"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        SewaStatus    `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TotalHarga    *float64      `json:"total_harga,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type SewaItem struct {
	ID         int64   `json:"id"`
	IDSewaReq  int64   `json:"id_sewa_req"`
	IDBarang   int64   `json:"id_barang"`
	Jumlah     int64   `json:"jumlah"`
	HargaTotal float64 `json:"harga_total"`
}
