// model/penalti.go
package model

import "time"

type Penalti struct {
	ID         int64     `json:"id"`
	IDUser     int64     `json:"id_user"`
	IDBarang   int64     `json:"id_barang"`
	TotalBayar float64   `json:"total_bayar"`
	CreatedAt  time.Time `json:"created_at"`
}
