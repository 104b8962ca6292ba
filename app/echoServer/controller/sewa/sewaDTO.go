package sewa

type AvailabilityReq struct {
	IDBarang  int64  `json:"id_barang" validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type CreateItemReq struct {
	IDBarang int64 `json:"id_barang" validate:"required,gt=0"`
	Jumlah   int64 `json:"jumlah" validate:"required,min=1"`
}

type CreateSewaReq struct {
	IDUser    int64           `json:"id_user" validate:"required,gt=0"`
	StartDate string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	Items     []CreateItemReq `json:"items" validate:"required,min=1,dive"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required"`
}
