package penalti

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/DurrrA/sigril-sub001/app/echoServer/validation"
	ps "github.com/DurrrA/sigril-sub001/service/penalti"
)

type Controller struct {
	Svc ps.Service
	V   *validator.Validate
	Log *slog.Logger
}

// CreateReq validates the same fields that get persisted: the charged user,
// the item, and the amount.
type CreateReq struct {
	IDUser     int64   `json:"id_user" validate:"required,gt=0"`
	IDBarang   int64   `json:"id_barang" validate:"required,gt=0"`
	TotalBayar float64 `json:"total_bayar" validate:"required,gt=0"`
}

// POST /api/penalti
func (h *Controller) Create(c echo.Context) error {
	var req CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	p, err := h.Svc.Create(c.Request().Context(), req.IDUser, req.IDBarang, req.TotalBayar)
	if err != nil {
		switch ps.Code(err) {
		case ps.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		case ps.ErrUserNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		case ps.ErrBarangNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "barang not found"})
		default:
			h.Log.Error("penalti create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"penalti": p})
}

// GET /api/penalti
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("penalti list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
