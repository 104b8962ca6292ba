package transaksi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/DurrrA/sigril-sub001/app/echoServer/jwtx"
	"github.com/DurrrA/sigril-sub001/app/echoServer/validation"
	"github.com/DurrrA/sigril-sub001/model"
	ts "github.com/DurrrA/sigril-sub001/service/transaksi"
)

type Controller struct {
	Svc ts.Service
	V   *validator.Validate
	Log *slog.Logger
}

type CreateReq struct {
	IDSewaReq       *int64  `json:"id_sewa_req" validate:"omitempty,gt=0"`
	BuktiPembayaran *string `json:"bukti_pembayaran"`
	TotalPembayaran float64 `json:"total_pembayaran" validate:"required,gt=0"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required"`
}

// POST /api/transaksi
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
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	t, err := h.Svc.Create(c.Request().Context(), uid, req.IDSewaReq, req.BuktiPembayaran, req.TotalPembayaran)
	if err != nil {
		switch ts.Code(err) {
		case ts.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("transaksi create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"transaksi": t})
}

// PATCH /api/transaksi/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	if err := h.Svc.UpdateStatus(c.Request().Context(), id, model.TransaksiStatus(req.Status)); err != nil {
		switch ts.Code(err) {
		case ts.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
		case ts.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "transaksi not found"})
		default:
			h.Log.Error("transaksi update status", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
}

// GET /api/transaksi/admin
func (h *Controller) ListAdmin(c echo.Context) error {
	rows, err := h.Svc.ListAdmin(c.Request().Context())
	if err != nil {
		h.Log.Error("transaksi admin list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/transaksi/dashboard
func (h *Controller) Dashboard(c echo.Context) error {
	st, err := h.Svc.Dashboard(c.Request().Context())
	if err != nil {
		h.Log.Error("dashboard stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, st)
}
