package sewa

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/DurrrA/sigril-sub001/app/echoServer/validation"
	"github.com/DurrrA/sigril-sub001/model"
	ss "github.com/DurrrA/sigril-sub001/service/sewa"
)

type Controller struct {
	Svc ss.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/sewa/availability
// @Summary      Check item availability
// @Description  Reports whether an item is free over a date range
// @Tags         sewa
// @Accept       json
// @Produce      json
// @Param        payload  body  AvailabilityReq  true  "Availability query"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/sewa/availability [post]
func (h *Controller) CheckAvailability(c echo.Context) error {
	var req AvailabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	ok, err := h.Svc.CheckAvailability(c.Request().Context(), req.IDBarang, start, end)
	if err != nil {
		switch ss.Code(err) {
		case ss.ErrBadRange:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "end_date must not precede start_date"})
		case ss.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("availability check", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	// A negative answer is a business result, not an error.
	msg := "barang is available for the requested dates"
	if !ok {
		msg = "barang is already booked for the requested dates"
	}
	return c.JSON(http.StatusOK, echo.Map{"available": ok, "message": msg})
}

// POST /api/sewa/request
func (h *Controller) CreateRequest(c echo.Context) error {
	var req CreateSewaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)
	items := make([]ss.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ss.Item{IDBarang: it.IDBarang, Jumlah: it.Jumlah})
	}

	out, err := h.Svc.Create(c.Request().Context(), req.IDUser, start, end, items)
	if err != nil {
		switch ss.Code(err) {
		case ss.ErrBadRange:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "end_date must not precede start_date"})
		case ss.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		case ss.ErrBarangNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "barang not found"})
		case ss.ErrUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "barang is already booked for the requested dates"})
		default:
			h.Log.Error("sewa create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"sewa_req": out.Req,
		"items":    out.Items,
	})
}

// GET /api/sewa
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("sewa list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// PATCH /api/sewa/:id/status
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

	if err := h.Svc.UpdateStatus(c.Request().Context(), id, model.SewaStatus(req.Status)); err != nil {
		switch ss.Code(err) {
		case ss.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
		case ss.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "sewa request not found"})
		default:
			h.Log.Error("sewa update status", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
}
