package barang

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/DurrrA/sigril-sub001/app/echoServer/validation"
	"github.com/DurrrA/sigril-sub001/model"
	bs "github.com/DurrrA/sigril-sub001/service/barang"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/barang
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("barang list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/barang/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	b, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "barang not found"})
		default:
			h.Log.Error("barang detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"barang": b})
}

// POST /api/barang
func (h *Controller) Create(c echo.Context) error {
	var req UpsertBarangReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	b := &model.Barang{
		Nama:        req.Nama,
		Stok:        req.Stok,
		Harga:       req.Harga,
		DendaPerJam: req.DendaPerJam,
		IDKategori:  req.IDKategori,
		Foto:        req.Foto,
	}
	if err := h.Svc.Create(c.Request().Context(), b); err != nil {
		switch bs.Code(err) {
		case bs.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("barang create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"barang": b})
}

// PUT /api/barang/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpsertBarangReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	b := &model.Barang{
		ID:          id,
		Nama:        req.Nama,
		Stok:        req.Stok,
		Harga:       req.Harga,
		DendaPerJam: req.DendaPerJam,
		IDKategori:  req.IDKategori,
		Foto:        req.Foto,
	}
	if err := h.Svc.Update(c.Request().Context(), b); err != nil {
		switch bs.Code(err) {
		case bs.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		case bs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "barang not found"})
		default:
			h.Log.Error("barang update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"barang": b})
}

// GET /api/kategori
func (h *Controller) ListKategori(c echo.Context) error {
	rows, err := h.Svc.ListKategori(c.Request().Context())
	if err != nil {
		h.Log.Error("kategori list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /api/kategori
func (h *Controller) CreateKategori(c echo.Context) error {
	var req CreateKategoriReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	k, err := h.Svc.CreateKategori(c.Request().Context(), req.Nama)
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("kategori create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"kategori": k})
}
