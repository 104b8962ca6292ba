package artikel

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/DurrrA/sigril-sub001/app/echoServer/validation"
	as "github.com/DurrrA/sigril-sub001/service/artikel"
)

type Controller struct {
	Svc as.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/artikel
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("artikel list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /api/artikel
func (h *Controller) Create(c echo.Context) error {
	var req CreateArtikelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	var tanggal time.Time
	if req.TanggalPublikasi != "" {
		tanggal, _ = time.Parse(time.DateOnly, req.TanggalPublikasi)
	}

	a, err := h.Svc.Create(c.Request().Context(), as.CreateReq{
		Judul:            req.Judul,
		Konten:           req.Konten,
		Foto:             req.Foto,
		IDTag:            req.IDTag,
		TanggalPublikasi: tanggal,
		Published:        req.Published,
	})
	if err != nil {
		switch as.Code(err) {
		case as.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("artikel create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"artikel": a})
}

// DELETE /api/artikel/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch as.Code(err) {
		case as.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "artikel not found"})
		default:
			h.Log.Error("artikel delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// POST /api/artikel/:id/komentar
func (h *Controller) AddKomentar(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req CreateKomentarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	k, err := h.Svc.AddKomentar(c.Request().Context(), id, req.Nama, req.Isi)
	if err != nil {
		switch as.Code(err) {
		case as.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		case as.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "artikel not found"})
		default:
			h.Log.Error("komentar create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"komentar": k})
}

// GET /api/tags
func (h *Controller) ListTags(c echo.Context) error {
	rows, err := h.Svc.ListTags(c.Request().Context())
	if err != nil {
		h.Log.Error("tags list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /api/tags
func (h *Controller) CreateTag(c echo.Context) error {
	var req CreateTagReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	t, err := h.Svc.CreateTag(c.Request().Context(), req.Nama)
	if err != nil {
		switch as.Code(err) {
		case as.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("tag create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"tag": t})
}
