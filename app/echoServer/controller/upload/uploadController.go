package upload

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Dir string
	Log *slog.Logger
}

// POST /api/upload
// Stores the uploaded file under Dir with a generated name and returns the
// relative path for later reference (barang foto, bukti pembayaran).
func (h *Controller) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "file is required"})
	}

	src, err := fh.Open()
	if err != nil {
		h.Log.Error("upload open", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	defer src.Close()

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		h.Log.Error("upload mkdir", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dstPath := filepath.Join(h.Dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		h.Log.Error("upload create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		h.Log.Error("upload copy", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"path": dstPath})
}
