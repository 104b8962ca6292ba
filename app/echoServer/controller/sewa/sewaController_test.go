package sewa

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/DurrrA/sigril-sub001/model"
	ss "github.com/DurrrA/sigril-sub001/service/sewa"
)

type mockService struct {
	checkFn func(ctx context.Context, barangID int64, start, end time.Time) (bool, error)
}

var _ ss.Service = (*mockService)(nil)

func (m *mockService) CheckAvailability(ctx context.Context, barangID int64, start, end time.Time) (bool, error) {
	return m.checkFn(ctx, barangID, start, end)
}

func (m *mockService) Create(ctx context.Context, userID int64, start, end time.Time, items []ss.Item) (*ss.Created, error) {
	panic("not used")
}

func (m *mockService) List(ctx context.Context) ([]ss.Row, error) { panic("not used") }

func (m *mockService) UpdateStatus(ctx context.Context, id int64, status model.SewaStatus) error {
	panic("not used")
}

type codeErr struct{ c ss.ErrCode }

func (e codeErr) Error() string { return string(e.c) }
func (e codeErr) Code() ss.ErrCode { return e.c }

func availabilityCall(t *testing.T, svc ss.Service, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	h := &Controller{
		Svc: svc,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/sewa/availability", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.CheckAvailability(e.NewContext(req, rec))
}

func TestCheckAvailability_OK(t *testing.T) {
	svc := &mockService{
		checkFn: func(ctx context.Context, barangID int64, start, end time.Time) (bool, error) {
			return true, nil
		},
	}
	rec, err := availabilityCall(t, svc,
		`{"id_barang":3,"start_date":"2026-09-10","end_date":"2026-09-12"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, true, out["available"])
}

func TestCheckAvailability_BadInputMessage(t *testing.T) {
	// A bad-input answer from the service must not be reported as a
	// date-range problem.
	svc := &mockService{
		checkFn: func(ctx context.Context, barangID int64, start, end time.Time) (bool, error) {
			return false, codeErr{c: ss.ErrBadInput}
		},
	}
	rec, err := availabilityCall(t, svc,
		`{"id_barang":3,"start_date":"2026-09-10","end_date":"2026-09-12"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "bad input", out["message"])
}

func TestCheckAvailability_BadRangeMessage(t *testing.T) {
	svc := &mockService{
		checkFn: func(ctx context.Context, barangID int64, start, end time.Time) (bool, error) {
			return false, codeErr{c: ss.ErrBadRange}
		},
	}
	rec, err := availabilityCall(t, svc,
		`{"id_barang":3,"start_date":"2026-09-12","end_date":"2026-09-10"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "end_date must not precede start_date", out["message"])
}
