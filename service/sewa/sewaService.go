package sewa

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/DurrrA/sigril-sub001/model"
	"github.com/DurrrA/sigril-sub001/repository/queue"
	srepo "github.com/DurrrA/sigril-sub001/repository/sewa"
)

// errors used by controllers

type ErrCode string

const (
	ErrBarangNotFound ErrCode = "BARANG_NOT_FOUND"
	ErrUnavailable    ErrCode = "UNAVAILABLE"
	ErrBadRange       ErrCode = "BAD_DATE_RANGE"
	ErrBadInput       ErrCode = "BAD_INPUT"
	ErrBadStatus      ErrCode = "BAD_STATUS"
	ErrNotFound       ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

// Item is one requested line: a catalog item and how many units.
type Item struct {
	IDBarang int64
	Jumlah   int64
}

type Created struct {
	Req   model.SewaReq
	Items []model.SewaItem
}

// Row is a listed rental request with the display total: the stored total
// when present, otherwise the sum of its line-item totals.
type Row struct {
	srepo.ListRow
	TotalAmount float64 `json:"total_amount"`
}

type Repo interface {
	CountOverlapping(ctx context.Context, barangID int64, start, end time.Time) (int64, error)
	CountOverlappingTx(ctx context.Context, tx *sql.Tx, barangID int64, start, end time.Time) (int64, error)

	LockBarangTx(ctx context.Context, tx *sql.Tx, barangIDs []int64) ([]int64, error)
	InsertSewaReqTx(ctx context.Context, tx *sql.Tx, req *model.SewaReq) error
	InsertItemsBulkTx(ctx context.Context, tx *sql.Tx, items []model.SewaItem) error

	List(ctx context.Context) ([]srepo.ListRow, error)
	UpdateStatus(ctx context.Context, id int64, status model.SewaStatus) (int64, error)
}

type Service interface {
	// CheckAvailability reports whether the item is free over [start,end].
	// Any overlapping non-cancelled request blocks the whole window,
	// regardless of remaining stock.
	CheckAvailability(ctx context.Context, barangID int64, start, end time.Time) (bool, error)

	// Create books the items over [start,end] in one transaction and
	// publishes a sewa.created event on success.
	Create(ctx context.Context, userID int64, start, end time.Time, items []Item) (*Created, error)

	// List returns all rental requests, newest id first.
	List(ctx context.Context) ([]Row, error)

	UpdateStatus(ctx context.Context, id int64, status model.SewaStatus) error
}

// ----- Service implementation -----

type service struct {
	db *sql.DB
	r  Repo
	q  queue.Publisher
}

func New(db *sql.DB, r Repo, q queue.Publisher) Service {
	return &service{db: db, r: r, q: q}
}

func (s *service) CheckAvailability(ctx context.Context, barangID int64, start, end time.Time) (bool, error) {
	if barangID <= 0 {
		return false, makeErr(ErrBadInput)
	}
	if end.Before(start) {
		return false, makeErr(ErrBadRange)
	}
	n, err := s.r.CountOverlapping(ctx, barangID, start, end)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Create inserts the request and its line items inside one transaction.
// The barang rows are locked first and availability re-checked under the
// lock, so two concurrent bookings for the same item cannot both succeed.
func (s *service) Create(ctx context.Context, userID int64, start, end time.Time, items []Item) (out *Created, err error) {
	if userID <= 0 || len(items) == 0 {
		return nil, makeErr(ErrBadInput)
	}
	if end.Before(start) {
		return nil, makeErr(ErrBadRange)
	}

	ids := make([]int64, 0, len(items))
	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		if it.IDBarang <= 0 || it.Jumlah < 1 {
			return nil, makeErr(ErrBadInput)
		}
		if !seen[it.IDBarang] {
			seen[it.IDBarang] = true
			ids = append(ids, it.IDBarang)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	locked, err := s.r.LockBarangTx(ctx, tx, ids)
	if err != nil {
		return nil, err
	}
	if len(locked) != len(ids) {
		return nil, makeErr(ErrBarangNotFound)
	}

	for _, id := range ids {
		var n int64
		n, err = s.r.CountOverlappingTx(ctx, tx, id, start, end)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, makeErr(ErrUnavailable)
		}
	}

	req := &model.SewaReq{
		IDUser:        userID,
		StartDate:     start,
		EndDate:       end,
		Status:        model.SewaPending,
		PaymentStatus: model.PaymentUnpaid,
	}
	if err = s.r.InsertSewaReqTx(ctx, tx, req); err != nil {
		return nil, err
	}

	// Line totals stay zero at booking time; pricing is settled when the
	// payment is recorded.
	lines := make([]model.SewaItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, model.SewaItem{
			IDSewaReq:  req.ID,
			IDBarang:   it.IDBarang,
			Jumlah:     it.Jumlah,
			HargaTotal: 0,
		})
	}
	if err = s.r.InsertItemsBulkTx(ctx, tx, lines); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	ev := queue.SewaCreatedEvent{
		IDSewaReq: req.ID,
		IDUser:    userID,
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
	}
	for _, it := range items {
		ev.Items = append(ev.Items, queue.SewaCreatedEventItem{IDBarang: it.IDBarang, Jumlah: it.Jumlah})
	}
	// Event delivery is best effort; the booking is already committed.
	_ = s.q.PublishSewaCreated(ctx, ev)

	return &Created{Req: *req, Items: lines}, nil
}

func (s *service) List(ctx context.Context) ([]Row, error) {
	rows, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(rows))
	for _, lr := range rows {
		total := 0.0
		if lr.TotalHarga != nil {
			total = *lr.TotalHarga
		} else {
			for _, it := range lr.Items {
				total += it.HargaTotal
			}
		}
		out = append(out, Row{ListRow: lr, TotalAmount: total})
	}
	return out, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status model.SewaStatus) error {
	if id <= 0 {
		return makeErr(ErrBadInput)
	}
	if !model.ValidSewaStatus(status) {
		return makeErr(ErrBadStatus)
	}
	n, err := s.r.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if n == 0 {
		return makeErr(ErrNotFound)
	}
	return nil
}
