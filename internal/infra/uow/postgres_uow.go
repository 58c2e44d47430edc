package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"airtime/internal/infra/db"
	"airtime/internal/infra/readstore"
	"airtime/internal/infra/repository"
	"airtime/internal/pkg/errs"
	"airtime/internal/usecase/queries"
	"airtime/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	userRepo      shared.UserRepository
	stationRepo   shared.StationRepository
	approvalRepo  shared.ApprovalRepository
	rjRepo        shared.RJRepository
	slotRepo      shared.SlotRepository
	bookingRepo   shared.BookingRepository
	paymentRepo   shared.PaymentRepository
	adContentRepo shared.AdContentRepository
	commandReads  shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Stations() shared.StationRepository {
	if t.stationRepo == nil {
		t.stationRepo = repository.NewStationRepository()
	}
	return t.stationRepo
}

func (t *pgTx) Approvals() shared.ApprovalRepository {
	if t.approvalRepo == nil {
		t.approvalRepo = repository.NewApprovalRepository()
	}
	return t.approvalRepo
}

func (t *pgTx) RJs() shared.RJRepository {
	if t.rjRepo == nil {
		t.rjRepo = repository.NewRJRepository()
	}
	return t.rjRepo
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository()
	}
	return t.slotRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository()
	}
	return t.paymentRepo
}

func (t *pgTx) AdContents() shared.AdContentRepository {
	if t.adContentRepo == nil {
		t.adContentRepo = repository.NewAdContentRepository()
	}
	return t.adContentRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	slotStore    *readstore.SlotReadStore
	bookingStore *readstore.BookingReadStore
	paymentStore *readstore.PaymentReadStore
	userStore    *readstore.UserReadStore
	stationStore *readstore.StationReadStore
	rjStore      *readstore.RJReadStore
}

func (r *commandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	if r.slotStore == nil {
		r.slotStore = readstore.NewSlotReadStore(r.dbtx)
	}

	slot, err := r.slotStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.SlotSnapshot{
		ID:                 slot.ID,
		StationID:          slot.StationID,
		RJID:               slot.RJID,
		SlotTime:           slot.SlotTime,
		PriceCents:         slot.PriceCents,
		AvailabilityStatus: slot.AvailabilityStatus,
	}
	return snapshot, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}

	booking, err := r.bookingStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.BookingSnapshot{
		ID:        booking.ID,
		UserID:    booking.UserID,
		StationID: booking.StationID,
		RJID:      booking.RJID,
		SlotID:    booking.SlotID,
		Status:    booking.Status,
	}
	return snapshot, nil
}

func (r *commandReads) PaymentByID(ctx context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.dbtx)
	}

	pay, err := r.paymentStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return paymentSnapshot(pay), nil
}

func (r *commandReads) PaymentByBookingAndUser(ctx context.Context, bookingID, userID uuid.UUID) (*shared.PaymentSnapshot, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.dbtx)
	}

	pay, err := r.paymentStore.FindByBookingAndUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	return paymentSnapshot(pay), nil
}

func (r *commandReads) CompletedPaymentExists(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.dbtx)
	}

	return r.paymentStore.CompletedExistsForBooking(ctx, bookingID)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}

	user, err := r.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.UserSnapshot{
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
	return snapshot, nil
}

func (r *commandReads) StationByID(ctx context.Context, id uuid.UUID) (*shared.StationSnapshot, error) {
	if r.stationStore == nil {
		r.stationStore = readstore.NewStationReadStore(r.dbtx)
	}

	station, err := r.stationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.StationSnapshot{
		ID:             station.ID,
		StationName:    station.StationName,
		ApprovalStatus: station.ApprovalStatus,
	}
	return snapshot, nil
}

func (r *commandReads) RJByID(ctx context.Context, id uuid.UUID) (*shared.RJSnapshot, error) {
	if r.rjStore == nil {
		r.rjStore = readstore.NewRJReadStore(r.dbtx)
	}

	rj, err := r.rjStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.RJSnapshot{
		ID:        rj.ID,
		StationID: rj.StationID,
	}
	return snapshot, nil
}

func paymentSnapshot(view *queries.PaymentView) *shared.PaymentSnapshot {
	return &shared.PaymentSnapshot{
		ID:          view.ID,
		BookingID:   view.BookingID,
		UserID:      view.UserID,
		AmountCents: view.AmountCents,
		Status:      view.Status,
	}
}
