package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/ledger"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

const txMaxRetries = 3

// runTxRetry wraps runTx with a bounded retry loop for serialization and
// deadlock failures. Once the retries are spent the caller gets a conflict
// error; business-rule errors never retry.
func runTxRetry(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; attempt <= txMaxRetries; attempt++ {
		err = runTx(ctx, db, fn)
		if err == nil || !retryableTxError(err) {
			return err
		}
		log.Warn().
			Int("attempt", attempt).
			Err(err).
			Msg("transaccion en conflicto; reintentando")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 25 * time.Millisecond):
		}
	}
	return ledger.Conflict()
}

// retryableTxError reports whether err is a Postgres serialization failure
// (40001) or deadlock (40P01).
func retryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// parseFecha interprets an optional YYYY-MM-DD request field, defaulting to
// the current instant when absent. Dates arrive validated by the DTO layer.
func parseFecha(s *string) time.Time {
	if s == nil || *s == "" {
		return time.Now().UTC()
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return time.Now().UTC()
	}
	return t
}

const fechaLayout = "2006-01-02"
