package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
)

const (
	maxWriteAttempts = 3
	retryBaseDelay   = 100 * time.Millisecond
)

// withRetry runs write up to maxWriteAttempts times while the classifier
// reports the failure as transient. The delay grows linearly between attempts.
func (db *DB) withRetry(ctx context.Context, op string, write func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		err := write(ctx)
		if err == nil {
			return nil
		}

		if attempt == maxWriteAttempts || db.errorClassificator == nil ||
			db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "*DB.withRetry").
			Str("op", op).
			Int("attempt", attempt).
			Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(retryBaseDelay * time.Duration(attempt)):
		}
	}
}
