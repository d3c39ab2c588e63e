package survey

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrFailedToSaveSubmission indicates the submission could not be persisted.
var ErrFailedToSaveSubmission = errors.New("survey.errors.failed_to_save_submission")

// Submission is a completed exit survey.
type Submission struct {
	ID          uuid.UUID
	Email       string
	Reason      string
	Feedback    string
	WouldReturn string
	CreatedAt   time.Time
}

// Store persists exit survey submissions.
type Store interface {
	Save(ctx context.Context, sub Submission) error
}

// PgStore is the PostgreSQL-backed Store.
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	if pool == nil {
		panic("survey: nil connection pool")
	}
	return &PgStore{pool: pool}
}

// Save inserts the submission. Optional fields are stored as NULL so that
// reporting queries can distinguish "skipped" from "empty answer".
func (s *PgStore) Save(ctx context.Context, sub Submission) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO exit_surveys (id, email, reason, feedback, would_return, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID,
		nullable(sub.Email),
		sub.Reason,
		nullable(sub.Feedback),
		nullable(sub.WouldReturn),
		sub.CreatedAt,
	)
	if err != nil {
		return errors.Join(ErrFailedToSaveSubmission, err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
