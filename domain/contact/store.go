package contact

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/dennoAiden/swiper-venture/pkg/apperror"
	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

// Store persists contact submissions.
type Store interface {
	Create(ctx context.Context, s *ContactSubmission) error
}

// Repository is the Postgres Store.
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("contact.repo")),
	}
}

// Create inserts s and fills in its ID and CreatedAt.
func (r *Repository) Create(ctx context.Context, s *ContactSubmission) error {
	_, err := r.db.NewInsert().
		Model(s).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		r.log.Error("failed to insert contact submission", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}
	return nil
}
