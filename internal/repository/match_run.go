package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/PastaSec/orbitivexr/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type MatchRunRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMatchRunRepository(db *sql.DB, logger zerolog.Logger) *MatchRunRepository {
	return &MatchRunRepository{db: db, logger: logger}
}

func (r *MatchRunRepository) Insert(ctx context.Context, run *domain.MatchRun) error {
	if run.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate match run id: %w", err)
		}
		run.ID = id
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO match_runs (id, campaign_id, threshold, matched, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		run.ID,
		run.CampaignID,
		run.Threshold,
		run.Matched,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("campaign_id", run.CampaignID).Msg("failed to insert match run")
		return fmt.Errorf("failed to insert match run: %w", err)
	}

	r.logger.Debug().
		Str("run_id", run.ID).
		Int64("campaign_id", run.CampaignID).
		Int("matched", run.Matched).
		Msg("match run recorded")
	return nil
}
