package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/PastaSec/orbitivexr/internal/domain"

	"github.com/rs/zerolog"
)

type CampaignRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewCampaignRepository(db *sql.DB, logger zerolog.Logger) *CampaignRepository {
	return &CampaignRepository{db: db, logger: logger}
}

func (r *CampaignRepository) Insert(ctx context.Context, campaign *domain.Campaign) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO campaigns (budget, ambiance, platform_pref, interactivity, style, timeline, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		campaign.Budget,
		campaign.Ambiance,
		campaign.PlatformPref,
		campaign.Interactivity,
		campaign.Style,
		campaign.Timeline,
		campaign.SubmittedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to insert campaign")
		return fmt.Errorf("failed to insert campaign: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read campaign id: %w", err)
	}
	campaign.ID = id

	r.logger.Debug().Int64("campaign_id", id).Msg("campaign inserted")
	return nil
}

func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, budget, ambiance, platform_pref, interactivity, style, timeline, submitted_at
		 FROM campaigns WHERE id = ?`, id)

	campaign, err := scanCampaign(row)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Int64("campaign_id", id).Msg("campaign not found")
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		r.logger.Error().Err(err).Int64("campaign_id", id).Msg("failed to get campaign")
		return nil, fmt.Errorf("failed to get campaign %d: %w", id, err)
	}
	return campaign, nil
}

func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, budget, ambiance, platform_pref, interactivity, style, timeline, submitted_at
		 FROM campaigns ORDER BY id`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list campaigns")
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		campaign      domain.Campaign
		budget        sql.NullFloat64
		ambiance      sql.NullString
		platformPref  sql.NullString
		interactivity sql.NullInt64
		style         sql.NullString
		timeline      sql.NullString
		submittedAt   sql.NullString
	)

	err := row.Scan(&campaign.ID, &budget, &ambiance, &platformPref, &interactivity, &style, &timeline, &submittedAt)
	if err != nil {
		return nil, err
	}

	campaign.Budget = budget.Float64
	campaign.Ambiance = ambiance.String
	campaign.PlatformPref = platformPref.String
	campaign.Interactivity = int(interactivity.Int64)
	campaign.Style = style.String
	campaign.Timeline = timeline.String
	if submittedAt.Valid {
		// Stored as RFC3339; an unparseable value keeps the zero time rather
		// than failing the read path.
		if ts, parseErr := time.Parse(time.RFC3339Nano, submittedAt.String); parseErr == nil {
			campaign.SubmittedAt = ts
		}
	}

	return &campaign, nil
}
