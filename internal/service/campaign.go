package service

import (
	"context"
	"time"

	"github.com/PastaSec/orbitivexr/internal/constants"
	"github.com/PastaSec/orbitivexr/internal/domain"
	"github.com/PastaSec/orbitivexr/internal/repository"

	"github.com/rs/zerolog"
)

type CampaignService struct {
	repo   *repository.CampaignRepository
	logger zerolog.Logger
}

func NewCampaignService(repo *repository.CampaignRepository, logger zerolog.Logger) *CampaignService {
	return &CampaignService{repo: repo, logger: logger}
}

// Create stamps the submission time and persists the campaign. Campaigns are
// immutable after creation.
func (s *CampaignService) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	campaign.SubmittedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, campaign); err != nil {
		s.logger.Error().Err(err).Msg("failed to create campaign")
		return nil, err
	}

	s.logger.Info().
		Int64("campaign_id", campaign.ID).
		Float64("budget", campaign.Budget).
		Str("platform_pref", campaign.PlatformPref).
		Msg("campaign created")
	return campaign, nil
}

func (s *CampaignService) List(ctx context.Context) ([]domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	campaigns, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list campaigns")
		return nil, err
	}

	s.logger.Debug().Int("count", len(campaigns)).Msg("campaigns listed")
	return campaigns, nil
}
