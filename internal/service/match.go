package service

import (
	"context"
	"time"

	"github.com/PastaSec/orbitivexr/internal/constants"
	"github.com/PastaSec/orbitivexr/internal/domain"
	"github.com/PastaSec/orbitivexr/internal/matching"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Narrow views of the repositories so the not-found versus zero-matches
// distinction can be exercised without a database.
type campaignGetter interface {
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
}

type designerLister interface {
	List(ctx context.Context) ([]domain.Designer, error)
}

type matchRunRecorder interface {
	Insert(ctx context.Context, run *domain.MatchRun) error
}

type MatchService struct {
	campaigns campaignGetter
	designers designerLister
	runs      matchRunRecorder
	logger    zerolog.Logger
}

func NewMatchService(campaigns campaignGetter, designers designerLister, runs matchRunRecorder, logger zerolog.Logger) *MatchService {
	return &MatchService{campaigns: campaigns, designers: designers, runs: runs, logger: logger}
}

// Match scores all registered designers against the campaign and returns
// those at or above threshold, best first. A campaign id that does not
// resolve propagates domain.ErrCampaignNotFound; a campaign nobody matches
// returns an empty slice.
func (s *MatchService) Match(ctx context.Context, campaignID int64, threshold float64) ([]domain.ScoredDesigner, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().
		Int64("campaign_id", campaignID).
		Float64("threshold", threshold).
		Msg("matching designers")

	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.designers.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Int64("campaign_id", campaignID).Msg("failed to load designers")
		return nil, err
	}

	matched := matching.Select(*campaign, candidates, threshold)

	s.logger.Info().
		Int64("campaign_id", campaignID).
		Int("candidates", len(candidates)).
		Int("matched", len(matched)).
		Msg("match completed")

	s.recordRun(campaignID, threshold, len(matched))

	return matched, nil
}

// recordRun writes the audit row off the request path; the match response
// never waits on or fails with it.
func (s *MatchService) recordRun(campaignID int64, threshold float64, matched int) {
	g := new(errgroup.Group)
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
		defer cancel()

		run := &domain.MatchRun{
			CampaignID: campaignID,
			Threshold:  threshold,
			Matched:    matched,
			CreatedAt:  time.Now().UTC(),
		}
		return s.runs.Insert(ctx, run)
	})

	go func() {
		if err := g.Wait(); err != nil {
			s.logger.Warn().Err(err).Int64("campaign_id", campaignID).Msg("failed to record match run")
		}
	}()
}
