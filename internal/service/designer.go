package service

import (
	"context"

	"github.com/PastaSec/orbitivexr/internal/constants"
	"github.com/PastaSec/orbitivexr/internal/domain"
	"github.com/PastaSec/orbitivexr/internal/repository"

	"github.com/rs/zerolog"
)

type DesignerService struct {
	repo   *repository.DesignerRepository
	logger zerolog.Logger
}

func NewDesignerService(repo *repository.DesignerRepository, logger zerolog.Logger) *DesignerService {
	return &DesignerService{repo: repo, logger: logger}
}

func (s *DesignerService) Create(ctx context.Context, designer *domain.Designer) (*domain.Designer, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	// Canonical form on the way in so stored text and native lists cannot
	// drift apart.
	designer.SceneTags = domain.NormalizeTags(designer.SceneTags)
	designer.ExportFormats = domain.NormalizeTags(designer.ExportFormats)
	designer.VisualMetadata = domain.NormalizeTags(designer.VisualMetadata)

	if err := s.repo.Insert(ctx, designer); err != nil {
		s.logger.Error().Err(err).Str("name", designer.Name).Msg("failed to register designer")
		return nil, err
	}

	s.logger.Info().
		Int64("designer_id", designer.ID).
		Str("name", designer.Name).
		Msg("designer registered")
	return designer, nil
}

func (s *DesignerService) List(ctx context.Context) ([]domain.Designer, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	designers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list designers")
		return nil, err
	}

	s.logger.Debug().Int("count", len(designers)).Msg("designers listed")
	return designers, nil
}
