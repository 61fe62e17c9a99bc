package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PastaSec/orbitivexr/internal/domain"

	"github.com/rs/zerolog"
)

type DesignerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewDesignerRepository(db *sql.DB, logger zerolog.Logger) *DesignerRepository {
	return &DesignerRepository{db: db, logger: logger}
}

func (r *DesignerRepository) Insert(ctx context.Context, designer *domain.Designer) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO designers (name, rate_tier, scene_tags, export_formats, game_logic_experience, visual_metadata, availability, performance_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		designer.Name,
		nullableFloat(designer.RateTier),
		designer.SceneTags,
		designer.ExportFormats,
		nullableInt(designer.GameLogicExperience),
		designer.VisualMetadata,
		designer.Availability,
		designer.PerformanceScore,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("name", designer.Name).Msg("failed to insert designer")
		return fmt.Errorf("failed to insert designer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read designer id: %w", err)
	}
	designer.ID = id

	r.logger.Debug().Int64("designer_id", id).Str("name", designer.Name).Msg("designer inserted")
	return nil
}

func (r *DesignerRepository) List(ctx context.Context) ([]domain.Designer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, rate_tier, scene_tags, export_formats, game_logic_experience, visual_metadata, availability, performance_score
		 FROM designers ORDER BY id`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list designers")
		return nil, fmt.Errorf("failed to list designers: %w", err)
	}
	defer rows.Close()

	var designers []domain.Designer
	for rows.Next() {
		var (
			designer         domain.Designer
			name             sql.NullString
			rateTier         sql.NullFloat64
			gameLogicExp     sql.NullInt64
			availability     sql.NullString
			performanceScore sql.NullFloat64
		)
		err := rows.Scan(
			&designer.ID,
			&name,
			&rateTier,
			&designer.SceneTags,
			&designer.ExportFormats,
			&gameLogicExp,
			&designer.VisualMetadata,
			&availability,
			&performanceScore,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan designer: %w", err)
		}

		designer.Name = name.String
		designer.Availability = availability.String
		designer.PerformanceScore = performanceScore.Float64
		if rateTier.Valid {
			v := rateTier.Float64
			designer.RateTier = &v
		}
		if gameLogicExp.Valid {
			v := int(gameLogicExp.Int64)
			designer.GameLogicExperience = &v
		}

		designers = append(designers, designer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list designers: %w", err)
	}
	return designers, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
