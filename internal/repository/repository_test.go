package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/PastaSec/orbitivexr/internal/config"
	"github.com/PastaSec/orbitivexr/internal/database"
	"github.com/PastaSec/orbitivexr/internal/domain"

	"github.com/rs/zerolog"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	db, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCampaignRoundTrip(t *testing.T) {
	repo := NewCampaignRepository(testDB(t), zerolog.Nop())
	ctx := context.Background()

	campaign := &domain.Campaign{
		Budget:        500,
		Ambiance:      "calm",
		PlatformPref:  "Quest",
		Interactivity: 3,
		Style:         "minimalist",
		Timeline:      "2024-06-01",
		SubmittedAt:   time.Date(2024, 4, 2, 10, 30, 0, 0, time.UTC),
	}
	if err := repo.Insert(ctx, campaign); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if campaign.ID == 0 {
		t.Fatalf("insert did not assign an id")
	}

	got, err := repo.Get(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(got, campaign) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, campaign)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(all))
	}
}

func TestCampaignGetNotFound(t *testing.T) {
	repo := NewCampaignRepository(testDB(t), zerolog.Nop())

	_, err := repo.Get(context.Background(), 999)
	if !errors.Is(err, domain.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestDesignerRoundTrip(t *testing.T) {
	repo := NewDesignerRepository(testDB(t), zerolog.Nop())
	ctx := context.Background()

	rate := 400.0
	exp := 5
	designer := &domain.Designer{
		Name:                "Ada",
		RateTier:            &rate,
		SceneTags:           domain.TagList{"calm", "vibrant"},
		ExportFormats:       domain.TagList{"Quest", "WebXR"},
		GameLogicExperience: &exp,
		VisualMetadata:      domain.TagList{"minimalist"},
		Availability:        "2024-05-01",
		PerformanceScore:    0.8,
	}
	if err := repo.Insert(ctx, designer); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	designers, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(designers) != 1 {
		t.Fatalf("expected 1 designer, got %d", len(designers))
	}
	if !reflect.DeepEqual(&designers[0], designer) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", &designers[0], designer)
	}
}

func TestDesignerListToleratesLegacyRows(t *testing.T) {
	db := testDB(t)
	repo := NewDesignerRepository(db, zerolog.Nop())
	ctx := context.Background()

	// Rows written by other tools: serialized tag lists, NULL numerics,
	// malformed list text.
	_, err := db.ExecContext(ctx,
		`INSERT INTO designers (name, rate_tier, scene_tags, export_formats, game_logic_experience, visual_metadata, availability, performance_score)
		 VALUES ('Legacy', NULL, '["calm"]', 'not json', NULL, NULL, '2024-05-01', NULL)`)
	if err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	designers, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(designers) != 1 {
		t.Fatalf("expected 1 designer, got %d", len(designers))
	}

	d := designers[0]
	if d.RateTier != nil {
		t.Fatalf("NULL rate_tier should map to nil, got %v", *d.RateTier)
	}
	if d.GameLogicExperience != nil {
		t.Fatalf("NULL experience should map to nil, got %v", *d.GameLogicExperience)
	}
	if !reflect.DeepEqual(d.SceneTags, domain.TagList{"calm"}) {
		t.Fatalf("serialized scene_tags should decode, got %v", d.SceneTags)
	}
	if len(d.ExportFormats) != 0 {
		t.Fatalf("malformed export_formats should degrade to empty, got %v", d.ExportFormats)
	}
	if len(d.VisualMetadata) != 0 {
		t.Fatalf("NULL visual_metadata should degrade to empty, got %v", d.VisualMetadata)
	}
	if d.PerformanceScore != 0 {
		t.Fatalf("NULL performance_score should map to 0, got %v", d.PerformanceScore)
	}
}

func TestMatchRunInsertAssignsID(t *testing.T) {
	repo := NewMatchRunRepository(testDB(t), zerolog.Nop())

	run := &domain.MatchRun{
		CampaignID: 1,
		Threshold:  60,
		Matched:    2,
		CreatedAt:  time.Now().UTC(),
	}
	if err := repo.Insert(context.Background(), run); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if run.ID == "" {
		t.Fatalf("insert did not assign a run id")
	}
}
