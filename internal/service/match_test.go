package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PastaSec/orbitivexr/internal/domain"

	"github.com/rs/zerolog"
)

type fakeCampaigns struct {
	campaign *domain.Campaign
}

func (f *fakeCampaigns) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	if f.campaign == nil || f.campaign.ID != id {
		return nil, domain.ErrCampaignNotFound
	}
	return f.campaign, nil
}

type fakeDesigners struct {
	designers []domain.Designer
}

func (f *fakeDesigners) List(_ context.Context) ([]domain.Designer, error) {
	return f.designers, nil
}

type fakeRuns struct {
	inserted chan *domain.MatchRun
}

func (f *fakeRuns) Insert(_ context.Context, run *domain.MatchRun) error {
	f.inserted <- run
	return nil
}

func newTestMatchService(campaign *domain.Campaign, designers []domain.Designer) (*MatchService, *fakeRuns) {
	runs := &fakeRuns{inserted: make(chan *domain.MatchRun, 1)}
	svc := NewMatchService(
		&fakeCampaigns{campaign: campaign},
		&fakeDesigners{designers: designers},
		runs,
		zerolog.Nop(),
	)
	return svc, runs
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:            1,
		Budget:        500,
		Ambiance:      "calm",
		PlatformPref:  "Quest",
		Interactivity: 3,
		Style:         "minimalist",
		Timeline:      "2024-06-01",
	}
}

func testDesigner() domain.Designer {
	rate := 400.0
	exp := 5
	return domain.Designer{
		ID:                  7,
		Name:                "Ada",
		RateTier:            &rate,
		SceneTags:           domain.TagList{"calm", "vibrant"},
		ExportFormats:       domain.TagList{"Quest", "WebXR"},
		GameLogicExperience: &exp,
		VisualMetadata:      domain.TagList{"minimalist"},
		Availability:        "2024-05-01",
		PerformanceScore:    0.8,
	}
}

func TestMatchUnknownCampaign(t *testing.T) {
	svc, _ := newTestMatchService(nil, nil)

	_, err := svc.Match(context.Background(), 42, 60)
	if !errors.Is(err, domain.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestMatchZeroDesignersIsNotAnError(t *testing.T) {
	svc, _ := newTestMatchService(testCampaign(), nil)

	matched, err := svc.Match(context.Background(), 1, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 0 {
		t.Fatalf("expected empty result, got %v", matched)
	}
}

func TestMatchReturnsQualifyingDesigners(t *testing.T) {
	svc, runs := newTestMatchService(testCampaign(), []domain.Designer{testDesigner()})

	matched, err := svc.Match(context.Background(), 1, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
	if matched[0].Score != 99.0 {
		t.Fatalf("expected score 99.0, got %v", matched[0].Score)
	}

	select {
	case run := <-runs.inserted:
		if run.CampaignID != 1 || run.Matched != 1 || run.Threshold != 60 {
			t.Fatalf("unexpected match run: %+v", run)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("match run was never recorded")
	}
}

func TestMatchBelowThresholdExcluded(t *testing.T) {
	d := testDesigner()
	expensive := 9000.0
	d.RateTier = &expensive
	d.SceneTags = nil
	d.ExportFormats = nil
	d.VisualMetadata = nil

	svc, _ := newTestMatchService(testCampaign(), []domain.Designer{d})

	matched, err := svc.Match(context.Background(), 1, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 0 {
		t.Fatalf("expected no matches, got %v", matched)
	}
}
