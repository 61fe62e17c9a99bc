package server

import (
	"time"

	"github.com/PastaSec/orbitivexr/internal/domain"
)

type campaignRequest struct {
	Budget        float64 `json:"budget"`
	Ambiance      string  `json:"ambiance"`
	PlatformPref  string  `json:"platform_pref"`
	Interactivity int     `json:"interactivity"`
	Style         string  `json:"style"`
	Timeline      string  `json:"timeline"`
}

type campaignResponse struct {
	ID            int64   `json:"id"`
	Budget        float64 `json:"budget"`
	Ambiance      string  `json:"ambiance"`
	PlatformPref  string  `json:"platform_pref"`
	Interactivity int     `json:"interactivity"`
	Style         string  `json:"style"`
	Timeline      string  `json:"timeline"`
	SubmittedAt   string  `json:"submitted_at"`
}

type designerRequest struct {
	Name                string   `json:"name"`
	RateTier            *float64 `json:"rate_tier"`
	SceneTags           []string `json:"scene_tags"`
	ExportFormats       []string `json:"export_formats"`
	GameLogicExperience *int     `json:"game_logic_experience"`
	VisualMetadata      []string `json:"visual_metadata"`
	Availability        string   `json:"availability"`
	PerformanceScore    float64  `json:"performance_score"`
}

type designerResponse struct {
	ID                  int64          `json:"id"`
	Name                string         `json:"name"`
	RateTier            *float64       `json:"rate_tier"`
	SceneTags           domain.TagList `json:"scene_tags"`
	ExportFormats       domain.TagList `json:"export_formats"`
	GameLogicExperience *int           `json:"game_logic_experience"`
	VisualMetadata      domain.TagList `json:"visual_metadata"`
	Availability        string         `json:"availability"`
	PerformanceScore    float64        `json:"performance_score"`
}

type matchRequest struct {
	CampaignID int64    `json:"campaign_id"`
	Threshold  *float64 `json:"threshold"`
}

type scoredDesignerResponse struct {
	Designer designerResponse `json:"designer"`
	Score    float64          `json:"score"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		Budget:        c.Budget,
		Ambiance:      c.Ambiance,
		PlatformPref:  c.PlatformPref,
		Interactivity: c.Interactivity,
		Style:         c.Style,
		Timeline:      c.Timeline,
		SubmittedAt:   c.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toDesignerResponse(d domain.Designer) designerResponse {
	return designerResponse{
		ID:                  d.ID,
		Name:                d.Name,
		RateTier:            d.RateTier,
		SceneTags:           domain.NormalizeTags(d.SceneTags),
		ExportFormats:       domain.NormalizeTags(d.ExportFormats),
		GameLogicExperience: d.GameLogicExperience,
		VisualMetadata:      domain.NormalizeTags(d.VisualMetadata),
		Availability:        d.Availability,
		PerformanceScore:    d.PerformanceScore,
	}
}
