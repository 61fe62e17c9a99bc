package server

import (
	"encoding/json"
	"net/http"

	"github.com/PastaSec/orbitivexr/internal/domain"
)

func (s *Server) createDesigner(w http.ResponseWriter, r *http.Request) {
	var req designerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RateTier == nil {
		writeError(w, http.StatusBadRequest, "rate_tier is required")
		return
	}
	if *req.RateTier < 0 {
		writeError(w, http.StatusBadRequest, "rate_tier must be non-negative")
		return
	}
	if req.GameLogicExperience == nil {
		writeError(w, http.StatusBadRequest, "game_logic_experience is required")
		return
	}
	if *req.GameLogicExperience < 0 {
		writeError(w, http.StatusBadRequest, "game_logic_experience must be non-negative")
		return
	}

	designer := &domain.Designer{
		Name:                req.Name,
		RateTier:            req.RateTier,
		SceneTags:           domain.TagList(req.SceneTags),
		ExportFormats:       domain.TagList(req.ExportFormats),
		GameLogicExperience: req.GameLogicExperience,
		VisualMetadata:      domain.TagList(req.VisualMetadata),
		Availability:        req.Availability,
		PerformanceScore:    req.PerformanceScore,
	}

	created, err := s.designerSvc.Create(r.Context(), designer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to register designer")
		return
	}

	writeJSON(w, http.StatusCreated, toDesignerResponse(*created))
}

func (s *Server) listDesigners(w http.ResponseWriter, r *http.Request) {
	designers, err := s.designerSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list designers")
		return
	}

	resp := make([]designerResponse, 0, len(designers))
	for _, d := range designers {
		resp = append(resp, toDesignerResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}
