package server

import (
	"encoding/json"
	"net/http"

	"github.com/PastaSec/orbitivexr/internal/domain"
)

func (s *Server) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Budget < 0 {
		writeError(w, http.StatusBadRequest, "budget must be non-negative")
		return
	}
	if req.Interactivity < 0 {
		writeError(w, http.StatusBadRequest, "interactivity must be non-negative")
		return
	}

	campaign := &domain.Campaign{
		Budget:        req.Budget,
		Ambiance:      req.Ambiance,
		PlatformPref:  req.PlatformPref,
		Interactivity: req.Interactivity,
		Style:         req.Style,
		Timeline:      req.Timeline,
	}

	created, err := s.campaignSvc.Create(r.Context(), campaign)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create campaign")
		return
	}

	writeJSON(w, http.StatusCreated, toCampaignResponse(*created))
}

func (s *Server) listCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := s.campaignSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list campaigns")
		return
	}

	resp := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, toCampaignResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}
