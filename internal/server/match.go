package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/PastaSec/orbitivexr/internal/domain"
)

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	threshold := s.defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	matched, err := s.matchSvc.Match(r.Context(), req.CampaignID, threshold)
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("campaign %d not found", req.CampaignID))
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to match designers")
		return
	}

	resp := make([]scoredDesignerResponse, 0, len(matched))
	for _, sd := range matched {
		resp = append(resp, scoredDesignerResponse{
			Designer: toDesignerResponse(sd.Designer),
			Score:    sd.Score,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
