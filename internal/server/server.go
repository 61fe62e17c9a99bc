// Package server is the JSON REST surface of the matchmaking service:
// campaign submission, designer registration and match requests.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/PastaSec/orbitivexr/internal/config"
	"github.com/PastaSec/orbitivexr/internal/service"

	"github.com/rs/zerolog"
)

type Server struct {
	campaignSvc      *service.CampaignService
	designerSvc      *service.DesignerService
	matchSvc         *service.MatchService
	defaultThreshold float64
	logger           zerolog.Logger
}

func NewServer(
	campaignSvc *service.CampaignService,
	designerSvc *service.DesignerService,
	matchSvc *service.MatchService,
	cfg *config.Config,
	logger zerolog.Logger,
) *Server {
	return &Server{
		campaignSvc:      campaignSvc,
		designerSvc:      designerSvc,
		matchSvc:         matchSvc,
		defaultThreshold: cfg.MatchThreshold,
		logger:           logger,
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/campaigns", s.handleCampaigns)
	mux.HandleFunc("/designers", s.handleDesigners)
	mux.HandleFunc("/match", s.handleMatch)
	return mux
}

func (s *Server) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createCampaign(w, r)
	case http.MethodGet:
		s.listCampaigns(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleDesigners(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createDesigner(w, r)
	case http.MethodGet:
		s.listDesigners(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

type errorResponse struct {
	Detail string `json:"detail"`
}
