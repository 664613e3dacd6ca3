package handler

import (
	"encoding/json"
	"net/http"

	"github.com/campushub-dev/campushub/internal/config"
	"github.com/campushub-dev/campushub/internal/logger"
	"github.com/campushub-dev/campushub/internal/service"
)

type Handler struct {
	thread    service.ThreadService
	reply     service.ReplyService
	query     service.QueryService
	community service.CommunityService
	health    Pinger
	cfg       *config.Config
}

func New(thread service.ThreadService, reply service.ReplyService, query service.QueryService, community service.CommunityService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{thread, reply, query, community, health, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	// the status is already committed once Encode starts writing,
	// so an encode failure can only be logged
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}
