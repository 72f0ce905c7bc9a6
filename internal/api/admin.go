package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/kahua-labs/malama/internal/session"
)

type AdminHandler struct {
	sessions session.Store
	calcs    *atomic.Int64
	started  time.Time
}

func NewAdminHandler(s session.Store, calcs *atomic.Int64) *AdminHandler {
	return &AdminHandler{sessions: s, calcs: calcs, started: time.Now()}
}

type StatsResponse struct {
	ActiveSessions     int   `json:"active_sessions"`
	CalculationsServed int64 `json:"calculations_served"`
	UptimeSeconds      int64 `json:"uptime_seconds"`
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsResponse{
		ActiveSessions:     h.sessions.Len(),
		CalculationsServed: h.calcs.Load(),
		UptimeSeconds:      int64(time.Since(h.started).Seconds()),
	})
}
