package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/kahua-labs/malama/internal/advisor"
	"github.com/kahua-labs/malama/internal/report"
	"github.com/kahua-labs/malama/internal/scoring"
	"github.com/kahua-labs/malama/internal/session"
	"github.com/kahua-labs/malama/internal/trip"
)

type CalculationsHandler struct {
	engine   *scoring.Engine
	sessions session.Store
	limit    int
	calcs    *atomic.Int64
}

func NewCalculationsHandler(e *scoring.Engine, s session.Store, limit int, calcs *atomic.Int64) *CalculationsHandler {
	return &CalculationsHandler{engine: e, sessions: s, limit: limit, calcs: calcs}
}

type CalculationResponse struct {
	Result          scoring.ImpactResult `json:"result"`
	Recommendations []advisor.Advisory   `json:"recommendations"`
	Comparison      report.Comparison    `json:"comparison"`
	ScoreColor      string               `json:"score_color"`
	ScoreContext    string               `json:"score_context"`
	ComputedAt      time.Time            `json:"computed_at"`
}

// Create scores a trip and stores the outcome under the caller's session.
// POST /api/v1/calculations
func (h *CalculationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params trip.Parameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.engine.ComputeImpact(params)
	if err != nil {
		calculationErrors.Inc()
		if errors.Is(err, trip.ErrInvalidParameter) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	entry := session.Entry{
		Params:          params,
		Result:          result,
		Recommendations: advisor.Derive(params, result),
		ComputedAt:      time.Now().UTC(),
	}
	h.sessions.Put(sessionID(r), entry)

	h.calcs.Add(1)
	calculationsTotal.Inc()
	overallScores.Observe(float64(result.OverallScore))

	writeJSON(w, http.StatusOK, h.respond(entry))
}

// Latest returns the most recent calculation for the caller's session.
// GET /api/v1/calculations/latest
func (h *CalculationsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.sessions.Get(sessionID(r))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no calculation for this session"})
		return
	}
	writeJSON(w, http.StatusOK, h.respond(entry))
}

// Reset discards the caller's stored calculation.
// DELETE /api/v1/calculations/latest
func (h *CalculationsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(sessionID(r))
	w.WriteHeader(http.StatusNoContent)
}

// respond builds the response envelope. The advisor never truncates its
// output, so the display limit is applied here.
func (h *CalculationsHandler) respond(e session.Entry) CalculationResponse {
	recs := e.Recommendations
	if h.limit > 0 && len(recs) > h.limit {
		recs = recs[:h.limit]
	}
	return CalculationResponse{
		Result:          e.Result,
		Recommendations: recs,
		Comparison:      report.Compare(e.Result),
		ScoreColor:      report.ScoreHex(e.Result.OverallScore),
		ScoreContext:    report.ScoreContext(e.Result.OverallScore),
		ComputedAt:      e.ComputedAt,
	}
}

func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
