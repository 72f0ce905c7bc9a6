package api

import (
	"net/http"
)

// Explain returns the weighted category breakdown behind the session's
// latest calculation.
// GET /api/v1/calculations/latest/explain
func (h *CalculationsHandler) Explain(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.sessions.Get(sessionID(r))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no calculation for this session"})
		return
	}

	resp := map[string]interface{}{
		"overall_score": entry.Result.OverallScore,
		"categories":    h.engine.Explain(entry.Result),
	}
	writeJSON(w, http.StatusOK, resp)
}
