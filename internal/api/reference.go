package api

import (
	"net/http"

	"github.com/kahua-labs/malama/internal/oahu"
	"github.com/kahua-labs/malama/internal/trip"
)

// ReferenceHandler serves the static lookup data clients render forms
// and info panels from.
type ReferenceHandler struct {
	factors oahu.Factors
}

func NewReferenceHandler(f oahu.Factors) *ReferenceHandler {
	return &ReferenceHandler{factors: f}
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionsResponse struct {
	TransportModes     []Option `json:"transport_modes"`
	AccommodationTypes []Option `json:"accommodation_types"`
	Activities         []Option `json:"activities"`
}

// Factors returns the island baseline the engine scores against.
// GET /api/v1/factors
func (h *ReferenceHandler) Factors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.factors)
}

// Options returns the selectable trip choices with display labels.
// GET /api/v1/options
func (h *ReferenceHandler) Options(w http.ResponseWriter, r *http.Request) {
	resp := OptionsResponse{}
	for _, m := range trip.TransportModes() {
		resp.TransportModes = append(resp.TransportModes, Option{Value: string(m), Label: m.Label()})
	}
	for _, a := range trip.AccommodationTypes() {
		resp.AccommodationTypes = append(resp.AccommodationTypes, Option{Value: string(a), Label: a.Label()})
	}
	for _, a := range trip.Activities() {
		resp.Activities = append(resp.Activities, Option{Value: string(a), Label: a.Label()})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Resources returns curated sustainability programs and organizations.
// GET /api/v1/resources
func (h *ReferenceHandler) Resources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, oahu.TouristResources())
}
