package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kahua-labs/malama/internal/oahu"
	"github.com/kahua-labs/malama/internal/report"
	"github.com/kahua-labs/malama/internal/scoring"
	"github.com/kahua-labs/malama/internal/session"
	"github.com/kahua-labs/malama/internal/trip"
)

// MockSessions implements session.Store for testing
type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Put(sessionID string, e session.Entry) {
	m.Called(sessionID, e)
}

func (m *MockSessions) Get(sessionID string) (session.Entry, bool) {
	args := m.Called(sessionID)
	return args.Get(0).(session.Entry), args.Bool(1)
}

func (m *MockSessions) Delete(sessionID string) {
	m.Called(sessionID)
}

func (m *MockSessions) Len() int {
	args := m.Called()
	return args.Int(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine() *scoring.Engine {
	return scoring.NewEngine(oahu.DefaultFactors(), scoring.DefaultWeights(), discardLogger())
}

// sampleTrip is a week-long mainland visit with mixed habits. It fires
// exactly three advisories: transit, air conditioning, and showers.
func sampleTrip() trip.Parameters {
	return trip.Parameters{
		DurationDays:         7,
		FlightDistanceMiles:  3000,
		LocalTransport:       trip.TransportRentalEconomy,
		Accommodation:        trip.AccommodationStandardHotel,
		ACUsageHours:         8,
		LinenReuse:           true,
		WaterConservation:    0.5,
		SingleUseRefusal:     0.5,
		LocalFoodShare:       0.5,
		PlantBasedShare:      0.5,
		FoodWasteReduction:   0.5,
		ShowerMinutes:        8,
		PoolHours:            1,
		ReusableBottle:       true,
		ReusableBag:          true,
		CleanupParticipation: true,
		SustainableSeafood:   true,
		Activities:           []trip.Activity{trip.ActivityBeachRelaxation, trip.ActivityTrailHiking},
		WildlifeDistance:     true,
		ReefSafeSunscreen:    true,
	}
}

// heavyweightTrip trips every advisory rule, thirteen in total.
func heavyweightTrip() trip.Parameters {
	return trip.Parameters{
		DurationDays:        10,
		FlightDistanceMiles: 6000,
		LocalTransport:      trip.TransportRentalSUV,
		Accommodation:       trip.AccommodationLuxuryResort,
		ACUsageHours:        10,
		LocalFoodShare:      0.2,
		ShowerMinutes:       12,
		PoolHours:           4,
		Activities: []trip.Activity{
			trip.ActivityMotorizedWaterSports,
			trip.ActivityReefSnorkeling,
			trip.ActivityWildlifeTour,
		},
	}
}

func postCalculation(t *testing.T, h *CalculationsHandler, sid string, p trip.Parameters) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal trip: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/v1/calculations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", sid)
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	return rr
}

func TestCreateCalculation(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	rr := postCalculation(t, handler, uuid.NewString(), sampleTrip())
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp CalculationResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.GreaterOrEqual(t, resp.Result.OverallScore, 0)
	assert.LessOrEqual(t, resp.Result.OverallScore, 100)
	assert.Len(t, resp.Recommendations, 3)
	assert.Equal(t, report.ScoreHex(resp.Result.OverallScore), resp.ScoreColor)
	assert.NotEmpty(t, resp.ScoreContext)
	assert.False(t, resp.ComputedAt.IsZero())
	assert.Greater(t, resp.Result.CarbonFootprintTons, 0.0)
	assert.Greater(t, resp.Result.WaterGallonsPerDay, 0)
}

func TestCreateCalculationInvalidBody(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	req := httptest.NewRequest("POST", "/api/v1/calculations", strings.NewReader("not json"))
	req.Header.Set("X-Session-ID", uuid.NewString())
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid request body")
}

func TestCreateCalculationRejectsBadParameters(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	t.Run("zero duration", func(t *testing.T) {
		p := sampleTrip()
		p.DurationDays = 0
		rr := postCalculation(t, handler, uuid.NewString(), p)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "duration_days")
	})

	t.Run("unknown transport mode", func(t *testing.T) {
		p := sampleTrip()
		p.LocalTransport = "submarine"
		rr := postCalculation(t, handler, uuid.NewString(), p)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "local_transport")
	})
}

func TestCreateStoresEntryUnderSession(t *testing.T) {
	sessions := &MockSessions{}
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	sid := uuid.NewString()
	sessions.On("Put", sid, mock.AnythingOfType("session.Entry"))

	rr := postCalculation(t, handler, sid, sampleTrip())

	assert.Equal(t, http.StatusOK, rr.Code)
	sessions.AssertExpectations(t)

	entry := sessions.Calls[0].Arguments.Get(1).(session.Entry)
	assert.Len(t, entry.Recommendations, 3)
	assert.False(t, entry.ComputedAt.IsZero())
}

func TestCreateCountsCalculations(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	served := &atomic.Int64{}
	handler := NewCalculationsHandler(testEngine(), sessions, 5, served)

	postCalculation(t, handler, uuid.NewString(), sampleTrip())
	postCalculation(t, handler, uuid.NewString(), heavyweightTrip())

	assert.Equal(t, int64(2), served.Load())
}

func TestRecommendationsTruncatedToDisplayLimit(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	sid := uuid.NewString()
	rr := postCalculation(t, handler, sid, heavyweightTrip())
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp CalculationResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Recommendations, 5)

	// The stored entry keeps the full list.
	entry, ok := sessions.Get(sid)
	assert.True(t, ok)
	assert.Len(t, entry.Recommendations, 13)
}

func TestLatestReturnsStoredCalculation(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	sid := uuid.NewString()
	created := postCalculation(t, handler, sid, sampleTrip())
	var want CalculationResponse
	assert.NoError(t, json.NewDecoder(created.Body).Decode(&want))

	req := httptest.NewRequest("GET", "/api/v1/calculations/latest", nil)
	req.Header.Set("X-Session-ID", sid)
	rr := httptest.NewRecorder()
	handler.Latest(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got CalculationResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, want.Result.OverallScore, got.Result.OverallScore)
	assert.Equal(t, want.ScoreColor, got.ScoreColor)
}

func TestLatestMissing(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	req := httptest.NewRequest("GET", "/api/v1/calculations/latest", nil)
	req.Header.Set("X-Session-ID", uuid.NewString())
	rr := httptest.NewRecorder()
	handler.Latest(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no calculation for this session")
}

func TestResetDeletesSession(t *testing.T) {
	sessions := &MockSessions{}
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	sid := uuid.NewString()
	sessions.On("Delete", sid)

	req := httptest.NewRequest("DELETE", "/api/v1/calculations/latest", nil)
	req.Header.Set("X-Session-ID", sid)
	rr := httptest.NewRecorder()
	handler.Reset(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	sessions.AssertExpectations(t)
}

func TestExplainBreakdown(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	sid := uuid.NewString()
	postCalculation(t, handler, sid, sampleTrip())

	req := httptest.NewRequest("GET", "/api/v1/calculations/latest/explain", nil)
	req.Header.Set("X-Session-ID", sid)
	rr := httptest.NewRecorder()
	handler.Explain(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		OverallScore int                      `json:"overall_score"`
		Categories   []scoring.CategoryResult `json:"categories"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Categories, 6)
	assert.Equal(t, scoring.CategoryTransport, resp.Categories[0].Category)
}

func TestExplainMissing(t *testing.T) {
	sessions := session.New(100, time.Hour, discardLogger())
	handler := NewCalculationsHandler(testEngine(), sessions, 5, &atomic.Int64{})

	req := httptest.NewRequest("GET", "/api/v1/calculations/latest/explain", nil)
	req.Header.Set("X-Session-ID", uuid.NewString())
	rr := httptest.NewRecorder()
	handler.Explain(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
