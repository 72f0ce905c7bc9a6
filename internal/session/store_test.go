package session

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kahua-labs/malama/internal/scoring"
)

func newTestStore(ttl time.Duration) *MemoryStore {
	return New(100, ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPutGet(t *testing.T) {
	s := newTestStore(time.Hour)

	e := Entry{
		Result:     scoring.ImpactResult{OverallScore: 72},
		ComputedAt: time.Now(),
	}
	s.Put("session-a", e)

	got, ok := s.Get("session-a")
	if !ok {
		t.Fatal("expected stored entry")
	}
	if got.Result.OverallScore != 72 {
		t.Errorf("overall = %d, want 72", got.Result.OverallScore)
	}
}

func TestGetMissingSession(t *testing.T) {
	s := newTestStore(time.Hour)
	if _, ok := s.Get("nobody"); ok {
		t.Error("expected miss for unknown session")
	}
}

func TestPutReplacesPrevious(t *testing.T) {
	s := newTestStore(time.Hour)

	s.Put("session-a", Entry{Result: scoring.ImpactResult{OverallScore: 40}})
	s.Put("session-a", Entry{Result: scoring.ImpactResult{OverallScore: 80}})

	got, ok := s.Get("session-a")
	if !ok {
		t.Fatal("expected stored entry")
	}
	if got.Result.OverallScore != 80 {
		t.Errorf("overall = %d, want the replacement 80", got.Result.OverallScore)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(time.Hour)

	s.Put("session-a", Entry{Result: scoring.ImpactResult{OverallScore: 72}})
	s.Delete("session-a")

	if _, ok := s.Get("session-a"); ok {
		t.Error("expected miss after delete")
	}
}

func TestDeleteUnknownSessionIsNoop(t *testing.T) {
	s := newTestStore(time.Hour)
	s.Delete("nobody")
}

func TestEntryExpires(t *testing.T) {
	s := newTestStore(10 * time.Millisecond)

	s.Put("session-a", Entry{Result: scoring.ImpactResult{OverallScore: 72}})
	time.Sleep(25 * time.Millisecond)

	if _, ok := s.Get("session-a"); ok {
		t.Error("expected expired entry to read as a miss")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	s := newTestStore(time.Hour)

	s.Put("session-a", Entry{Result: scoring.ImpactResult{OverallScore: 10}})
	s.Put("session-b", Entry{Result: scoring.ImpactResult{OverallScore: 90}})
	s.Delete("session-a")

	if _, ok := s.Get("session-a"); ok {
		t.Error("session-a should be gone")
	}
	got, ok := s.Get("session-b")
	if !ok || got.Result.OverallScore != 90 {
		t.Errorf("session-b disturbed: ok=%v overall=%d", ok, got.Result.OverallScore)
	}
}
