package realtime

import (
	"errors"
	"testing"
)

func TestHealthStartsIdle(t *testing.T) {
	s := NewSubscriber(nil)

	h := s.GetHealth()
	if h.IsHealthy {
		t.Fatal("new subscriber should not report a live stream")
	}
	if h.Emitted != 0 {
		t.Fatalf("emitted = %d, want 0 before any snapshot", h.Emitted)
	}
	if h.LastError != "" {
		t.Fatalf("lastError = %q, want empty", h.LastError)
	}
}

func TestHealthRecordsLastError(t *testing.T) {
	s := NewSubscriber(nil)
	s.setError(errors.New("stream closed"))

	h := s.GetHealth()
	if h.LastError != "stream closed" {
		t.Fatalf("lastError = %q, want the recorded failure", h.LastError)
	}
	if h.IsHealthy {
		t.Fatal("subscriber with a recorded failure and no stream should be unhealthy")
	}
}
