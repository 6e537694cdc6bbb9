package httputil

import (
	"errors"
	"net/http"
	"testing"
)

func TestMockClientQueuedResponses(t *testing.T) {
	m := NewMockClient().
		QueueResponse(200, "ok").
		QueueResponse(500, "fail").
		QueueError(errors.New("boom"))

	req, _ := http.NewRequest(http.MethodGet, "http://camera.local:5807/capturesnapshot", nil)

	resp, err := m.Do(req)
	if err != nil || resp.StatusCode != 200 {
		t.Fatalf("first response = (%v, %v), want 200", resp, err)
	}
	resp.Body.Close()

	resp, err = m.Do(req)
	if err != nil || resp.StatusCode != 500 {
		t.Fatalf("second response = (%v, %v), want 500", resp, err)
	}
	resp.Body.Close()

	if _, err = m.Do(req); err == nil {
		t.Fatal("third request should return the queued error")
	}

	// Exhausted queue falls back to 200.
	resp, err = m.Do(req)
	if err != nil || resp.StatusCode != 200 {
		t.Fatalf("fallback response = (%v, %v), want 200", resp, err)
	}
	resp.Body.Close()

	if m.RequestCount() != 4 {
		t.Errorf("RequestCount = %d, want 4", m.RequestCount())
	}
	if m.Request(0) == nil || m.Request(4) != nil {
		t.Error("Request indexing out of range not handled")
	}
}

func TestNewStandardClientNilFallback(t *testing.T) {
	c := NewStandardClient(nil)
	if c.Client != http.DefaultClient {
		t.Error("nil client should fall back to http.DefaultClient")
	}
}
