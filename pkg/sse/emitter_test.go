package sse_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/pkg/sse"
)

// decodeFrames splits an SSE body into logical events and counts heartbeat
// comment frames.
func decodeFrames(t *testing.T, body string) ([]sse.Event, int) {
	t.Helper()

	var events []sse.Event
	heartbeats := 0
	for _, frame := range strings.Split(body, "\n\n") {
		frame = strings.TrimSpace(frame)
		switch {
		case frame == "":
		case strings.HasPrefix(frame, ":"):
			heartbeats++
		case strings.HasPrefix(frame, "data: "):
			var ev sse.Event
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frame, "data: ")), &ev))
			events = append(events, ev)
		default:
			t.Fatalf("unexpected frame: %q", frame)
		}
	}
	return events, heartbeats
}

func eventTypes(events []sse.Event) []string {
	types := make([]string, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	return types
}

func TestEmitter_SuccessSequence(t *testing.T) {
	rec := httptest.NewRecorder()
	em := sse.NewEmitter(rec)
	defer em.Close()

	em.Start("Starting itinerary generation...")
	em.Content("Day 1: beaches")
	em.Reasoning("relaxed pace fits two travelers")
	em.Complete("abc-123")

	events, _ := decodeFrames(t, rec.Body.String())
	require.Equal(t, []string{"start", "content", "reasoning", "complete"}, eventTypes(events))
	assert.Equal(t, "abc-123", events[3].ItineraryID)
	assert.Equal(t, "Day 1: beaches", events[1].Data)
}

func TestEmitter_ProviderFailureSequence(t *testing.T) {
	rec := httptest.NewRecorder()
	em := sse.NewEmitter(rec)
	defer em.Close()

	em.Start("Starting itinerary generation...")
	em.Error("gemini: connection refused")

	events, _ := decodeFrames(t, rec.Body.String())
	require.Equal(t, []string{"start", "error"}, eventTypes(events))
	assert.Equal(t, "gemini: connection refused", events[1].Message)
}

func TestEmitter_PersistenceFailureSequence(t *testing.T) {
	rec := httptest.NewRecorder()
	em := sse.NewEmitter(rec)
	defer em.Close()

	em.Start("Starting itinerary generation...")
	em.Content("content")
	em.Reasoning("reasoning")
	em.Error("Failed to save itinerary")

	events, _ := decodeFrames(t, rec.Body.String())
	require.Equal(t, []string{"start", "content", "reasoning", "error"}, eventTypes(events))
}

func TestEmitter_NoEventsAfterTerminal(t *testing.T) {
	rec := httptest.NewRecorder()
	em := sse.NewEmitter(rec)
	defer em.Close()

	em.Start("starting")
	em.Error("boom")
	em.Content("late content")
	em.Complete("late-id")
	em.Error("second error")

	events, _ := decodeFrames(t, rec.Body.String())
	require.Equal(t, []string{"start", "error"}, eventTypes(events))
}

func TestEmitter_NothingBeforeStart(t *testing.T) {
	rec := httptest.NewRecorder()
	em := sse.NewEmitter(rec)
	defer em.Close()

	em.Content("early")
	em.Complete("early-id")

	events, _ := decodeFrames(t, rec.Body.String())
	assert.Empty(t, events)
}

func TestEmitter_HeartbeatsAreCommentFrames(t *testing.T) {
	rec := httptest.NewRecorder()
	em := sse.NewEmitterWithInterval(rec, 10*time.Millisecond)

	em.Start("starting")
	time.Sleep(45 * time.Millisecond)
	em.Complete("abc")
	em.Close()
	time.Sleep(20 * time.Millisecond)

	events, heartbeats := decodeFrames(t, rec.Body.String())
	require.Equal(t, []string{"start", "complete"}, eventTypes(events))
	assert.GreaterOrEqual(t, heartbeats, 1)
}

func TestEmitter_CloseIsIdempotent(t *testing.T) {
	rec := httptest.NewRecorder()
	em := sse.NewEmitter(rec)

	em.Start("starting")
	em.Complete("abc")
	em.Close()
	em.Close()
}

func TestSetStreamHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	sse.SetStreamHeaders(rec)

	assert.Equal(t, "text/event-stream; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-transform", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", rec.Header().Get("Connection"))
}
