// Package sse implements the server-sent-event pipeline used by the itinerary
// streaming endpoints: one emitter per client connection, pushing a fixed
// sequence of typed events plus transport-level heartbeat comments.
package sse

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const DefaultHeartbeatInterval = 15 * time.Second

const (
	EventStart     = "start"
	EventContent   = "content"
	EventReasoning = "reasoning"
	EventComplete  = "complete"
	EventError     = "error"
)

// Event is the wire payload of a single logical stream event. Exactly one of
// Message, Data or ItineraryID is set depending on Type.
type Event struct {
	Type        string `json:"type"`
	Message     string `json:"message,omitempty"`
	Data        string `json:"data,omitempty"`
	ItineraryID string `json:"itineraryId,omitempty"`
}

type state int

const (
	stateIdle state = iota
	stateStarted
	stateContentSent
	stateReasoningSent
	stateTerminal
)

// Emitter pushes events for a single request onto one open connection.
// Sequence: start → (content → reasoning)? → complete|error. Events attempted
// after the terminal state are dropped, as are all writes once the client
// connection has failed. The heartbeat ticker runs only between Start and
// Close; Close is safe to call more than once and must run on every exit path.
type Emitter struct {
	mu        sync.Mutex
	w         http.ResponseWriter
	flusher   http.Flusher
	interval  time.Duration
	state     state
	dead      bool
	done      chan struct{}
	closeOnce sync.Once
}

func NewEmitter(w http.ResponseWriter) *Emitter {
	return NewEmitterWithInterval(w, DefaultHeartbeatInterval)
}

func NewEmitterWithInterval(w http.ResponseWriter, interval time.Duration) *Emitter {
	flusher, _ := w.(http.Flusher)
	return &Emitter{
		w:        w,
		flusher:  flusher,
		interval: interval,
		state:    stateIdle,
		done:     make(chan struct{}),
	}
}

// SetStreamHeaders writes the SSE response headers. Must be called before the
// first frame; once the stream opens the HTTP status is always 200 and any
// later failure is reported as an error event.
func SetStreamHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream; charset=utf-8")
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("Connection", "keep-alive")
}

// Start emits the start event and begins the heartbeat loop. It must be
// called before any provider I/O so the client sees progress immediately.
func (e *Emitter) Start(message string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateIdle {
		return
	}
	e.state = stateStarted
	e.writeEvent(Event{Type: EventStart, Message: message})

	go e.heartbeatLoop()
}

// Content emits the itinerary body. At most once per stream, after Start.
func (e *Emitter) Content(data string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateStarted {
		return
	}
	e.state = stateContentSent
	e.writeEvent(Event{Type: EventContent, Data: data})
}

// Reasoning emits the planning rationale. At most once, after Content.
func (e *Emitter) Reasoning(data string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateContentSent {
		return
	}
	e.state = stateReasoningSent
	e.writeEvent(Event{Type: EventReasoning, Data: data})
}

// Complete terminates the stream with the persisted record's identifier.
// Emitted only when persistence succeeded.
func (e *Emitter) Complete(itineraryID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == stateIdle || e.state == stateTerminal {
		return
	}
	e.state = stateTerminal
	e.writeEvent(Event{Type: EventComplete, ItineraryID: itineraryID})
}

// Error terminates the stream with a human-readable message.
func (e *Emitter) Error(message string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == stateIdle || e.state == stateTerminal {
		return
	}
	e.state = stateTerminal
	e.writeEvent(Event{Type: EventError, Message: message})
}

// Close stops the heartbeat loop. Idempotent; callers defer it so the timer
// is released on success, provider failure, persistence failure and panic
// recovery alike.
func (e *Emitter) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
	})
}

func (e *Emitter) heartbeatLoop() {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.mu.Lock()
			if e.state != stateTerminal {
				e.writeRaw(":\n\n")
			}
			e.mu.Unlock()
		case <-e.done:
			return
		}
	}
}

// writeEvent marshals and writes one data frame. Caller holds e.mu.
func (e *Emitter) writeEvent(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("sse: failed to marshal %s event: %v", ev.Type, err)
		return
	}
	e.writeRaw(fmt.Sprintf("data: %s\n\n", payload))
}

// writeRaw writes one frame and flushes. The first failed write marks the
// emitter dead so a disconnected client stops all further frames.
func (e *Emitter) writeRaw(frame string) {
	if e.dead {
		return
	}
	if _, err := fmt.Fprint(e.w, frame); err != nil {
		e.dead = true
		return
	}
	if e.flusher != nil {
		e.flusher.Flush()
	}
}
