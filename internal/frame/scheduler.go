// Package frame schedules simulation ticks.
//
// The scheduler never sleeps or spawns goroutines itself. It queues requests
// that the platform drains and turns into timers (tea.Tick in the terminal,
// plain loops in headless mode), then hands each fired request back through
// Deliver. Every topic carries a generation counter; cancelling a topic bumps
// it, so a request fired after cancellation is recognised as stale and
// dropped before it can reach a simulation.
package frame

import (
	"sync"
	"time"
)

// Topic groups requests that are cancelled together.
type Topic uint8

const (
	TopicSimulation Topic = iota // Per-frame or fixed-rate game ticks
	TopicCountdown               // One-second countdown steps
	topicCount
)

func (t Topic) String() string {
	switch t {
	case TopicSimulation:
		return "simulation"
	case TopicCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// Kind says how the platform should wait before firing a request.
type Kind uint8

const (
	// KindFrame fires on the next display refresh.
	KindFrame Kind = iota
	// KindDelay fires after Request.Delay has elapsed.
	KindDelay
)

// Request is one pending callback.
type Request struct {
	Topic Topic
	Kind  Kind
	Delay time.Duration
	Gen   uint64

	// thenFrame marks the delay half of a fixed-rate request: when it fires it
	// becomes a frame request instead of reaching the caller.
	thenFrame bool
}

// Cadence describes how often a simulation wants to tick.
type Cadence struct {
	Fixed time.Duration // Zero means one tick per display refresh
}

// Variable reports whether ticks follow the display refresh rate.
func (c Cadence) Variable() bool {
	return c.Fixed <= 0
}

// Scheduler queues tick requests per topic. It is safe for concurrent use,
// although the lifecycle only drives it from one goroutine.
type Scheduler struct {
	mu      sync.Mutex
	gens    [topicCount]uint64
	pending []Request
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame asks for a callback on the next display refresh.
func (s *Scheduler) RequestFrame(t Topic) Request {
	return s.push(Request{Topic: t, Kind: KindFrame})
}

// RequestAfter asks for a callback once d has elapsed.
func (s *Scheduler) RequestAfter(t Topic, d time.Duration) Request {
	return s.push(Request{Topic: t, Kind: KindDelay, Delay: d})
}

// RequestFixed asks for a callback on the first display refresh after d has
// elapsed. It is the fixed-rate primitive layered over RequestFrame.
func (s *Scheduler) RequestFixed(t Topic, d time.Duration) Request {
	return s.push(Request{Topic: t, Kind: KindDelay, Delay: d, thenFrame: true})
}

// Next schedules the following tick for a cadence.
func (s *Scheduler) Next(t Topic, c Cadence) Request {
	if c.Variable() {
		return s.RequestFrame(t)
	}
	return s.RequestFixed(t, c.Fixed)
}

func (s *Scheduler) push(r Request) Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.Gen = s.gens[r.Topic]
	s.pending = append(s.pending, r)
	return r
}

// Cancel invalidates every queued and in-flight request of a topic.
func (s *Scheduler) Cancel(t Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gens[t]++
	kept := s.pending[:0]
	for _, r := range s.pending {
		if r.Topic != t {
			kept = append(kept, r)
		}
	}
	s.pending = kept
}

// CancelAll cancels every topic.
func (s *Scheduler) CancelAll() {
	for t := Topic(0); t < topicCount; t++ {
		s.Cancel(t)
	}
}

// Drain removes and returns the queued requests in request order.
func (s *Scheduler) Drain() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	out := s.pending
	s.pending = nil
	return out
}

// Pending returns how many requests are queued and not yet drained.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Live reports whether r still belongs to the current generation of its topic.
func (s *Scheduler) Live(r Request) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return r.Gen == s.gens[r.Topic]
}

// Fire validates a request whose wait has elapsed. It returns true when the
// callback should run. The delay stage of a fixed-rate request is converted
// into a frame request of the same generation and reports false.
func (s *Scheduler) Fire(r Request) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Gen != s.gens[r.Topic] {
		return false
	}
	if r.thenFrame {
		s.pending = append(s.pending, Request{Topic: r.Topic, Kind: KindFrame, Gen: r.Gen})
		return false
	}
	return true
}
