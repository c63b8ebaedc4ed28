package events

import (
	"sync"

	"sponsorscout-engine/internal/domain"
)

// Stream is the one-way ordered channel from an agent run to its caller.
// The orchestrator is the sole producer. Exactly one result frame is ever
// sent, it is always the last frame, and the channel is closed right after
// it; consumers may simply range over Frames.
type Stream struct {
	ch chan Frame

	mu       sync.Mutex
	finished bool
}

// NewStream returns a stream with room for buf in-flight frames. The
// consumer is expected to drain until close; a zero or negative buf gets a
// small default so the producer never trips over a slow first read.
func NewStream(buf int) *Stream {
	if buf <= 0 {
		buf = 64
	}
	return &Stream{ch: make(chan Frame, buf)}
}

// Frames is the consumer side. Closed after the result frame.
func (s *Stream) Frames() <-chan Frame { return s.ch }

// Step emits a step frame. Dropped silently once the result has been sent.
func (s *Stream) Step(ev domain.StepEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	s.ch <- NewFrame(FrameStep, ev)
}

// Result emits the terminal result frame and closes the stream. Safe to
// call more than once; only the first call wins.
func (s *Stream) Result(res domain.AgentResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	s.finished = true
	s.ch <- NewFrame(FrameResult, res)
	close(s.ch)
}

// Finished reports whether the terminal frame has been sent.
func (s *Stream) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}
