package workflow

import (
	"context"
	"log"
	"sync"

	"github.com/fhsmendes/cep-clima/metrics"
)

// Session owns the State of one screen. Every transition replaces the whole
// State under the lock, so readers never see a mix of two lookups.
type Session struct {
	runner Runner

	mu          sync.Mutex
	state       State
	inFlight    bool
	subscribers []func(State)
}

func NewSession(runner Runner) *Session {
	return &Session{runner: runner, state: Idle()}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every later transition, called in order from
// the goroutine running Submit.
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Submit runs one lookup and returns its terminal state. While another
// lookup is in flight the call is ignored and the current state is returned
// as is.
func (s *Session) Submit(ctx context.Context, cep string) State {
	s.mu.Lock()
	if s.inFlight {
		current := s.state
		s.mu.Unlock()
		log.Printf("Lookup %s still running, ignoring zipcode: %s", current.LookupID, cep)
		metrics.IgnoredSubmission()
		return current
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	return s.runner.Execute(ctx, cep, s.apply)
}

func (s *Session) apply(next State) {
	s.mu.Lock()
	s.state = next
	subscribers := make([]func(State), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(next)
	}
}
