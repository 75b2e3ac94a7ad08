// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create sessions around an immutable target.
//   - Compare guesses against the target (three-way verdict).
//   - Track state transitions: awaiting_input → evaluating → won/aborted.
//   - Keep attempt accounting honest: only parsed guesses count.
//
// Notes:
//   - Targets are drawn by the target package; this package never picks one.
//   - Session IDs are UUIDs for correlating log lines.
package game

import (
	"github.com/google/uuid"
)

// NewSession constructs a session waiting for its first guess.
func NewSession(target int64) *Session {
	return &Session{
		ID:     uuid.NewString(),
		State:  AwaitingInput,
		target: target,
	}
}

// Target returns the hidden number.
func (s *Session) Target() int64 { return s.target }

// Begin moves the session into evaluation of a freshly read line.
func (s *Session) Begin() error {
	if s.State.Terminal() {
		return ErrSessionOver
	}
	s.State = Evaluating
	return nil
}

// Apply scores a parsed guess and advances the session.
//
// State transitions:
//   - Attempts is incremented for every applied guess.
//   - Correct → Won (terminal); anything else → AwaitingInput.
func (s *Session) Apply(guess int64) (Verdict, error) {
	if s.State.Terminal() {
		return 0, ErrSessionOver
	}
	s.Attempts++

	v := Compare(guess, s.target)
	if v == Correct {
		s.State = Won
	} else {
		s.State = AwaitingInput
	}
	return v, nil
}

// Reject records a line that failed to parse. Attempts is untouched.
func (s *Session) Reject() error {
	if s.State.Terminal() {
		return ErrSessionOver
	}
	s.Failures++
	s.State = AwaitingInput
	return nil
}

// Abort ends the session without a win. Aborting a won session is a no-op.
func (s *Session) Abort() {
	if s.State == Won {
		return
	}
	s.State = Aborted
}

// Compare orders a guess against the target.
func Compare(guess, target int64) Verdict {
	switch {
	case guess < target:
		return TooLow
	case guess > target:
		return TooHigh
	default:
		return Correct
	}
}
