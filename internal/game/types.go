// internal/game/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Verdict: three-way outcome of comparing a guess to the target.
//   - State: lifecycle of a single session.
//   - Session: state for a single in-progress or finished game.

package game

import "errors"

// Verdict represents the evaluation result for a single guess.
type Verdict int

const (
	TooLow Verdict = iota
	TooHigh
	Correct
)

func (v Verdict) String() string {
	switch v {
	case TooLow:
		return "too_low"
	case TooHigh:
		return "too_high"
	case Correct:
		return "correct"
	}
	return "unknown"
}

// State is the coarse position of a session in the game loop.
type State int

const (
	AwaitingInput State = iota
	Evaluating
	Won
	Aborted
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case Evaluating:
		return "evaluating"
	case Won:
		return "won"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool { return s == Won || s == Aborted }

// ErrSessionOver is returned when a finished session receives more input.
var ErrSessionOver = errors.New("game: session finished")

// Session holds the state of a single game.
type Session struct {
	ID       string // Unique session identifier (UUID), used in logs.
	State    State  // Current position in the loop.
	Attempts int    // Successfully parsed guesses evaluated so far.
	Failures int    // Lines rejected by the parser.

	target int64 // fixed at creation
}
