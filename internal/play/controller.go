// internal/play/controller.go
//
// Game loop controller: owns one Session and drives it to a terminal state.
// Responsibilities:
//   - Draw the target exactly once per session.
//   - Read a line, parse it, compare it, report the verdict.
//   - Re-prompt on malformed input without counting an attempt.
//   - Stop on a correct guess (Won) or on closed input (Aborted).
//   - Record every evaluated line in the session journal.
//
// Notes:
//   - The loop is synchronous; ReadLine blocks with no timeout.
//   - Journal failures are logged and never end a session.

package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/input"
	"github.com/robalobadob/numguess/internal/journal"
	"github.com/robalobadob/numguess/internal/target"
)

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeWon Outcome = iota
	OutcomeAborted
)

// ExitCode maps an outcome to the process exit status.
func (o Outcome) ExitCode() int {
	if o == OutcomeWon {
		return 0
	}
	return 1
}

func (o Outcome) String() string {
	if o == OutcomeWon {
		return "won"
	}
	return "aborted"
}

// Result summarizes a finished session.
type Result struct {
	SessionID string
	Outcome   Outcome
	Target    int64
	Attempts  int
	Failures  int
}

// Options wires a Controller. Provider, In and Out are required.
type Options struct {
	Provider target.Provider
	Low      int64
	High     int64
	In       io.Reader
	Out      io.Writer
	Journal  journal.Journal  // defaults to an in-memory journal
	Logger   *zerolog.Logger  // defaults to a disabled logger
	Now      func() time.Time // defaults to time.Now
}

// Controller runs a single guessing session.
type Controller struct {
	provider target.Provider
	low      int64
	high     int64
	reader   *input.Reader
	out      io.Writer
	journal  journal.Journal
	log      zerolog.Logger
	now      func() time.Time
}

// New validates opts and builds a Controller. A reversed range is rejected
// here so no session is ever created for it.
func New(opts Options) (*Controller, error) {
	if opts.Provider == nil {
		return nil, errors.New("play: provider is required")
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("play: input and output are required")
	}
	if opts.Low > opts.High {
		return nil, fmt.Errorf("play: invalid range [%d, %d]", opts.Low, opts.High)
	}
	c := &Controller{
		provider: opts.Provider,
		low:      opts.Low,
		high:     opts.High,
		reader:   input.NewReader(opts.In),
		out:      opts.Out,
		journal:  opts.Journal,
		log:      zerolog.Nop(),
		now:      opts.Now,
	}
	if c.journal == nil {
		c.journal = journal.NewMemory()
	}
	if opts.Logger != nil {
		c.log = *opts.Logger
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c, nil
}

// Run plays one session to completion. The returned error is non-nil only
// when input failed for a reason other than the stream closing; the Result
// is valid either way.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	defer c.reader.Close()

	s := game.NewSession(c.provider.Draw(c.low, c.high))
	log := c.log.With().Str("session", s.ID).Logger()
	log.Info().Int64("low", c.low).Int64("high", c.high).Msg("session started")

	c.printf(msgGreeting, c.low, c.high)

	for !s.State.Terminal() {
		c.printf(msgPrompt)
		raw, err := c.reader.ReadLine()
		if err != nil {
			s.Abort()
			c.printf(msgAborted, s.Target())
			log.Info().Int("attempts", s.Attempts).Msg("input closed before a win")
			res := c.result(s, OutcomeAborted)
			if errors.Is(err, input.ErrInputClosed) {
				return res, nil
			}
			log.Error().Err(err).Msg("read guess")
			return res, err
		}
		if err := s.Begin(); err != nil {
			return c.result(s, OutcomeAborted), err
		}
		c.evaluate(ctx, log, s, raw)
	}

	c.printf(msgSummary, s.Attempts, plural(s.Attempts))
	c.printHistory(ctx, log, s)
	log.Info().Int("attempts", s.Attempts).Int("failures", s.Failures).Msg("session won")
	return c.result(s, OutcomeWon), nil
}

// evaluate handles one line while the session is Evaluating.
func (c *Controller) evaluate(ctx context.Context, log zerolog.Logger, s *game.Session, raw string) {
	line := strings.TrimRight(raw, "\r\n")
	seq := s.Attempts + s.Failures + 1

	guess, err := game.Parse(raw)
	if err != nil {
		_ = s.Reject()
		c.printf(msgRejected, capitalize(err.Error()))
		ev := log.Debug().Str("raw", line)
		var pf *game.ParseFailure
		if errors.As(err, &pf) {
			ev = ev.Stringer("reason", pf.Reason)
		}
		ev.Msg("guess rejected")
		c.record(ctx, log, journal.Entry{SessionID: s.ID, Seq: seq, Raw: line, Outcome: journal.Rejected})
		return
	}

	v, err := s.Apply(guess)
	if err != nil {
		log.Error().Err(err).Msg("apply guess")
		return
	}
	c.printf("%s%s\n", verdictText(v), c.rangeHint(v, guess))
	log.Debug().Int64("guess", guess).Stringer("verdict", v).Int("attempt", s.Attempts).Msg("guess evaluated")
	c.record(ctx, log, journal.Entry{SessionID: s.ID, Seq: seq, Raw: line, Guess: &guess, Outcome: v.String()})
}

func (c *Controller) record(ctx context.Context, log zerolog.Logger, e journal.Entry) {
	e.At = c.now().UTC()
	if err := c.journal.Record(ctx, e); err != nil {
		log.Warn().Err(err).Int("seq", e.Seq).Msg("journal record")
	}
}

func (c *Controller) printHistory(ctx context.Context, log zerolog.Logger, s *game.Session) {
	entries, err := c.journal.Entries(ctx, s.ID)
	if err != nil {
		log.Warn().Err(err).Msg("journal read")
		return
	}
	guesses := journal.Guesses(entries)
	if len(guesses) == 0 {
		return
	}
	parts := make([]string, len(guesses))
	for i, g := range guesses {
		parts[i] = fmt.Sprint(g)
	}
	c.printf(msgHistory, strings.Join(parts, ", "))
}

// rangeHint reminds the player of the bounds when a wrong guess fell outside them.
func (c *Controller) rangeHint(v game.Verdict, guess int64) string {
	if v == game.Correct || (guess >= c.low && guess <= c.high) {
		return ""
	}
	return fmt.Sprintf(msgRangeHint, c.low, c.high)
}

func (c *Controller) result(s *game.Session, o Outcome) Result {
	return Result{
		SessionID: s.ID,
		Outcome:   o,
		Target:    s.Target(),
		Attempts:  s.Attempts,
		Failures:  s.Failures,
	}
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
