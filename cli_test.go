package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/target"
)

func runCLI(t *testing.T, args []string, in string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(args, strings.NewReader(in), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecuteWin(t *testing.T) {
	code, out, _ := runCLI(t, []string{"--low", "42", "--high", "42"}, "abc\n42\n")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Correct! You win!")
	assert.Contains(t, out, "You got it in 1 attempt.")
}

func TestExecuteAbortedExitsNonZero(t *testing.T) {
	code, out, _ := runCLI(t, []string{"--seed", "7"}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Input closed before the number was found.")
}

func TestExecuteRefusesReversedRange(t *testing.T) {
	code, out, errOut := runCLI(t, []string{"--low", "10", "--high", "1"}, "5\n")
	assert.Equal(t, exitConfig, code)
	assert.Empty(t, out, "no session may start")
	assert.Contains(t, errOut, "low bound is greater than high bound")
}

func TestExecuteRefusesReversedRangeFromEnv(t *testing.T) {
	t.Setenv("GUESS_LOW", "50")
	t.Setenv("GUESS_HIGH", "40")
	code, out, _ := runCLI(t, nil, "45\n")
	assert.Equal(t, exitConfig, code)
	assert.Empty(t, out)
}

func TestExecuteBadEnv(t *testing.T) {
	t.Setenv("GUESS_HIGH", "lots")
	code, _, errOut := runCLI(t, nil, "")
	assert.Equal(t, exitConfig, code)
	assert.Contains(t, errOut, "parse env")
}

func TestExecuteBadFlag(t *testing.T) {
	code, _, _ := runCLI(t, []string{"--low", "one"}, "")
	assert.Equal(t, exitConfig, code)

	code, _, _ = runCLI(t, []string{"extra"}, "")
	assert.Equal(t, exitConfig, code)
}

func TestExecuteHelp(t *testing.T) {
	code, out, _ := runCLI(t, []string{"--help"}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "--high")
}

func TestExecuteSQLiteJournal(t *testing.T) {
	code, out, _ := runCLI(t, []string{"--low", "3", "--high", "3", "--journal", "sqlite"}, "2\n3\n")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Your guesses: 2, 3")
}

func TestProviderSelection(t *testing.T) {
	assert.IsType(t, target.Random{}, provider(config.Config{}))
	assert.IsType(t, &target.Seeded{}, provider(config.Config{Seed: 1}))
	assert.IsType(t, target.Daily{}, provider(config.Config{Daily: true, Seed: 1}))
}

func TestExecuteRefusesFileJournal(t *testing.T) {
	t.Setenv("JOURNAL_BACKEND", "sqlite")
	t.Setenv("JOURNAL_DSN", "./data/journal.db")
	code, out, errOut := runCLI(t, nil, "1\n")
	assert.Equal(t, exitConfig, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "journal must stay in memory")
}
