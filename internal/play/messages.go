package play

import (
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/numguess/internal/game"
)

// User-facing text.
const (
	msgGreeting  = "Guess the number! It is between %d and %d.\n"
	msgPrompt    = "Please input your guess: "
	msgRejected  = "%s. Please type a whole number.\n"
	msgTooLow    = "Too low!"
	msgTooHigh   = "Too high!"
	msgCorrect   = "Correct! You win!"
	msgRangeHint = " (the number is between %d and %d)"
	msgSummary   = "You got it in %d attempt%s.\n"
	msgHistory   = "Your guesses: %s\n"
	msgAborted   = "\nInput closed before the number was found. It was %d.\n"
)

func verdictText(v game.Verdict) string {
	switch v {
	case game.TooLow:
		return msgTooLow
	case game.TooHigh:
		return msgTooHigh
	}
	return msgCorrect
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
