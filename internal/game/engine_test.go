package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		guess  int64
		target int64
		want   Verdict
	}{
		{name: "below", guess: 10, target: 42, want: TooLow},
		{name: "above", guess: 50, target: 42, want: TooHigh},
		{name: "equal", guess: 42, target: 42, want: Correct},
		{name: "low bound", guess: 1, target: 1, want: Correct},
		{name: "high bound", guess: 100, target: 100, want: Correct},
		{name: "low bound below target", guess: 1, target: 2, want: TooLow},
		{name: "high bound above target", guess: 100, target: 99, want: TooHigh},
		{name: "extremes", guess: math.MinInt64, target: math.MaxInt64, want: TooLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.guess, tt.target))
		})
	}
}

func TestCompareReflexiveOverRange(t *testing.T) {
	for g := int64(1); g <= 100; g++ {
		require.Equal(t, Correct, Compare(g, g), "guess %d", g)
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	pairs := [][2]int64{{-5, 3}, {0, 1}, {1, 100}, {99, 100}, {math.MinInt64, 0}, {0, math.MaxInt64}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, TooLow, Compare(a, b), "%d vs %d", a, b)
		assert.Equal(t, TooHigh, Compare(b, a), "%d vs %d", b, a)
	}
}

func TestSessionScenario(t *testing.T) {
	s := NewSession(42)
	require.NotEmpty(t, s.ID)
	assert.Equal(t, AwaitingInput, s.State)
	assert.Equal(t, int64(42), s.Target())

	want := []Verdict{TooLow, TooHigh, Correct}
	for i, g := range []int64{10, 50, 42} {
		require.NoError(t, s.Begin())
		v, err := s.Apply(g)
		require.NoError(t, err)
		assert.Equal(t, want[i], v)
	}
	assert.Equal(t, Won, s.State)
	assert.Equal(t, 3, s.Attempts)
	assert.Equal(t, 0, s.Failures)
}

func TestSessionRejectDoesNotCountAttempt(t *testing.T) {
	s := NewSession(5)
	require.NoError(t, s.Begin())
	require.NoError(t, s.Reject())
	assert.Equal(t, 0, s.Attempts)
	assert.Equal(t, 1, s.Failures)
	assert.Equal(t, AwaitingInput, s.State)

	v, err := s.Apply(5)
	require.NoError(t, err)
	assert.Equal(t, Correct, v)
	assert.Equal(t, 1, s.Attempts)
}

func TestSessionTerminalStates(t *testing.T) {
	s := NewSession(7)
	_, err := s.Apply(7)
	require.NoError(t, err)

	_, err = s.Apply(7)
	assert.ErrorIs(t, err, ErrSessionOver)
	assert.ErrorIs(t, s.Reject(), ErrSessionOver)
	assert.ErrorIs(t, s.Begin(), ErrSessionOver)

	s.Abort()
	assert.Equal(t, Won, s.State, "abort must not overwrite a win")

	a := NewSession(7)
	a.Abort()
	assert.Equal(t, Aborted, a.State)
	assert.True(t, a.State.Terminal())
	_, err = a.Apply(7)
	assert.ErrorIs(t, err, ErrSessionOver)
	assert.Equal(t, 0, a.Attempts)
}

func TestSessionIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewSession(1).ID, NewSession(1).ID)
}
