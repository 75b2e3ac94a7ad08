package input

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineSequence(t *testing.T) {
	r := NewReader(strings.NewReader("10\n50\r\n42"))

	for _, want := range []string{"10\n", "50\r\n", "42"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.ReadLine()
	assert.ErrorIs(t, err, ErrInputClosed)
	_, err = r.ReadLine()
	assert.ErrorIs(t, err, ErrInputClosed, "closed stays closed")
}

func TestReadLineEmptyStream(t *testing.T) {
	_, err := NewReader(strings.NewReader("")).ReadLine()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestReadLineBlankLineIsALine(t *testing.T) {
	got, err := NewReader(strings.NewReader("\n")).ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "\n", got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReadLineWrapsOtherErrors(t *testing.T) {
	_, err := NewReader(failingReader{}).ReadLine()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, err.Error(), "device gone")
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error { c.closed = true; return nil }

func TestCloseReleasesCloser(t *testing.T) {
	src := &closeTracker{Reader: strings.NewReader("")}
	r := NewReader(src)
	require.NoError(t, r.Close())
	assert.True(t, src.closed)

	assert.NoError(t, NewReader(strings.NewReader("")).Close())
}
