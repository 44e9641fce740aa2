package tailbuffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusBufferCreation(t *testing.T) {
	b := NewStatusBuffer(0)
	require.NotNil(t, b)
	require.Empty(t, b.Status())
	require.Empty(t, b.Lines())
}

func TestStatusBufferWriteLine(t *testing.T) {
	b := NewStatusBuffer(4)
	b.WriteLine("Locating model")
	b.WriteLine("Warming up model")
	require.Equal(t, "Warming up model", b.Status())
	require.Equal(t, []string{"Locating model", "Warming up model"}, b.Lines())
}

func TestStatusBufferEvictsOldest(t *testing.T) {
	b := NewStatusBuffer(2)
	b.WriteLine("one")
	b.WriteLine("two")
	b.WriteLine("three")
	require.Equal(t, []string{"two", "three"}, b.Lines())
	require.Equal(t, "three", b.Status())
}

func TestStatusBufferWrite(t *testing.T) {
	b := NewStatusBuffer(4)
	n, err := b.Write([]byte("first\nsecond\npar"))
	require.NoError(t, err)
	require.Equal(t, 16, n)
	// The unterminated fragment becomes the status but not a tail line.
	require.Equal(t, "par", b.Status())
	require.Equal(t, []string{"first", "second"}, b.Lines())

	_, err = b.Write([]byte("tial\n"))
	require.NoError(t, err)
	require.Equal(t, "partial", b.Status())
	require.Equal(t, []string{"first", "second", "partial"}, b.Lines())
}

func TestStatusBufferSkipsEmptyLines(t *testing.T) {
	b := NewStatusBuffer(4)
	_, err := b.Write([]byte("one\n\n\ntwo\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, b.Lines())
}
