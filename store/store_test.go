package store

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.csv")

	w, err := Open(path, Write)
	assert.NoError(t, err)
	assert.NoError(t, w.WriteRecord("last_ticket", "1001"))
	assert.NoError(t, w.WriteRecord("comment", "breakout, eur"))
	assert.NoError(t, w.Close())

	r, err := Open(path, Read)
	assert.NoError(t, err)
	defer r.Close()

	k, v, err := r.ReadRecord()
	assert.NoError(t, err)
	assert.Equal(t, "last_ticket", k)
	assert.Equal(t, "1001", v)

	k, v, err = r.ReadRecord()
	assert.NoError(t, err)
	assert.Equal(t, "comment", k)
	assert.Equal(t, "breakout, eur", v) // commas survive the round trip

	_, _, err = r.ReadRecord()
	assert.Equal(t, io.EOF, err)
}

func TestOpenMissingFileFailsImmediately(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"), Read)
	assert.Error(t, err)
}

func TestClosedHandleRefusesAll(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.csv")

	w, err := Open(path, Write)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	assert.ErrorIs(t, w.WriteRecord("k", "v"), ErrClosed)
	assert.ErrorIs(t, w.Close(), ErrClosed)

	r, err := Open(path, Read)
	assert.NoError(t, err)
	assert.NoError(t, r.Close())

	_, _, err = r.ReadRecord()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWrongMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.csv")

	w, err := Open(path, Write)
	assert.NoError(t, err)
	defer w.Close()

	_, _, err = w.ReadRecord()
	assert.ErrorIs(t, err, ErrWrongMode)

	assert.NoError(t, w.WriteRecord("k", "v"))

	r, err := Open(path, Read)
	assert.NoError(t, err)
	defer r.Close()

	assert.ErrorIs(t, r.WriteRecord("k", "v"), ErrWrongMode)
}
