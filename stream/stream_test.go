package stream

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTripMultipleDocuments(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	docs := []any{
		[]any{int64(1), int64(2), int64(3)},
		map[string]any{"name": "gosmile"},
		"third document is a bare string",
	}
	for _, d := range docs {
		require.NoError(t, w.WriteDocument(d))
	}
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)

	got0, err := r.ReadDocument()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got0)

	got1, err := r.ReadDocument()
	require.NoError(t, err)
	m, ok := got1.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "gosmile", m["name"])

	got2, err := r.ReadDocument()
	require.NoError(t, err)
	assert.Equal(t, "third document is a bare string", got2)

	_, err = r.ReadDocument()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderEmptyStreamIsImmediateEOF(t *testing.T) {
	r, err := NewReader(bytes.NewReader(nil))
	require.NoError(t, err)

	_, err = r.ReadDocument()
	assert.ErrorIs(t, err, io.EOF)
}
