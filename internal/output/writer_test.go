package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriter_Stdout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterOptions{Stdout: &buf})

	err := w.Write([]byte(`{"a": 1}`), "")

	require.NoError(t, err)
	assert.Equal(t, "{\"a\": 1}\n", buf.String())
}

func TestWriter_StdoutError(t *testing.T) {
	w := NewWriter(WriterOptions{Stdout: failingWriter{}})

	err := w.Write([]byte("{}"), "")

	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestWriter_File(t *testing.T) {
	var stdout bytes.Buffer
	w := NewWriter(WriterOptions{Stdout: &stdout})
	path := filepath.Join(t.TempDir(), "manifest.json")

	require.NoError(t, w.Write([]byte(`{"a": 1}`), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))
	assert.Empty(t, stdout.String())
}

func TestWriter_FileOverwrite(t *testing.T) {
	w := NewWriter(WriterOptions{})
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0644))

	require.NoError(t, w.Write([]byte("{}"), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriter_FileUnwritable(t *testing.T) {
	w := NewWriter(WriterOptions{})
	path := filepath.Join(t.TempDir(), "missing", "manifest.json")

	err := w.Write([]byte("{}"), path)

	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
