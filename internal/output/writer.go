// Package output writes encoded manifests to a file or to standard output.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/pxm-manifest/internal/utils"
)

// ErrWriteFailed indicates writing output failed
var ErrWriteFailed = errors.New("write failed")

// Writer emits manifest bytes to a path or to stdout
type Writer struct {
	stdout io.Writer
	log    *utils.Logger
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Stdout io.Writer
	Logger *utils.Logger
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Writer{
		stdout: opts.Stdout,
		log:    opts.Logger.WithComponent("output"),
	}
}

// Write sends data to path, or to stdout followed by a newline when path
// is empty. An existing file is truncated; a partially written file is
// left in place on error.
func (w *Writer) Write(data []byte, path string) error {
	if path == "" {
		w.log.Debug().Int("bytes", len(data)).Msg("Writing manifest to stdout")
		if _, err := w.stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		if _, err := io.WriteString(w.stdout, "\n"); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		return nil
	}

	w.log.WithPath(path).Debug().Int("bytes", len(data)).Msg("Writing manifest file")
	return writeFile(path, data)
}

func writeFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteFailed, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
