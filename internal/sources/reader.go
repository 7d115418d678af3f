// Package sources reads the newline-delimited list of image sources that
// feeds a manifest. Lists may be plain text or gzip/zstd compressed.
package sources

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/quantmind-br/pxm-manifest/internal/validate"
)

// Stdin is the path that selects standard input
const Stdin = "-"

// maxLineSize bounds a single source line
const maxLineSize = 1024 * 1024

// ErrRead indicates the source list could not be read
var ErrRead = errors.New("failed to read sources")

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Reader loads source lists from paths or streams
type Reader struct {
	stdin io.Reader
}

// NewReader creates a Reader that resolves "-" to stdin
func NewReader(stdin io.Reader) *Reader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Reader{stdin: stdin}
}

// Load reads, trims and validates the source list at path
func (r *Reader) Load(path string) ([]string, error) {
	lines, err := r.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return validate.Sources(lines)
}

// ReadLines returns the trimmed lines at path without validating them
func (r *Reader) ReadLines(path string) ([]string, error) {
	if path == "" || path == Stdin {
		return ReadLines(r.stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	return ReadLines(f)
}

// ReadLines decompresses in if needed and returns each line with
// surrounding whitespace removed
func ReadLines(in io.Reader) ([]string, error) {
	body, closeFn, err := decompress(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer closeFn()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return lines, nil
}

// decompress sniffs the stream magic and wraps it in the matching decoder
func decompress(in io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(in)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip reader failed: %w", err)
		}
		return gz, func() { gz.Close() }, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd reader failed: %w", err)
		}
		return zr, zr.Close, nil
	default:
		return br, func() {}, nil
	}
}
