package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the validate package
var (
	// ErrInvalidTileset indicates a tileset id that is not {account}.{id}
	ErrInvalidTileset = errors.New("must follow the {account}.{id} naming (each with 32 chars max)")

	// ErrInvalidAccount indicates a malformed account name
	ErrInvalidAccount = errors.New("account name must have 32 chars max and no blank space")

	// ErrInvalidDate indicates a date outside YYYY / YYYY-MM-DD or not on the calendar
	ErrInvalidDate = errors.New("date must be in either {YYYY} or {YYYY-MM-DD} format")

	// ErrBandParse indicates a bidx value that is not a comma-separated integer list
	ErrBandParse = errors.New("bidx must be a string with 3 or 4 ints comma-separated, representing the band indexes for R,G,B(,A)")

	// ErrBandCount indicates a bidx list with other than 3 or 4 entries
	ErrBandCount = errors.New("band array length can be 3 or 4")

	// ErrBandNotPositive indicates a bidx entry lower than 1
	ErrBandNotPositive = errors.New("bands must be a positive number")

	// ErrInvalidNodata indicates an ndv value that is not three positive integers
	ErrInvalidNodata = errors.New("ndv must be 3 comma-separated positive integers")

	// ErrInvalidCRS indicates a crs that is not in the EPSG namespace
	ErrInvalidCRS = errors.New("crs string must start with EPSG:")

	// ErrSourceScheme indicates sources without the s3:// scheme
	ErrSourceScheme = errors.New("sources do not have the required 's3' scheme")

	// ErrDuplicateSource indicates sources listed more than once
	ErrDuplicateSource = errors.New("duplicated sources cannot be processed")

	// ErrSourceEncoding indicates sources that are not valid UTF-8
	ErrSourceEncoding = errors.New("sources are not valid UTF-8")

	// ErrInvalidEncoding indicates a free-text value that is not valid UTF-8
	ErrInvalidEncoding = errors.New("value must be valid UTF-8 text")
)

// ValidationError reports a single field that failed its format check
type ValidationError struct {
	Field Field
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: %v", e.Value, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError
func NewValidationError(field Field, value string, err error) *ValidationError {
	return &ValidationError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

// SourceError lists every source entry rejected by Sources
type SourceError struct {
	BadEncoding []string
	NonS3       []string
	Duplicates  []string
}

func (e *SourceError) Error() string {
	var parts []string
	if len(e.BadEncoding) > 0 {
		parts = append(parts, fmt.Sprintf("%v: %s", ErrSourceEncoding, quoteAll(e.BadEncoding)))
	}
	if len(e.NonS3) > 0 {
		parts = append(parts, fmt.Sprintf("%v: %s", ErrSourceScheme, quoteAll(e.NonS3)))
	}
	if len(e.Duplicates) > 0 {
		parts = append(parts, fmt.Sprintf("%v: %s", ErrDuplicateSource, quoteAll(e.Duplicates)))
	}
	return "invalid sources: " + strings.Join(parts, "; ")
}

// Is matches the sentinel for each kind of offending entry present
func (e *SourceError) Is(target error) bool {
	switch target {
	case ErrSourceEncoding:
		return len(e.BadEncoding) > 0
	case ErrSourceScheme:
		return len(e.NonS3) > 0
	case ErrDuplicateSource:
		return len(e.Duplicates) > 0
	}
	return false
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
