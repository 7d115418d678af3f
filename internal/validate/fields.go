package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Field names a validated manifest input; the value matches its flag name
type Field string

const (
	FieldTileset Field = "tileset"
	FieldAccount Field = "account"
	FieldDate    Field = "date"
	FieldBidx    Field = "bidx"
	FieldNodata  Field = "ndv"
	FieldCRS     Field = "crs"

	// Free-text fields, only checked for encoding
	FieldLicense Field = "license"
	FieldProduct Field = "product"
	FieldNotes   Field = "notes"
	FieldColor   Field = "color"
)

// Func validates a raw string and returns its typed value
type Func func(raw string) (any, error)

// Registry maps every validated field to its check
var Registry = map[Field]Func{
	FieldTileset: func(raw string) (any, error) { return Tileset(raw) },
	FieldAccount: func(raw string) (any, error) { return Account(raw) },
	FieldDate:    func(raw string) (any, error) { return Date(raw) },
	FieldBidx:    func(raw string) (any, error) { return BandIndexes(raw) },
	FieldNodata:  func(raw string) (any, error) { return NodataValues(raw) },
	FieldCRS:     func(raw string) (any, error) { return CRS(raw) },
	FieldLicense: textFunc(FieldLicense),
	FieldProduct: textFunc(FieldProduct),
	FieldNotes:   textFunc(FieldNotes),
	FieldColor:   textFunc(FieldColor),
}

func textFunc(field Field) Func {
	return func(raw string) (any, error) { return Text(field, raw) }
}

// Check runs the registered check for field
func Check(field Field, raw string) (any, error) {
	fn, ok := Registry[field]
	if !ok {
		return nil, fmt.Errorf("no validator registered for field %q", field)
	}
	return fn(raw)
}

const crsPrefix = "EPSG:"

var (
	tilesetRegex = regexp.MustCompile(`^[a-z0-9_-]{1,32}\.[a-z0-9_-]{1,32}$`)
	accountRegex = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)
	yearRegex    = regexp.MustCompile(`^[0-9]{4}$`)
	dayRegex     = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// Tileset checks a Mapbox-style {account}.{id} tileset id
func Tileset(raw string) (string, error) {
	if !tilesetRegex.MatchString(raw) {
		return "", NewValidationError(FieldTileset, raw, ErrInvalidTileset)
	}
	return raw, nil
}

// Account checks a Mapbox account name
func Account(raw string) (string, error) {
	if !accountRegex.MatchString(raw) {
		return "", NewValidationError(FieldAccount, raw, ErrInvalidAccount)
	}
	return raw, nil
}

// Date checks a YYYY or YYYY-MM-DD date that exists on the calendar.
// Year 0000 is rejected.
func Date(raw string) (string, error) {
	var layout string
	switch {
	case yearRegex.MatchString(raw):
		layout = "2006"
	case dayRegex.MatchString(raw):
		layout = "2006-01-02"
	default:
		return "", NewValidationError(FieldDate, raw, ErrInvalidDate)
	}

	t, err := time.Parse(layout, raw)
	if err != nil || t.Year() < 1 {
		return "", NewValidationError(FieldDate, raw, ErrInvalidDate)
	}
	return raw, nil
}

// BandIndexes parses an R,G,B[,A] band index list
func BandIndexes(raw string) ([]int, error) {
	bands, err := parseInts(raw)
	if err != nil {
		return nil, NewValidationError(FieldBidx, raw, ErrBandParse)
	}
	if len(bands) != 3 && len(bands) != 4 {
		return nil, NewValidationError(FieldBidx, raw, ErrBandCount)
	}
	if !allPositive(bands) {
		return nil, NewValidationError(FieldBidx, raw, ErrBandNotPositive)
	}
	return bands, nil
}

// NodataValues parses a list of exactly three positive nodata values
func NodataValues(raw string) ([]int, error) {
	values, err := parseInts(raw)
	if err != nil || len(values) != 3 || !allPositive(values) {
		return nil, NewValidationError(FieldNodata, raw, ErrInvalidNodata)
	}
	return values, nil
}

// CRS checks that a coordinate reference system is an EPSG code
func CRS(raw string) (string, error) {
	if !strings.HasPrefix(raw, crsPrefix) {
		return "", NewValidationError(FieldCRS, raw, ErrInvalidCRS)
	}
	return raw, nil
}

// Text accepts any free-text value that is valid UTF-8
func Text(field Field, raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", NewValidationError(field, raw, ErrInvalidEncoding)
	}
	return raw, nil
}

func parseInts(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func allPositive(values []int) bool {
	for _, v := range values {
		if v <= 0 {
			return false
		}
	}
	return true
}
