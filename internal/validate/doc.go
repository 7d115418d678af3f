// Package validate holds the syntax checks applied to every pxm-manifest
// input before a manifest is assembled.
//
// Each check is a pure function from the raw command-line string to a typed
// value. The checks are independent of each other and are collected in
// Registry, keyed by Field, so callers can look them up by flag name.
//
// # Error Handling
//
// Every failure is a *ValidationError wrapping one of the sentinel errors:
//   - ErrInvalidTileset: tileset is not {account}.{id}
//   - ErrInvalidAccount: account name is not [a-z0-9-_]{1,32}
//   - ErrInvalidDate: date is not a real YYYY or YYYY-MM-DD
//   - ErrBandParse, ErrBandCount, ErrBandNotPositive: bad bidx list
//   - ErrInvalidNodata: ndv is not three positive integers
//   - ErrInvalidCRS: crs does not start with EPSG:
//   - ErrInvalidEncoding: free text (license, product, notes, color) is not UTF-8
//
// The source list reports all offending entries at once through *SourceError,
// which matches ErrSourceEncoding, ErrSourceScheme and/or ErrDuplicateSource.
package validate
