// Package settings provides the process-wide key/value configuration store.
//
// The package includes:
//   - Store: a string-to-string mapping with defaults, lookups and overrides
//   - Provider: an injectable handle that creates exactly one Store on first
//     use, even when several goroutines ask for it at the same time
//
// Keys are case-insensitive; see NormalizeKey. A missing key is a normal outcome and is reported through the boolean
// result of Get, never as an error.
package settings
