// Package sanitizer provides the field-level normalization used by the patient cleaner.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. String normalizers never fail. Coercions that can fail return an
// error instead of a zero value so callers can tell "missing" from "zero".
//
// Normalization includes:
//   - Names: Title casing only - "jOHN  smith" becomes "John  Smith", spacing untouched
//   - Ages: Integers, integral numeric text and JSON numbers coerce to int
package sanitizer
