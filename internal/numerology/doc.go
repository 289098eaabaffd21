// Package numerology computes the psychomatrix of a birth date.
//
// The pipeline is:
//
//	"DD.MM.YYYY" -> DigitSequence -> WorkingNumbers -> FullDigitArray
//	                                                -> interpretation keys
//	                                                -> special numbers
//
// Personal-year forecasts and pairwise compatibility are computed from the
// same intermediate values.
//
// Everything in this package is pure: no I/O, no logging, no package-level
// mutable state. An *Engine is immutable after New returns, so one instance can
// be shared by any number of goroutines. Interpretation, task and forecast
// tables are supplied by the caller (see internal/catalog) and are only read.
package numerology
