// Package dataset loads flat listing files into in-memory tables and
// provides the coerce-or-null numeric conversion that feeds the dashboard.
//
// A Table is rebuilt from disk on every page view and is never mutated
// after load except by the coercion pass. Values that fail to parse as
// numbers after cleanup become missing-value markers instead of errors.
package dataset
