// Package report writes benchmark run results as CSV, one row per
// (dataset, algorithm) pair, using the standard library's encoding/csv
// writer for RFC 4180-correct quoting.
package report
