// Package records loads the (url, name) pairs that drive a fetch run from a
// header-bearing CSV or XLSX file.
package records
