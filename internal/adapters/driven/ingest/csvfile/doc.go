// Package csvfile provides a CSV-file implementation of the table
// source port. It reads inventory exports into header-named raw
// tables; all typing and validation happen downstream in the merge.
package csvfile
