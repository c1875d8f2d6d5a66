// Package storage implements Postgres-backed repositories for quiz content
// and participant progress.
package storage

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("storage: not found")
