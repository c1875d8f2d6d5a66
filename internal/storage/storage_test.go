package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	rows int64
	err  error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.rows, f.err }

func TestRequireRow(t *testing.T) {
	require.NoError(t, requireRow(fakeResult{rows: 1}))
	require.ErrorIs(t, requireRow(fakeResult{rows: 0}), ErrNotFound)

	boom := errors.New("boom")
	require.ErrorIs(t, requireRow(fakeResult{rows: 1, err: boom}), boom)
}
