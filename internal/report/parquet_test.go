package report

import (
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteParquet_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.parquet")
	require.NoError(t, WriteParquet(path, sampleResultSet()))

	rows, err := parquet.ReadFile[parquetRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "indeed", rows[0].Site)
	if assert.NotNil(t, rows[0].MinAmount) {
		assert.Equal(t, 50000.0, *rows[0].MinAmount, "numeric columns stay numeric")
	}
	if assert.NotNil(t, rows[0].IsRemote) {
		assert.True(t, *rows[0].IsRemote, "boolean columns stay boolean")
	}
	assert.Nil(t, rows[1].MinAmount, "nulls stay null")
	assert.Nil(t, rows[1].DatePosted)
}

func TestWriteParquet_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteParquet(path, nil))

	rows, err := parquet.ReadFile[parquetRow](path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
