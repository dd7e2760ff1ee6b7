package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "data_engineer_jobs_2025-03-14_09-26-53.xlsx", Filename("data_engineer_jobs", "xlsx", ts))
}

func TestFilename_OneSecondApartNeverCollides(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	first := Filename("jobs", "json", ts)
	second := Filename("jobs", "json", ts.Add(time.Second))
	assert.NotEqual(t, first, second)
}
