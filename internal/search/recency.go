package search

import (
	"time"

	"github.com/shivani7798/JobSpy/internal/models"
)

// postedWithin reports whether the listing was posted inside the last `hours`
// hours. Listings without a posting date pass: source coverage of date_posted
// is patchy and a missing date is not evidence the job is stale. Dates more
// than two days in the future are rejected as timezone noise.
func postedWithin(l *models.Listing, hours int, now time.Time) bool {
	if hours <= 0 {
		return true
	}
	if l.DatePosted == nil {
		return true
	}

	diff := now.Sub(l.DatePosted.Time)
	if diff > time.Duration(hours)*time.Hour {
		return false
	}
	if diff < -2*24*time.Hour {
		return false
	}
	return true
}
