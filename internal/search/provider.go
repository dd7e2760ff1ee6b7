// Define the contract with the upstream job-search capability.
// The report side only ever consumes its Result Set shape.

package search

import (
	"context"

	"github.com/shivani7798/JobSpy/internal/models"
)

// Query carries the named search options handed to the upstream provider.
// How the search is actually performed (which boards exist, pagination, rate
// limits, auth) is entirely the provider's business.
type Query struct {
	Sites             []string `yaml:"sites"`
	SearchTerm        string   `yaml:"search_term"`
	Location          string   `yaml:"location"`
	ResultsWanted     int      `yaml:"results_wanted"`
	Country           string   `yaml:"country"`
	JobType           string   `yaml:"job_type"`
	RemoteOnly        bool     `yaml:"remote_only"`
	PostedWithinHours int      `yaml:"posted_within_hours"`
	FetchDescription  bool     `yaml:"fetch_description"`
}

// Provider is an opaque job-search capability. Errors from a provider are
// upstream failures: they propagate to the caller unmodified and are never
// retried here.
type Provider interface {
	// Search runs one search invocation and returns its result set.
	Search(ctx context.Context, q Query) (models.ResultSet, error)

	// Name identifies the provider for logs.
	Name() string
}
