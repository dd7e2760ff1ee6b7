package search

import (
	"context"
	"fmt"
	"time"

	"github.com/shivani7798/JobSpy/internal/models"
	"github.com/shivani7798/JobSpy/internal/report"
)

// FileProvider replays a result set that was previously exported to a JSON
// record file (or produced by any tool emitting the same shape). It applies
// the query's site, job-type, remote and recency filters locally, and caps
// each site at ResultsWanted, so a large capture can stand in for a live
// search run.
type FileProvider struct {
	path string
	now  func() time.Time
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path, now: time.Now}
}

func (p *FileProvider) Name() string { return "file:" + p.path }

func (p *FileProvider) Search(ctx context.Context, q Query) (models.ResultSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all, err := report.ReadJSON(p.path)
	if err != nil {
		return nil, fmt.Errorf("search source unavailable: %w", err)
	}

	wantSite := make(map[string]bool, len(q.Sites))
	for _, s := range q.Sites {
		wantSite[s] = true
	}

	now := p.now()
	perSite := make(map[string]int)
	var rs models.ResultSet
	for i := range all {
		l := all[i]
		if len(wantSite) > 0 && !wantSite[l.Site] {
			continue
		}
		if !matchesJobType(&l, q.JobType) {
			continue
		}
		if q.RemoteOnly && (l.IsRemote == nil || !*l.IsRemote) {
			continue
		}
		if !postedWithin(&l, q.PostedWithinHours, now) {
			continue
		}
		if q.ResultsWanted > 0 && perSite[l.Site] >= q.ResultsWanted {
			continue
		}
		if !q.FetchDescription {
			l.Description = nil
		}
		perSite[l.Site]++
		rs = append(rs, l)
	}
	return rs, nil
}

func matchesJobType(l *models.Listing, jobType string) bool {
	if jobType == "" {
		return true
	}
	return l.JobType != nil && *l.JobType == jobType
}
