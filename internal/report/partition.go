package report

import (
	"sort"

	"github.com/shivani7798/JobSpy/internal/models"
)

// Partition is the slice of a result set belonging to one site.
type Partition struct {
	Site     string
	Listings models.ResultSet
}

// PartitionBySite groups listings by their site identifier, case-sensitive
// exact match. Unknown site names are fine and simply become their own
// partition. Partitions come back sorted lexicographically by site name so
// output ordering is reproducible across runs.
func PartitionBySite(rs models.ResultSet) []Partition {
	bySite := make(map[string]models.ResultSet)
	for i := range rs {
		bySite[rs[i].Site] = append(bySite[rs[i].Site], rs[i])
	}

	sites := make([]string, 0, len(bySite))
	for site := range bySite {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	parts := make([]Partition, 0, len(sites))
	for _, site := range sites {
		parts = append(parts, Partition{Site: site, Listings: bySite[site]})
	}
	return parts
}
