package models

import (
	"strings"
)

// Listing is one job-search result row. Coverage varies per job board, so
// everything except Site and Title is optional. Optional fields are pointers
// so that "absent" survives serialization as an explicit null instead of a
// zero value.
type Listing struct {
	Site            string   `json:"site"`
	Title           string   `json:"title"`
	Company         *string  `json:"company"`
	Location        *string  `json:"location"`
	JobType         *string  `json:"job_type"`
	MinAmount       *float64 `json:"min_amount"`
	MaxAmount       *float64 `json:"max_amount"`
	Interval        *string  `json:"interval"`
	IsRemote        *bool    `json:"is_remote"`
	DatePosted      *Date    `json:"date_posted"`
	JobLevel        *string  `json:"job_level"`
	CompanyIndustry *string  `json:"company_industry"`
	Description     *string  `json:"description"`
}

// ResultSet is the ordered collection of listings from one search invocation.
// It is not deduplicated: the same job may appear once per board that lists it.
type ResultSet []Listing

// DisplayColumns is the canonical column order for tabular outputs (Excel,
// HTML). Description is deliberately not a display column; it still travels
// with the record exports (JSON, Parquet, SQLite).
var DisplayColumns = []string{
	"site",
	"title",
	"company",
	"location",
	"job_type",
	"min_amount",
	"max_amount",
	"interval",
	"is_remote",
	"date_posted",
	"job_level",
	"company_industry",
}

// Value returns the listing's value for a canonical column name, or nil when
// the field is absent. Pointer fields are dereferenced so callers get plain
// string/float64/bool values; dates come back as "YYYY-MM-DD" strings.
func (l *Listing) Value(column string) any {
	switch column {
	case "site":
		return l.Site
	case "title":
		return l.Title
	case "company":
		return strVal(l.Company)
	case "location":
		return strVal(l.Location)
	case "job_type":
		return strVal(l.JobType)
	case "min_amount":
		return floatVal(l.MinAmount)
	case "max_amount":
		return floatVal(l.MaxAmount)
	case "interval":
		return strVal(l.Interval)
	case "is_remote":
		if l.IsRemote == nil {
			return nil
		}
		return *l.IsRemote
	case "date_posted":
		if l.DatePosted == nil {
			return nil
		}
		return l.DatePosted.String()
	case "job_level":
		return strVal(l.JobLevel)
	case "company_industry":
		return strVal(l.CompanyIndustry)
	case "description":
		return strVal(l.Description)
	}
	return nil
}

// PresentColumns returns DisplayColumns restricted to columns that hold a
// value in at least one listing. Site and Title are required fields and are
// always included, even for an empty result set (headers must still render).
func (rs ResultSet) PresentColumns() []string {
	present := make([]string, 0, len(DisplayColumns))
	for _, col := range DisplayColumns {
		if col == "site" || col == "title" {
			present = append(present, col)
			continue
		}
		for i := range rs {
			if rs[i].Value(col) != nil {
				present = append(present, col)
				break
			}
		}
	}
	return present
}

// Sites returns the distinct site identifiers, case-sensitive, in first-seen
// order.
func (rs ResultSet) Sites() []string {
	seen := make(map[string]bool)
	var sites []string
	for i := range rs {
		if !seen[rs[i].Site] {
			seen[rs[i].Site] = true
			sites = append(sites, rs[i].Site)
		}
	}
	return sites
}

func strVal(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func floatVal(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// String helpers used across exporters.

// Str returns a pointer to s, for building listings literal-style.
func Str(s string) *string { return &s }

// Num returns a pointer to f.
func Num(f float64) *float64 { return &f }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// CompanyName returns the trimmed company name, or "" when absent. Empty and
// whitespace-only names count as absent for distinct-company statistics.
func (l *Listing) CompanyName() string {
	if l.Company == nil {
		return ""
	}
	return strings.TrimSpace(*l.Company)
}
