package report

import (
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shivani7798/JobSpy/internal/models"
)

// NotApplicable is reported for statistics that have no data to compute from
// (salary averages with no amounts, job-type mode with no job types).
const NotApplicable = "N/A"

// Summary holds the aggregate statistics for one result set. Nil averages and
// an empty TopJobType mean "no data"; Rows renders those as NotApplicable.
type Summary struct {
	TotalJobs       int
	UniqueSites     int
	UniqueCompanies int
	RemoteJobs      int
	AvgMinAmount    *float64
	AvgMaxAmount    *float64
	TopJobType      string
}

// Summarize computes the summary statistics for a result set. An empty result
// set is fine: counts come out zero and the averages/mode stay unset.
func Summarize(rs models.ResultSet) Summary {
	s := Summary{TotalJobs: len(rs)}

	companies := make(map[string]bool)
	jobTypes := make(map[string]int)
	var minSum, maxSum float64
	var minN, maxN int

	for i := range rs {
		l := &rs[i]
		if name := l.CompanyName(); name != "" {
			companies[name] = true
		}
		if l.IsRemote != nil && *l.IsRemote {
			s.RemoteJobs++
		}
		if l.MinAmount != nil {
			minSum += *l.MinAmount
			minN++
		}
		if l.MaxAmount != nil {
			maxSum += *l.MaxAmount
			maxN++
		}
		if l.JobType != nil && *l.JobType != "" {
			jobTypes[*l.JobType]++
		}
	}

	s.UniqueSites = len(rs.Sites())
	s.UniqueCompanies = len(companies)
	if minN > 0 {
		avg := minSum / float64(minN)
		s.AvgMinAmount = &avg
	}
	if maxN > 0 {
		avg := maxSum / float64(maxN)
		s.AvgMaxAmount = &avg
	}
	s.TopJobType = modeOf(jobTypes)
	return s
}

// modeOf picks the most frequent key. Ties break lexicographically on the
// label so repeated runs over identical data always report the same mode.
func modeOf(freq map[string]int) string {
	labels := make([]string, 0, len(freq))
	for label := range freq {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := ""
	bestCount := 0
	for _, label := range labels {
		if freq[label] > bestCount {
			best = label
			bestCount = freq[label]
		}
	}
	return best
}

// Rows returns the summary as metric/value pairs in the order they appear on
// the Summary sheet.
func (s Summary) Rows() [][2]string {
	return [][2]string{
		{"Total Jobs Found", itoa(s.TotalJobs)},
		{"Unique Job Sites", itoa(s.UniqueSites)},
		{"Unique Companies", itoa(s.UniqueCompanies)},
		{"Remote Jobs", itoa(s.RemoteJobs)},
		{"Average Min Salary (£)", currencyOrNA(s.AvgMinAmount)},
		{"Average Max Salary (£)", currencyOrNA(s.AvgMaxAmount)},
		{"Most Common Job Type", orNA(s.TopJobType)},
	}
}

var gbp = message.NewPrinter(language.BritishEnglish)

// FormatGBP renders an amount as "£1,234.56" with locale-aware grouping.
func FormatGBP(v float64) string {
	return gbp.Sprintf("£%.2f", v)
}

func currencyOrNA(v *float64) string {
	if v == nil {
		return NotApplicable
	}
	return FormatGBP(*v)
}

func orNA(s string) string {
	if s == "" {
		return NotApplicable
	}
	return s
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
