package report

import (
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/shivani7798/JobSpy/internal/models"
)

// parquetRow mirrors the canonical field set with parquet-friendly types.
// Pointer fields map to optional columns, so nulls survive and numeric,
// boolean and timestamp columns keep their physical types.
type parquetRow struct {
	Site            string     `parquet:"site"`
	Title           string     `parquet:"title"`
	Company         *string    `parquet:"company,optional"`
	Location        *string    `parquet:"location,optional"`
	JobType         *string    `parquet:"job_type,optional"`
	MinAmount       *float64   `parquet:"min_amount,optional"`
	MaxAmount       *float64   `parquet:"max_amount,optional"`
	Interval        *string    `parquet:"interval,optional"`
	IsRemote        *bool      `parquet:"is_remote,optional"`
	DatePosted      *time.Time `parquet:"date_posted,optional"`
	JobLevel        *string    `parquet:"job_level,optional"`
	CompanyIndustry *string    `parquet:"company_industry,optional"`
	Description     *string    `parquet:"description,optional"`
}

// WriteParquet writes the result set as a self-describing columnar file.
func WriteParquet(path string, rs models.ResultSet) error {
	rows := make([]parquetRow, len(rs))
	for i := range rs {
		rows[i] = toParquetRow(&rs[i])
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write parquet file %s: %w", path, err)
	}
	return nil
}

func toParquetRow(l *models.Listing) parquetRow {
	row := parquetRow{
		Site:            l.Site,
		Title:           l.Title,
		Company:         l.Company,
		Location:        l.Location,
		JobType:         l.JobType,
		MinAmount:       l.MinAmount,
		MaxAmount:       l.MaxAmount,
		Interval:        l.Interval,
		IsRemote:        l.IsRemote,
		JobLevel:        l.JobLevel,
		CompanyIndustry: l.CompanyIndustry,
		Description:     l.Description,
	}
	if l.DatePosted != nil {
		t := l.DatePosted.Time
		row.DatePosted = &t
	}
	return row
}
