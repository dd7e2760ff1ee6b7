package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/shivani7798/JobSpy/internal/models"
)

// Sheet names for the two fixed sheets. Per-site sheets follow after them and
// may never collide with these.
const (
	summarySheet = "Summary"
	allJobsSheet = "All Jobs"
)

// WriteWorkbook writes the multi-sheet xlsx artifact: Summary first, then
// All Jobs, then one sheet per site partition in lexicographic site order.
// An empty result set still produces every fixed sheet with a styled header
// row and no data rows.
func WriteWorkbook(path string, rs models.ResultSet, style StyleSpec) error {
	style = style.normalized()

	f := excelize.NewFile()
	defer f.Close()

	mainHeader, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{style.SummaryHeaderFill}, Pattern: 1},
		Font: &excelize.Font{Bold: true, Color: style.HeaderFontColor},
	})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}
	mainHeaderCentered, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{style.SummaryHeaderFill}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: style.HeaderFontColor},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}
	siteHeader, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{style.SiteHeaderFill}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: style.HeaderFontColor},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}

	// Sheet 1: summary statistics. Rename the default sheet rather than
	// creating a new one so "Summary" is first.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, rs, mainHeader, style); err != nil {
		return err
	}

	columns := rs.PresentColumns()

	// Sheet 2: all jobs.
	if _, err := f.NewSheet(allJobsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", allJobsSheet, err)
	}
	if err := writeListingSheet(f, allJobsSheet, columns, rs, mainHeaderCentered, style); err != nil {
		return err
	}

	// Sheet 3+: one per site, alphabetical.
	namer := newSheetNamer(summarySheet, allJobsSheet)
	for _, part := range PartitionBySite(rs) {
		name := namer.Name(part.Site)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		if err := writeListingSheet(f, name, columns, part.Listings, siteHeader, style); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, rs models.ResultSet, headerStyle int, style StyleSpec) error {
	rows := Summarize(rs).Rows()

	if err := f.SetCellValue(summarySheet, "A1", "Metric"); err != nil {
		return err
	}
	if err := f.SetCellValue(summarySheet, "B1", "Value"); err != nil {
		return err
	}
	for i, row := range rows {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+2), row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+2), row[1]); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "B1", headerStyle); err != nil {
		return err
	}

	metrics := []string{"Metric"}
	values := []string{"Value"}
	for _, row := range rows {
		metrics = append(metrics, row[0])
		values = append(values, row[1])
	}
	if err := f.SetColWidth(summarySheet, "A", "A", AutoWidth(metrics, style.MinColWidth, style.MaxColWidth)); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", AutoWidth(values, style.MinColWidth, style.MaxColWidth))
}

// writeListingSheet emits a header row plus one row per listing, restricted
// to the given columns, then styles the header and auto-sizes every column.
func writeListingSheet(f *excelize.File, sheet string, columns []string, listings models.ResultSet, headerStyle int, style StyleSpec) error {
	for c, col := range columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	for r := range listings {
		for c, col := range columns {
			v := listings[r].Value(col)
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if len(columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for c, col := range columns {
		cells := make([]string, 0, len(listings)+1)
		cells = append(cells, col)
		for r := range listings {
			cells = append(cells, CellString(listings[r].Value(col)))
		}
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, AutoWidth(cells, style.MinColWidth, style.MaxColWidth)); err != nil {
			return err
		}
	}
	return nil
}
