package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/shivani7798/JobSpy/internal/models"
)

// documentTemplate is the styled HTML document for non-technical sharing: a
// summary block plus the full listing table, colored with the same fills as
// the workbook headers.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 24px; color: #222; }
  h1 { font-size: 20px; }
  h2 { font-size: 16px; margin-top: 28px; }
  table { border-collapse: collapse; margin-top: 8px; }
  th, td { border: 1px solid #ccc; padding: 6px 10px; font-size: 12px; text-align: left; }
  .summary th { background: #{{.SummaryFill}}; color: #{{.FontColor}}; }
  .listings th { background: #{{.SiteFill}}; color: #{{.FontColor}}; }
  .meta { color: #777; font-size: 11px; margin-top: 24px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>

<h2>Summary</h2>
<table class="summary">
  <tr><th>Metric</th><th>Value</th></tr>
  {{- range .Summary}}
  <tr><td>{{index . 0}}</td><td>{{index . 1}}</td></tr>
  {{- end}}
</table>

<h2>Listings ({{.Total}})</h2>
<table class="listings">
  <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
  {{- range .Rows}}
  <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
  {{- end}}
</table>

<p class="meta">Generated {{.GeneratedAt}}</p>
</body>
</html>
`

type documentData struct {
	Title       string
	SummaryFill string
	SiteFill    string
	FontColor   string
	Summary     [][2]string
	Columns     []string
	Rows        [][]string
	Total       int
	GeneratedAt string
}

// RenderDocument produces the styled HTML document as bytes. WriteDocument
// saves it; the PDF renderer feeds the same bytes to a headless browser.
func RenderDocument(title string, rs models.ResultSet, style StyleSpec, now time.Time) ([]byte, error) {
	style = style.normalized()

	columns := rs.PresentColumns()
	rows := make([][]string, len(rs))
	for i := range rs {
		row := make([]string, len(columns))
		for c, col := range columns {
			row[c] = CellString(rs[i].Value(col))
		}
		rows[i] = row
	}

	data := documentData{
		Title:       title,
		SummaryFill: style.SummaryHeaderFill,
		SiteFill:    style.SiteHeaderFill,
		FontColor:   style.HeaderFontColor,
		Summary:     Summarize(rs).Rows(),
		Columns:     columns,
		Rows:        rows,
		Total:       len(rs),
		GeneratedAt: now.Format("2006-01-02 15:04:05"),
	}

	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDocument writes the styled HTML document to path.
func WriteDocument(path, title string, rs models.ResultSet, style StyleSpec, now time.Time) error {
	html, err := RenderDocument(title, rs, style, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
