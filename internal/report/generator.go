package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shivani7798/JobSpy/internal/database"
	"github.com/shivani7798/JobSpy/internal/document"
	"github.com/shivani7798/JobSpy/internal/models"
)

// Format selects one output artifact kind.
type Format string

const (
	FormatExcel   Format = "xlsx"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
	FormatSQLite  Format = "sqlite"
	FormatHTML    Format = "html"
	FormatPDF     Format = "pdf"
)

// ParseFormat maps a config string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatExcel, FormatJSON, FormatParquet, FormatSQLite, FormatHTML, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Options configures one Generate invocation.
type Options struct {
	// OutputDir is the folder artifacts are written into. The folder itself
	// is created if missing; missing ancestors are an error, not created.
	OutputDir string
	// BaseName is the filename stem, e.g. "data_engineer_jobs".
	BaseName string
	// Formats is the subset of artifacts to produce, in order.
	Formats []Format
	// Style controls header fills, fonts and column width bounds. Zero value
	// means DefaultStyle.
	Style StyleSpec
	// Title is used in the HTML/PDF document heading. Defaults to BaseName.
	Title string
	// Now supplies the timestamp embedded in filenames. Defaults to time.Now.
	Now func() time.Time
}

// Artifact records one written output.
type Artifact struct {
	Format Format
	Path   string
}

// Generate runs the report generator: it computes the report projection of rs
// and writes every requested artifact into opts.OutputDir. Timestamped
// filenames keep successive runs side by side; only the SQLite database uses
// a stable name, since it accumulates rows across runs. The first I/O failure
// aborts the run; already written artifacts stay on disk.
func Generate(rs models.ResultSet, opts Options) ([]Artifact, error) {
	if opts.BaseName == "" {
		return nil, errors.New("base name is required")
	}
	if len(opts.Formats) == 0 {
		return nil, errors.New("no output formats selected")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Title == "" {
		opts.Title = opts.BaseName
	}
	opts.Style = opts.Style.normalized()

	if err := ensureDir(opts.OutputDir); err != nil {
		return nil, err
	}

	now := opts.Now()
	var artifacts []Artifact

	for _, format := range opts.Formats {
		path := filepath.Join(opts.OutputDir, Filename(opts.BaseName, string(format), now))
		var err error
		switch format {
		case FormatExcel:
			err = WriteWorkbook(path, rs, opts.Style)
		case FormatJSON:
			err = WriteJSON(path, rs)
		case FormatParquet:
			err = WriteParquet(path, rs)
		case FormatHTML:
			err = WriteDocument(path, opts.Title, rs, opts.Style, now)
		case FormatPDF:
			var html, pdf []byte
			if html, err = RenderDocument(opts.Title, rs, opts.Style, now); err == nil {
				if pdf, err = document.RenderPDF(html); err == nil {
					err = os.WriteFile(path, pdf, 0644)
				}
			}
		case FormatSQLite:
			// Append mode: same file every run.
			path = filepath.Join(opts.OutputDir, opts.BaseName+".db")
			err = appendToStore(path, rs)
		default:
			err = fmt.Errorf("unknown output format %q", format)
		}
		if err != nil {
			return artifacts, fmt.Errorf("%s output failed: %w", format, err)
		}
		artifacts = append(artifacts, Artifact{Format: format, Path: path})
	}

	return artifacts, nil
}

func appendToStore(path string, rs models.ResultSet) error {
	store, err := database.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Append(rs)
}

// ensureDir creates the immediate output folder only. A missing ancestor is
// surfaced as a fatal error rather than silently created.
func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	err := os.Mkdir(dir, 0755)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}
	return fmt.Errorf("output folder not available: %w", err)
}
