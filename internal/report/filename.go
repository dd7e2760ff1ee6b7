package report

import (
	"fmt"
	"time"
)

const timestampLayout = "2006-01-02_15-04-05"

// Filename derives an output filename from a base name and a wall-clock
// instant, in the pattern {base}_{YYYY-MM-DD}_{HH-MM-SS}.{ext}. Second
// granularity keeps successive runs from overwriting each other; two runs
// inside the same second will still collide, which is accepted.
func Filename(base, ext string, t time.Time) string {
	return fmt.Sprintf("%s_%s.%s", base, t.Format(timestampLayout), ext)
}
