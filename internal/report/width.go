package report

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// AutoWidth computes a column width from the stringified cell values of that
// column (header included): longest value plus two characters of padding,
// clamped to [min, max]. Pure function, independent of any spreadsheet
// library.
func AutoWidth(values []string, min, max float64) float64 {
	longest := 0
	for _, v := range values {
		if n := utf8.RuneCountInString(v); n > longest {
			longest = n
		}
	}
	w := float64(longest + 2)
	if w < min {
		return min
	}
	if w > max {
		return max
	}
	return w
}

// CellString renders a cell value the way it appears in a sheet, for width
// measurement and the HTML table. Absent values render empty.
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
