package report

import (
	"strconv"
	"strings"
	"unicode"
)

// maxSheetNameLen is the sheet name limit of the xlsx format.
const maxSheetNameLen = 31

// SheetName derives a sheet name from a site identifier: first rune
// uppercased, the rest lowercased, truncated to the xlsx 31-character limit.
func SheetName(site string) string {
	runes := []rune(strings.ToLower(site))
	if len(runes) == 0 {
		return "Unknown"
	}
	runes[0] = unicode.ToUpper(runes[0])
	if len(runes) > maxSheetNameLen {
		runes = runes[:maxSheetNameLen]
	}
	return string(runes)
}

// sheetNamer hands out unique sheet names. Two sites can normalize to the
// same name ("Indeed" and "INDEED", or long names that truncate identically);
// the collision gets a "_2", "_3"... suffix, with the base trimmed so the
// whole name still fits the limit.
type sheetNamer struct {
	used map[string]bool
}

func newSheetNamer(reserved ...string) *sheetNamer {
	n := &sheetNamer{used: make(map[string]bool)}
	for _, name := range reserved {
		n.used[name] = true
	}
	return n
}

func (n *sheetNamer) Name(site string) string {
	base := SheetName(site)
	if !n.used[base] {
		n.used[base] = true
		return base
	}
	for i := 2; ; i++ {
		suffix := "_" + strconv.Itoa(i)
		runes := []rune(base)
		if len(runes)+len(suffix) > maxSheetNameLen {
			runes = runes[:maxSheetNameLen-len(suffix)]
		}
		candidate := string(runes) + suffix
		if !n.used[candidate] {
			n.used[candidate] = true
			return candidate
		}
	}
}
