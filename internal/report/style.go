package report

// StyleSpec carries the cosmetic knobs for the styled outputs. It is passed
// into the write operations explicitly; there is no process-wide styling
// state.
type StyleSpec struct {
	// SummaryHeaderFill colors the header row of the Summary and All Jobs
	// sheets (RGB hex, no leading '#').
	SummaryHeaderFill string
	// SiteHeaderFill colors the header row of per-site sheets.
	SiteHeaderFill string
	// HeaderFontColor is the header font color; headers are always bold.
	HeaderFontColor string
	// MinColWidth / MaxColWidth bound the auto-sized column widths.
	MinColWidth float64
	MaxColWidth float64
}

// DefaultStyle matches the classic report colors: green main headers, blue
// per-site headers, white bold text, widths clamped to [8, 50].
func DefaultStyle() StyleSpec {
	return StyleSpec{
		SummaryHeaderFill: "4CAF50",
		SiteHeaderFill:    "2196F3",
		HeaderFontColor:   "FFFFFF",
		MinColWidth:       8,
		MaxColWidth:       50,
	}
}

// normalized fills in zero-value bounds so a partially built StyleSpec still
// produces sane widths.
func (s StyleSpec) normalized() StyleSpec {
	def := DefaultStyle()
	if s.SummaryHeaderFill == "" {
		s.SummaryHeaderFill = def.SummaryHeaderFill
	}
	if s.SiteHeaderFill == "" {
		s.SiteHeaderFill = def.SiteHeaderFill
	}
	if s.HeaderFontColor == "" {
		s.HeaderFontColor = def.HeaderFontColor
	}
	if s.MinColWidth <= 0 {
		s.MinColWidth = def.MinColWidth
	}
	if s.MaxColWidth <= 0 {
		s.MaxColWidth = def.MaxColWidth
	}
	return s
}
