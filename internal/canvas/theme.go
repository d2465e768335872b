package canvas

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R, G, B int
}

// Theme carries the brand strings and palette shared by every page.
type Theme struct {
	Brand    string // "PROTEINCOOKIES.COM"
	SiteName string // "ProteinCookies.com"
	SiteURL  string // "proteincookies.com"
	Font     string

	Accent Color // brand cyan
	Dark   Color // full-bleed and header band background
	Ink    Color // headings
	Body   Color // body text
	Soft   Color // secondary text on light pages
	Muted  Color // labels, footers
	Faint  Color // checkboxes, header pack title
	Panel  Color // shaded boxes
	Light  Color // text on dark pages
	Paper  Color // light grey text on dark pages
	Footer Color
}

// DefaultTheme returns the ProteinCookies palette.
func DefaultTheme() Theme {
	return Theme{
		Brand:    "PROTEINCOOKIES.COM",
		SiteName: "ProteinCookies.com",
		SiteURL:  "proteincookies.com",
		Font:     "Helvetica",
		Accent:   Color{0, 212, 255},
		Dark:     Color{10, 22, 40},
		Ink:      Color{30, 30, 30},
		Body:     Color{60, 60, 60},
		Soft:     Color{80, 80, 80},
		Muted:    Color{100, 100, 100},
		Faint:    Color{150, 150, 150},
		Panel:    Color{245, 245, 245},
		Light:    Color{255, 255, 255},
		Paper:    Color{180, 180, 180},
		Footer:   Color{128, 128, 128},
	}
}
