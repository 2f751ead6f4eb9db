package config

// Iconset locates one set of weather icons relative to the icons directory
type Iconset struct {
	Path   string
	Format string
}

// Iconsets are the icon sets shipped with the display. Each set has the ten
// condition icons plus hail, thunderstorm, tornado and the inline i-rain,
// i-snow and i-wind indicators.
var Iconsets = map[string]Iconset{
	"1m":  {Path: "1m", Format: "svg"},
	"1c":  {Path: "1c", Format: "svg"},
	"2m":  {Path: "2m", Format: "svg"},
	"2c":  {Path: "2c", Format: "svg"},
	"3m":  {Path: "3m", Format: "svg"},
	"3c":  {Path: "3c", Format: "svg"},
	"4m":  {Path: "4m", Format: "svg"},
	"4c":  {Path: "4c", Format: "svg"},
	"5m":  {Path: "5m", Format: "svg"},
	"5c":  {Path: "5c", Format: "svg"},
	"6fa": {Path: "6fa", Format: "svg"},
	"6oa": {Path: "6oa", Format: "svg"},
}
