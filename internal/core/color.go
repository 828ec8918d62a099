package core

// Color is a terminal color: an ANSI 256-color code ("9") or a hex value
// ("#ff6b6b"). The empty Color leaves the terminal default in place.
type Color string

// Palette used by the HUD and board chrome. Piece colors come straight from
// the catalog as hex values.
const (
	ColorDefault   Color = ""
	ColorRed       Color = "9"
	ColorGreen     Color = "10"
	ColorYellow    Color = "11"
	ColorWhite     Color = "15"
	ColorOrange    Color = "208"
	ColorHighlight Color = "229"
	ColorDim       Color = "240"
	ColorGray      Color = "245"
)
