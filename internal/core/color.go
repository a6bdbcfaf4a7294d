package core

// Color identifies a terminal color for a screen cell.
// The platform layer maps it to an actual style.
type Color uint8

// Palette used by the game and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBlack
	ColorGray
	ColorOrange
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorSky  // light cyan used behind the upper two rows
	ColorDirt // brown used for the bottom row
)

// Hex returns the RGB hex value of the color, used by image exports.
// ColorDefault has no fixed value and reports an empty string.
func (c Color) Hex() string {
	switch c {
	case ColorRed:
		return "#CC3333"
	case ColorGreen:
		return "#33AA33"
	case ColorYellow:
		return "#D4B000"
	case ColorWhite:
		return "#E0E0E0"
	case ColorBlack:
		return "#000000"
	case ColorGray:
		return "#8A8A8A"
	case ColorOrange:
		return "#FF8700"
	case ColorBrightRed:
		return "#FF4040"
	case ColorBrightYellow:
		return "#FFE14D"
	case ColorBrightWhite:
		return "#FFFFFF"
	case ColorSky:
		return "#5DEBF9"
	case ColorDirt:
		return "#875F00"
	default:
		return ""
	}
}
