package render

import "github.com/gdamore/tcell/v2"

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB, treating ColorDefault as black
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGBBlack
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// HalfBlockStyle styles an upper-half-block cell: foreground paints the top half, background the bottom
func HalfBlockStyle(top, bottom RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
}
