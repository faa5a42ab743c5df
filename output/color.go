package output

// Color is an RGB color for the Pixels board.
type Color struct {
	R, G, B uint8
}

func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromRGB24 builds a color from a packed 24-bit 0xRRGGBB value.
func FromRGB24(rgb uint32) Color {
	return Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
	}
}

// apa102 packs the color into the upper bytes of the 32-bit LED word: red in
// the high byte, then green, blue shifted left by 8. The low byte carries
// the brightness field.
func (c Color) apa102() uint32 {
	return uint32(c.B)<<8 | uint32(c.G)<<16 | uint32(c.R)<<24
}

var (
	Black   = NewColor(0, 0, 0)
	Red     = NewColor(255, 0, 0)
	Green   = NewColor(0, 255, 0)
	Blue    = NewColor(0, 0, 255)
	Yellow  = NewColor(255, 255, 0)
	Cyan    = NewColor(0, 255, 255)
	Magenta = NewColor(255, 0, 255)
	White   = NewColor(255, 255, 255)
	Orange  = NewColor(255, 165, 0)
	Violet  = NewColor(128, 0, 128)
)
