package pixel

import "image/color"

// Brightness bounds. Brightness is a percentage, unlike the 8-bit channels.
const (
	MinBrightness = 0
	MaxBrightness = 100
)

// Pixel is one LED's colour: 8-bit RGB channels plus a display brightness
// in percent. It is a value type; effects replace strip entries with new
// values rather than mutating in place.
type Pixel struct {
	R, G, B    uint8
	Brightness int
}

// Well-known colours. Black doubles as the cleared-pixel sentinel.
var (
	Black   = Pixel{0, 0, 0, 0}
	Red     = Pixel{255, 0, 0, MaxBrightness}
	Yellow  = Pixel{255, 255, 0, MaxBrightness}
	Green   = Pixel{0, 255, 0, MaxBrightness}
	Cyan    = Pixel{0, 255, 255, MaxBrightness}
	Blue    = Pixel{0, 0, 255, MaxBrightness}
	Magenta = Pixel{255, 0, 255, MaxBrightness}
	White   = Pixel{255, 255, 255, MaxBrightness}
)

// New returns a full-brightness pixel.
func New(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, Brightness: MaxBrightness}
}

// NewWithBrightness returns a pixel with the given brightness, clamped
// to [0,100].
func NewWithBrightness(r, g, b uint8, brightness int) Pixel {
	return Pixel{R: r, G: g, B: b, Brightness: clamp(brightness)}
}

// WithBrightness copies the pixel's channels with a new brightness.
func (p Pixel) WithBrightness(brightness int) Pixel {
	p.Brightness = clamp(brightness)
	return p
}

// ToRGB folds the brightness into the colour channels for output.
func (p Pixel) ToRGB() color.NRGBA {
	scale := float64(clamp(p.Brightness)) / float64(MaxBrightness)
	return color.NRGBA{
		R: uint8(float64(p.R)*scale + 0.5),
		G: uint8(float64(p.G)*scale + 0.5),
		B: uint8(float64(p.B)*scale + 0.5),
		A: 255,
	}
}

func clamp(b int) int {
	if b < MinBrightness {
		return MinBrightness
	}
	if b > MaxBrightness {
		return MaxBrightness
	}
	return b
}
