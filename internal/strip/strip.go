package strip

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// Strip is the in-memory pixel buffer for one LED strip. The driver loop
// owns it for the lifetime of a run and lends it to effects one update at
// a time; effects may rewrite entries but never resize the buffer.
//
// Nothing reaches the LEDs until Show flushes the buffer to the attached
// display.Drawer.
type Strip struct {
	pixels     []pixel.Pixel
	brightness int
	drawer     display.Drawer
	img        *image.NRGBA
}

// New returns a blanked strip of numLED pixels writing to drawer. The
// drawer may be nil for a purely in-memory strip (tests); Show then fails.
func New(numLED int, drawer display.Drawer) (*Strip, error) {
	if numLED <= 0 {
		return nil, fmt.Errorf("strip: invalid LED count %d", numLED)
	}
	return &Strip{
		pixels:     make([]pixel.Pixel, numLED),
		brightness: pixel.MaxBrightness,
		drawer:     drawer,
		img:        image.NewNRGBA(image.Rect(0, 0, numLED, 1)),
	}, nil
}

// SetBrightness sets the global brightness percentage applied at flush
// time, on top of each pixel's own brightness.
func (s *Strip) SetBrightness(b int) {
	if b < pixel.MinBrightness {
		b = pixel.MinBrightness
	}
	if b > pixel.MaxBrightness {
		b = pixel.MaxBrightness
	}
	s.brightness = b
}

func (s *Strip) Len() int {
	return len(s.pixels)
}

func (s *Strip) Get(i int) pixel.Pixel {
	return s.pixels[i]
}

func (s *Strip) Set(i int, p pixel.Pixel) {
	s.pixels[i] = p
}

// Wheel maps a cyclic position to a colour on a Green -> Red -> Blue ->
// Green gradient. Positions are reduced modulo 255, so Wheel(255) equals
// Wheel(0).
func (s *Strip) Wheel(pos int) pixel.Pixel {
	pos = ((pos % 255) + 255) % 255
	switch {
	case pos <= 85:
		return pixel.New(uint8(pos*3), uint8(255-pos*3), 0)
	case pos <= 170:
		pos -= 85
		return pixel.New(uint8(255-pos*3), 0, uint8(pos*3))
	default:
		pos -= 170
		return pixel.New(0, uint8(pos*3), uint8(255-pos*3))
	}
}

// Rotate shifts every pixel one position up the strip, wrapping the last
// pixel into the first slot.
func (s *Strip) Rotate() {
	n := len(s.pixels)
	if n < 2 {
		return
	}
	last := s.pixels[n-1]
	copy(s.pixels[1:], s.pixels[:n-1])
	s.pixels[0] = last
}

// Blank sets every pixel to Black. The change is not visible until Show.
func (s *Strip) Blank() {
	for i := range s.pixels {
		s.pixels[i] = pixel.Black
	}
}

// Image renders the buffer as a 1-row NRGBA image with per-pixel and
// global brightness folded into the channels.
func (s *Strip) Image() *image.NRGBA {
	for x, p := range s.pixels {
		eff := p.Brightness * s.brightness / pixel.MaxBrightness
		s.img.SetNRGBA(x, 0, p.WithBrightness(eff).ToRGB())
	}
	return s.img
}

// Show flushes the buffer to the attached drawer.
func (s *Strip) Show() error {
	if s.drawer == nil {
		return fmt.Errorf("strip: no drawer attached")
	}
	if err := s.drawer.Draw(s.drawer.Bounds(), s.Image(), image.Point{}); err != nil {
		return fmt.Errorf("strip: flush: %w", err)
	}
	return nil
}

// Close blanks the strip, pushes the final dark frame and halts the
// drawer.
func (s *Strip) Close() error {
	if s.drawer == nil {
		return nil
	}
	s.Blank()
	if err := s.Show(); err != nil {
		return err
	}
	return s.drawer.Halt()
}
