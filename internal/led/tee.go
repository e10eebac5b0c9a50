package led

import (
	"image"
	"image/color"
	"strings"

	"periph.io/x/conn/v3/display"
)

// tee duplicates every frame to a list of drawers, so hardware and the
// frame monitor can watch the same strip.
type tee struct {
	drawers []display.Drawer
}

// Tee fans frames out to all given drawers. Bounds come from the first
// drawer; a single drawer is returned unwrapped.
func Tee(drawers ...display.Drawer) display.Drawer {
	if len(drawers) == 1 {
		return drawers[0]
	}
	return &tee{drawers: drawers}
}

func (t *tee) String() string {
	names := make([]string, len(t.drawers))
	for i, d := range t.drawers {
		names[i] = d.String()
	}
	return "tee{" + strings.Join(names, ", ") + "}"
}

func (t *tee) Halt() error {
	var first error
	for _, d := range t.drawers {
		if err := d.Halt(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t *tee) Bounds() image.Rectangle {
	if len(t.drawers) == 0 {
		return image.Rectangle{}
	}
	return t.drawers[0].Bounds()
}

func (t *tee) ColorModel() color.Model {
	if len(t.drawers) == 0 {
		return color.NRGBAModel
	}
	return t.drawers[0].ColorModel()
}

func (t *tee) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	var first error
	for _, d := range t.drawers {
		if err := d.Draw(r, src, sp); err != nil && first == nil {
			first = err
		}
	}
	return first
}
