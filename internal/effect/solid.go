package effect

import "github.com/blinkenlabs/blinken/internal/pixel"

// Solid is a static fill: Init paints every pixel once and Update never
// touches the strip again, so it signals no repaint forever after.
type Solid struct {
	px pixel.Pixel
}

func NewSolid(px pixel.Pixel) *Solid {
	return &Solid{px: px}
}

func (e *Solid) Init(s Strip, numLED int) {
	for i := 0; i < numLED; i++ {
		s.Set(i, e.px)
	}
}

func (e *Solid) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	return 0
}
