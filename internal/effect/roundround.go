package effect

import (
	"fmt"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// middle pixel brightness of the seeded triple, in percent
const triadCoreBrightness = 25

// RoundAndRound seeds three adjacent pixels at the head of the strip,
// the middle one dimmed, and then rotates the whole strip one position
// per step so the seeded pattern migrates around it indefinitely.
type RoundAndRound struct {
	hue pixel.Pixel
}

func NewRoundAndRound(hue pixel.Pixel) *RoundAndRound {
	return &RoundAndRound{hue: hue}
}

func (e *RoundAndRound) Init(s Strip, numLED int) {
	s.Set(0, e.hue)
	s.Set(1, e.hue.WithBrightness(triadCoreBrightness))
	s.Set(2, e.hue)
}

func (e *RoundAndRound) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	s.Rotate()
	return 1
}

func (e *RoundAndRound) Validate(numLED, stepsPerCycle int) error {
	if numLED < 3 {
		return fmt.Errorf("effect: round and round needs at least 3 LEDs, have %d", numLED)
	}
	return nil
}
