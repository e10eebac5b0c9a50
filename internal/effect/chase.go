package effect

import (
	"math"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// Chase is a theatre-marquee pattern: the strip is partitioned into
// repeating groups of seven logical positions with two of every seven
// dark, and the dark pair walks one position per step. The lit pixels
// cycle through the colour wheel over the course of a cycle.
//
// For a seamless wrap at cycle boundaries, stepsPerCycle should be a
// multiple of 7. That is a caller responsibility; it is not enforced.
type Chase struct{}

func NewChase() *Chase {
	return &Chase{}
}

func (c *Chase) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	col := s.Wheel(int(math.Round(255.0 / float64(stepsPerCycle) * float64(step))))
	for i := 0; i < numLED; i++ {
		if (i+step)%7 < 2 {
			s.Set(i, pixel.Black)
		} else {
			s.Set(i, col)
		}
	}
	return numLED
}

func (c *Chase) Validate(numLED, stepsPerCycle int) error {
	return validCycle(stepsPerCycle)
}
