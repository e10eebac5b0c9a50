package effect

import (
	"math"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// StrandTest wanders a short lit segment through the step space,
// switching to the next colour in its rotation at every cycle boundary.
// It is meant to be run with stepsPerCycle equal to the strip length so
// the segment visits every LED once per cycle.
type StrandTest struct {
	colors []pixel.Pixel
}

func NewStrandTest() *StrandTest {
	return &StrandTest{colors: []pixel.Pixel{pixel.Red, pixel.Green, pixel.Blue}}
}

// TrailLength is the lit segment length for a strip of numLED pixels.
func TrailLength(numLED int) int {
	l := int(math.Ceil(float64(numLED) / 10))
	if l > 9 {
		l = 9
	}
	return l
}

func (e *StrandTest) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	if step == 0 && cycle > 0 {
		// New cycle: move the front colour to the back.
		e.colors = append(e.colors[1:], e.colors[0])
	}
	trail := TrailLength(numLED)
	head := step
	tail := ((step-trail)%stepsPerCycle + stepsPerCycle) % stepsPerCycle
	if head < numLED {
		s.Set(head, e.colors[0])
	}
	if head != tail && tail < numLED {
		s.Set(tail, pixel.Black)
	}
	return 1
}

func (e *StrandTest) Validate(numLED, stepsPerCycle int) error {
	return validCycle(stepsPerCycle)
}
