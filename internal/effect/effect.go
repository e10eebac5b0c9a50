// Package effect contains the per-step animation effects and the
// combinators that layer, delay and sequence them. Every effect is driven
// by the cycle runner, which calls Update once per animation step and
// flushes the strip when any effect reports a visible change.
package effect

import (
	"fmt"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// Strip is the capability an effect is lent for the duration of one
// update. Implemented by *strip.Strip.
type Strip interface {
	Len() int
	Get(i int) pixel.Pixel
	Set(i int, p pixel.Pixel)
	Wheel(pos int) pixel.Pixel
	Rotate()
	Blank()
}

// Effect is one unit of animation behaviour, invoked once per step.
//
// Update returns the repaint signal: 0 means the strip is visually
// unchanged and needs no flush, any positive value means at least one
// pixel changed. Signals are summed when effects are composed, so only
// zero versus non-zero carries meaning; the magnitude does not.
type Effect interface {
	Update(s Strip, numLED, stepsPerCycle, step, cycle int) int
}

// Initter is implemented by effects that paint one-time initial state.
// Init is called exactly once, before the first step.
type Initter interface {
	Init(s Strip, numLED int)
}

// Validator is implemented by effects whose parameters can only be fully
// checked once the strip length and cycle timing are known. The runner
// calls Validate for every registered effect before the first step, so
// bad ranges and degenerate cycles fail fast instead of mid-animation.
type Validator interface {
	Validate(numLED, stepsPerCycle int) error
}

// Func adapts a plain function to the Effect interface.
type Func func(s Strip, numLED, stepsPerCycle, step, cycle int) int

func (f Func) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	return f(s, numLED, stepsPerCycle, step, cycle)
}

func validCycle(stepsPerCycle int) error {
	if stepsPerCycle <= 0 {
		return fmt.Errorf("effect: degenerate cycle: %d steps per cycle", stepsPerCycle)
	}
	return nil
}

// span is an inclusive LED index range shared by the ranged effects.
type span struct {
	start, end int
}

func newSpan(start, end int) (span, error) {
	if start < 0 || end < 0 {
		return span{}, fmt.Errorf("effect: negative range bound [%d,%d]", start, end)
	}
	return span{start: start, end: end}, nil
}

func (sp span) validate(numLED int) error {
	if sp.start >= numLED || sp.end >= numLED {
		return fmt.Errorf("effect: range [%d,%d] outside strip of %d LEDs", sp.start, sp.end, numLED)
	}
	return nil
}

func (sp span) lo() int {
	if sp.start < sp.end {
		return sp.start
	}
	return sp.end
}

func (sp span) hi() int {
	if sp.start > sp.end {
		return sp.start
	}
	return sp.end
}

func (sp span) size() int {
	return sp.hi() - sp.lo() + 1
}
