package effect

import (
	"math"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// Alert ramps the brightness of a fixed hue from dark at the start of
// each cycle to full at the end, then snaps back down as the cycle
// wraps.
type Alert struct {
	sp  span
	hue pixel.Pixel
}

func NewAlert(start, end int, hue pixel.Pixel) (*Alert, error) {
	sp, err := newSpan(start, end)
	if err != nil {
		return nil, err
	}
	return &Alert{sp: sp, hue: hue}, nil
}

func (a *Alert) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	b := int(math.Round(100 * float64(step) / float64(stepsPerCycle)))
	for i := a.sp.lo(); i <= a.sp.hi(); i++ {
		s.Set(i, a.hue.WithBrightness(b))
	}
	return a.sp.size()
}

func (a *Alert) Validate(numLED, stepsPerCycle int) error {
	if err := validCycle(stepsPerCycle); err != nil {
		return err
	}
	return a.sp.validate(numLED)
}
