package effect

import (
	"fmt"
	"math"
)

// Fades rewrite only the brightness of whatever colour currently
// occupies each pixel in range, so they are meant to run after the
// effect that painted the range. holdPct is the fraction of the cycle
// spent frozen at the terminal brightness; during the hold a fade
// writes nothing and signals no repaint, relying on its own last write
// for the held appearance.

// LinearFade ramps brightness linearly over the active window of each
// cycle.
type LinearFade struct {
	sp      span
	holdPct float64
	rising  bool
}

func NewLinearFade(start, end int, holdPct float64, rising bool) (*LinearFade, error) {
	sp, err := newSpan(start, end)
	if err != nil {
		return nil, err
	}
	if err := validHold(holdPct); err != nil {
		return nil, err
	}
	return &LinearFade{sp: sp, holdPct: holdPct, rising: rising}, nil
}

func (f *LinearFade) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	last := lastFadeStep(f.holdPct, stepsPerCycle)
	if last < 1 || step > last {
		return 0
	}
	b := int(math.Round(100 * float64(step) / float64(last)))
	if !f.rising {
		b = 100 - b
	}
	return rebright(s, f.sp, b)
}

func (f *LinearFade) Validate(numLED, stepsPerCycle int) error {
	if err := f.sp.validate(numLED); err != nil {
		return err
	}
	return validFadeWindow(f.holdPct, stepsPerCycle)
}

// ExpFade is like LinearFade but approaches the terminal brightness
// along step^exp, so larger exponents hold back longer and then move
// fast.
type ExpFade struct {
	sp      span
	holdPct float64
	exp     float64
	rising  bool
}

func NewExpFade(start, end int, holdPct, exp float64, rising bool) (*ExpFade, error) {
	sp, err := newSpan(start, end)
	if err != nil {
		return nil, err
	}
	if err := validHold(holdPct); err != nil {
		return nil, err
	}
	if exp <= 0 {
		return nil, fmt.Errorf("effect: fade exponent %v must be positive", exp)
	}
	return &ExpFade{sp: sp, holdPct: holdPct, exp: exp, rising: rising}, nil
}

func (f *ExpFade) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	last := lastFadeStep(f.holdPct, stepsPerCycle)
	if last < 1 || step > last {
		return 0
	}
	b := int(math.Floor(100 / math.Pow(float64(last), f.exp) * math.Pow(float64(step), f.exp)))
	if !f.rising {
		b = 100 - b
	}
	return rebright(s, f.sp, b)
}

func (f *ExpFade) Validate(numLED, stepsPerCycle int) error {
	if err := f.sp.validate(numLED); err != nil {
		return err
	}
	return validFadeWindow(f.holdPct, stepsPerCycle)
}

// lastFadeStep is the final step of the fading window; the rest of the
// cycle holds.
func lastFadeStep(holdPct float64, stepsPerCycle int) int {
	return stepsPerCycle - int(math.Ceil(holdPct*float64(stepsPerCycle)))
}

func validHold(holdPct float64) error {
	if holdPct < 0 || holdPct >= 1 {
		return fmt.Errorf("effect: hold fraction %v outside [0,1)", holdPct)
	}
	return nil
}

func validFadeWindow(holdPct float64, stepsPerCycle int) error {
	if err := validCycle(stepsPerCycle); err != nil {
		return err
	}
	if lastFadeStep(holdPct, stepsPerCycle) < 1 {
		return fmt.Errorf("effect: degenerate cycle: hold fraction %v leaves no fade window in %d steps", holdPct, stepsPerCycle)
	}
	return nil
}

// rebright rewrites only the brightness of the pixels in sp, keeping
// their hues.
func rebright(s Strip, sp span, b int) int {
	for i := sp.lo(); i <= sp.hi(); i++ {
		s.Set(i, s.Get(i).WithBrightness(b))
	}
	return sp.size()
}
