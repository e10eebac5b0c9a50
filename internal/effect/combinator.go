package effect

import (
	"fmt"
	"math"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// Delay wraps one or more effects and holds them back for a fixed
// fraction of the cycle: until the offset step is reached it writes
// nothing and signals no repaint, after that it forwards a step counter
// shifted back by the offset and sums the wrapped signals. This is how
// several copies of one composition are staggered within a cycle.
//
// Delay defers the Update path only; wrapped effects that paint in Init
// still do so before the first step, so delayed one-shot paints should
// use Block rather than Solid.
type Delay struct {
	pct     float64
	effects []Effect
}

func NewDelay(delayPct float64, effects ...Effect) (*Delay, error) {
	if delayPct < 0 || delayPct > 1 {
		return nil, fmt.Errorf("effect: delay fraction %v outside [0,1]", delayPct)
	}
	if len(effects) == 0 {
		return nil, fmt.Errorf("effect: delay wraps no effects")
	}
	return &Delay{pct: delayPct, effects: effects}, nil
}

func (d *Delay) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	offset := int(math.Round(d.pct * float64(stepsPerCycle)))
	if step < offset {
		return 0
	}
	sum := 0
	for _, e := range d.effects {
		sum += e.Update(s, numLED, stepsPerCycle, step-offset, cycle)
	}
	return sum
}

func (d *Delay) Validate(numLED, stepsPerCycle int) error {
	for _, e := range d.effects {
		if v, ok := e.(Validator); ok {
			if err := v.Validate(numLED, stepsPerCycle); err != nil {
				return err
			}
		}
	}
	return nil
}

// Swipe runs after other effects have painted its range and slides the
// painted content toward one end, revealing black behind it; the slide
// distance shrinks by one each step, so the content settles into place
// by step |end-start| and the effect freezes. Whether the content
// slides up or down the strip follows from whether start < end.
type Swipe struct {
	sp        span
	ascending bool
}

func NewSwipe(start, end int) (*Swipe, error) {
	sp, err := newSpan(start, end)
	if err != nil {
		return nil, err
	}
	return &Swipe{sp: sp, ascending: start < end}, nil
}

func (w *Swipe) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	shift := w.sp.size() - 1 - step
	if shift <= 0 {
		return 0
	}
	lo, hi := w.sp.lo(), w.sp.hi()
	if w.ascending {
		// Content slides toward the high end; iterate downward so
		// sources are read before they are overwritten.
		for i := hi; i >= lo; i-- {
			if src := i - shift; src >= lo {
				s.Set(i, s.Get(src))
			} else {
				s.Set(i, pixel.Black)
			}
		}
	} else {
		for i := lo; i <= hi; i++ {
			if src := i + shift; src <= hi {
				s.Set(i, s.Get(src))
			} else {
				s.Set(i, pixel.Black)
			}
		}
	}
	return w.sp.size()
}

func (w *Swipe) Validate(numLED, stepsPerCycle int) error {
	return w.sp.validate(numLED)
}

// Block paints a fixed colour across its range exactly once, on the
// step where the (possibly delay-shifted) step counter is zero, and is
// inert afterwards. It is the building brick for one-shot compositions.
type Block struct {
	sp span
	px pixel.Pixel
}

func NewBlock(start, end int, px pixel.Pixel) (*Block, error) {
	sp, err := newSpan(start, end)
	if err != nil {
		return nil, err
	}
	return &Block{sp: sp, px: px}, nil
}

func (b *Block) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	if step != 0 {
		return 0
	}
	for i := b.sp.lo(); i <= b.sp.hi(); i++ {
		s.Set(i, b.px)
	}
	return b.sp.size()
}

func (b *Block) Validate(numLED, stepsPerCycle int) error {
	return b.sp.validate(numLED)
}
