package effect

import (
	"fmt"
	"math"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// Larson is the classic scanner: a comet of width pixels sweeping back
// and forth over [start,end]. The head runs width positions past each
// boundary before the direction flips, which parks the comet briefly at
// the ends.
type Larson struct {
	sp        span
	width     int
	brightDec int
	color     pixel.Pixel

	led       int
	direction int
}

// NewLarson builds a scanner over the inclusive range [start,end] with a
// comet of width pixels. The trailing pixels step down in brightness by
// ceil(100/width) each; the tail is clamped at brightness 0 rather than
// allowed to go negative.
func NewLarson(start, end, width int, color pixel.Pixel) (*Larson, error) {
	sp, err := newSpan(start, end)
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, fmt.Errorf("effect: scanner range [%d,%d] is reversed", start, end)
	}
	if width < 1 {
		return nil, fmt.Errorf("effect: scanner width %d is too narrow", width)
	}
	return &Larson{
		sp:        sp,
		width:     width,
		brightDec: int(math.Ceil(100.0 / float64(width))),
		color:     color,
		led:       start - 1,
		direction: 1,
	}, nil
}

// ScanWidth is the conventional comet width for a strip of numLED
// pixels.
func ScanWidth(numLED int) int {
	w := int(math.Ceil(float64(numLED) / 10))
	if w > 8 {
		w = 8
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (l *Larson) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	l.led += l.direction
	if l.led == l.sp.end+l.width {
		l.direction = -1
		l.led = l.sp.end
	}
	if l.led == l.sp.start-l.width {
		l.direction = 1
		l.led = l.sp.start
	}

	for i := l.sp.start; i <= l.sp.end; i++ {
		s.Set(i, pixel.Black)
	}
	bright := 100
	for k := 0; k < l.width; k++ {
		i := l.led - k*l.direction
		if i >= l.sp.start && i <= l.sp.end {
			b := bright
			if b < 0 {
				b = 0
			}
			s.Set(i, l.color.WithBrightness(b))
		}
		bright -= l.brightDec
	}
	return 1
}

func (l *Larson) Validate(numLED, stepsPerCycle int) error {
	return l.sp.validate(numLED)
}
