package effect

import (
	"math/rand"
	"time"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

// fire jitter: each pixel draws one uniform amount in [0,40] and loses
// it from all three channels.
const fireJitter = 40

// Fire flickers the target range like embers: every step, every pixel
// gets an independent random darkening of a fixed warm base colour.
// Since the jitter changes every step, Fire always requests a repaint.
type Fire struct {
	sp   span
	base pixel.Pixel
	rng  *rand.Rand
}

func NewFire(start, end int) (*Fire, error) {
	sp, err := newSpan(start, end)
	if err != nil {
		return nil, err
	}
	return &Fire{
		sp:   sp,
		base: pixel.New(255, 96, 12),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// UseSource swaps the random source, for deterministic replay in tests.
func (f *Fire) UseSource(rng *rand.Rand) {
	f.rng = rng
}

func (f *Fire) Update(s Strip, numLED, stepsPerCycle, step, cycle int) int {
	for i := f.sp.lo(); i <= f.sp.hi(); i++ {
		j := uint8(f.rng.Intn(fireJitter + 1))
		s.Set(i, pixel.NewWithBrightness(dim(f.base.R, j), dim(f.base.G, j), dim(f.base.B, j), f.base.Brightness))
	}
	return f.sp.size()
}

func (f *Fire) Validate(numLED, stepsPerCycle int) error {
	return f.sp.validate(numLED)
}

func dim(c, by uint8) uint8 {
	if by > c {
		return 0
	}
	return c - by
}
