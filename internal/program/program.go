// Package program names ready-made effect compositions so the daemon's
// schedule and the test CLI can refer to them by name.
package program

import (
	"fmt"
	"sort"
	"time"

	"github.com/blinkenlabs/blinken/internal/effect"
	"github.com/blinkenlabs/blinken/internal/pixel"
)

// Program is a named composition plus the cycle timing it was designed
// for. Build is deferred until the strip length is known because most
// ranges depend on it.
type Program struct {
	Name string
	// StepsPerCycle of 0 means "use the strip length", for programs
	// that walk one LED per step.
	StepsPerCycle int
	Pause         time.Duration
	// Cycles is the natural run length; negative runs until cancelled.
	Cycles int
	Build  func(numLED int) ([]effect.Effect, error)
}

// Steps resolves the program's steps-per-cycle for a concrete strip.
func (p Program) Steps(numLED int) int {
	if p.StepsPerCycle == 0 {
		return numLED
	}
	return p.StepsPerCycle
}

// Registry maps program names to programs.
type Registry struct {
	m map[string]Program
}

func NewRegistry() *Registry {
	return &Registry{m: map[string]Program{}}
}

func (r *Registry) Register(p Program) {
	if p.Name == "" || p.Build == nil {
		return
	}
	r.m[p.Name] = p
}

func (r *Registry) Get(name string) (Program, bool) {
	p, ok := r.m[name]
	return p, ok
}

func (r *Registry) List() []string {
	out := make([]string, 0, len(r.m))
	for k := range r.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Options are the colour and message knobs the built-in programs expose
// to configuration.
type Options struct {
	Solid        pixel.Pixel
	Scanner      pixel.Pixel
	Alert        pixel.Pixel
	Triad        pixel.Pixel
	Morse        pixel.Pixel
	MorseMessage string
}

func DefaultOptions() Options {
	return Options{
		Solid:        pixel.White,
		Scanner:      pixel.Red,
		Alert:        pixel.Red,
		Triad:        pixel.Red,
		Morse:        pixel.New(153, 23, 255),
		MorseMessage: "pfy!",
	}
}

// DefaultRegistry returns a registry populated with the built-in
// programs.
func DefaultRegistry(o Options) *Registry {
	r := NewRegistry()

	r.Register(Program{
		Name:          "solid",
		StepsPerCycle: 1,
		Pause:         time.Second,
		Cycles:        -1,
		Build: func(numLED int) ([]effect.Effect, error) {
			return []effect.Effect{effect.NewSolid(o.Solid)}, nil
		},
	})

	r.Register(Program{
		Name:          "lights_off",
		StepsPerCycle: 1,
		Pause:         time.Second,
		Cycles:        -1,
		Build: func(numLED int) ([]effect.Effect, error) {
			return []effect.Effect{effect.NewSolid(pixel.Black)}, nil
		},
	})

	r.Register(Program{
		Name:   "round_and_round", // StepsPerCycle 0: once around per cycle
		Pause:  20 * time.Millisecond,
		Cycles: -1,
		Build: func(numLED int) ([]effect.Effect, error) {
			return []effect.Effect{effect.NewRoundAndRound(o.Triad)}, nil
		},
	})

	r.Register(Program{
		Name:   "strandtest",
		Pause:  20 * time.Millisecond,
		Cycles: -1,
		Build: func(numLED int) ([]effect.Effect, error) {
			return []effect.Effect{effect.NewStrandTest()}, nil
		},
	})

	r.Register(Program{
		Name:          "slow_rainbow",
		StepsPerCycle: 255,
		Pause:         100 * time.Millisecond,
		Cycles:        -1,
		Build: func(numLED int) ([]effect.Effect, error) {
			swipe, err := effect.NewSwipe(numLED-1, 0)
			if err != nil {
				return nil, err
			}
			return []effect.Effect{effect.NewRainbow(), swipe}, nil
		},
	})

	r.Register(Program{
		Name:          "theater_chase",
		StepsPerCycle: 35,
		Pause:         40 * time.Millisecond,
		Cycles:        -1,
		Build: func(numLED int) ([]effect.Effect, error) {
			return []effect.Effect{effect.NewChase()}, nil
		},
	})

	r.Register(Program{
		Name:          "scanner_fire_alert",
		StepsPerCycle: 60,
		Pause:         20 * time.Millisecond,
		Cycles:        -1,
		Build: func(numLED int) ([]effect.Effect, error) {
			return buildScannerFireAlert(numLED, o)
		},
	})

	r.Register(Program{
		Name:          "morse",
		StepsPerCycle: 60,
		Pause:         200 * time.Millisecond,
		Cycles:        -1,
		Build: func(numLED int) ([]effect.Effect, error) {
			m, err := effect.NewMorse(0, numLED-1, o.Morse, o.MorseMessage)
			if err != nil {
				return nil, err
			}
			return []effect.Effect{m}, nil
		},
	})

	return r
}

// buildScannerFireAlert splits the strip five ways: a scanner, a fire
// and three staggered red-alert pulses.
func buildScannerFireAlert(numLED int, o Options) ([]effect.Effect, error) {
	const sections = 5
	width := numLED / sections
	if width < 1 {
		return nil, fmt.Errorf("program: %d LEDs is too short for %d sections", numLED, sections)
	}
	bounds := make([][2]int, 0, sections)
	for i := 0; i < sections; i++ {
		bounds = append(bounds, [2]int{i * width, (i+1)*width - 1})
	}
	bounds[sections-1][1] = numLED - 1 // sweep the remainder into the last section

	var effects []effect.Effect

	scan, err := effect.NewLarson(bounds[0][0], bounds[0][1], effect.ScanWidth(numLED), o.Scanner)
	if err != nil {
		return nil, err
	}
	effects = append(effects, scan)

	fire, err := effect.NewFire(bounds[1][0], bounds[1][1])
	if err != nil {
		return nil, err
	}
	effects = append(effects, fire)

	for i, delayPct := range []float64{0, 0.2, 0.4} {
		lo, hi := bounds[2+i][0], bounds[2+i][1]
		clear, err := effect.NewBlock(lo, hi, pixel.Black)
		if err != nil {
			return nil, err
		}
		paint, err := effect.NewBlock(lo, hi, o.Alert)
		if err != nil {
			return nil, err
		}
		fade, err := effect.NewExpFade(lo, hi, 0.4, 2, false)
		if err != nil {
			return nil, err
		}
		delayed, err := effect.NewDelay(delayPct, paint, fade)
		if err != nil {
			return nil, err
		}
		effects = append(effects, clear, delayed)
	}
	return effects, nil
}
