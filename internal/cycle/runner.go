// Package cycle owns the animation loop: it drives every registered
// effect once per step, tracks the step and cycle counters, and flushes
// the strip whenever an effect reports a visible change.
package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/blinkenlabs/blinken/internal/effect"
	"github.com/blinkenlabs/blinken/internal/strip"
)

// Config carries the timing parameters for one run.
type Config struct {
	// StepsPerCycle is the number of discrete steps in one logical
	// cycle. Must be positive.
	StepsPerCycle int
	// Cycles is how many cycles to run; negative means until the
	// context is cancelled.
	Cycles int
	// Pause is the target wall-clock time per step. Zero or negative
	// runs unpaced.
	Pause time.Duration
	// Duration, when positive, stops the run at the given wall-clock
	// budget even if cycles remain.
	Duration time.Duration
}

// Runner executes a fixed, ordered list of effects against one strip.
// Effects run strictly sequentially within a step; later effects see
// earlier effects' writes.
type Runner struct {
	cfg     Config
	strip   *strip.Strip
	effects []effect.Effect
	log     zerolog.Logger
}

func New(cfg Config, st *strip.Strip, log zerolog.Logger) (*Runner, error) {
	if cfg.StepsPerCycle <= 0 {
		return nil, fmt.Errorf("cycle: degenerate cycle: %d steps per cycle", cfg.StepsPerCycle)
	}
	if st == nil {
		return nil, fmt.Errorf("cycle: no strip")
	}
	return &Runner{cfg: cfg, strip: st, log: log}, nil
}

// Append registers effects in update order.
func (r *Runner) Append(effects ...effect.Effect) {
	r.effects = append(r.effects, effects...)
}

// Run validates every effect, paints initial state, then loops until
// the configured cycles, duration or the context end it. The strip is
// flushed only on steps where the summed repaint signal is non-zero.
func (r *Runner) Run(ctx context.Context) error {
	numLED := r.strip.Len()
	for _, e := range r.effects {
		if v, ok := e.(effect.Validator); ok {
			if err := v.Validate(numLED, r.cfg.StepsPerCycle); err != nil {
				return err
			}
		}
	}

	r.strip.Blank()
	for _, e := range r.effects {
		if in, ok := e.(effect.Initter); ok {
			in.Init(r.strip, numLED)
		}
	}
	if err := r.strip.Show(); err != nil {
		return err
	}

	var tick *time.Ticker
	if r.cfg.Pause > 0 {
		tick = time.NewTicker(r.cfg.Pause)
		defer tick.Stop()
	}
	var deadline time.Time
	if r.cfg.Duration > 0 {
		deadline = time.Now().Add(r.cfg.Duration)
	}

	for cycleNum := 0; ; cycleNum++ {
		for step := 0; step < r.cfg.StepsPerCycle; step++ {
			if tick != nil {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-tick.C:
				}
			} else if err := ctx.Err(); err != nil {
				return err
			}

			repaint := 0
			for _, e := range r.effects {
				repaint += e.Update(r.strip, numLED, r.cfg.StepsPerCycle, step, cycleNum)
			}
			if repaint != 0 {
				if err := r.strip.Show(); err != nil {
					return err
				}
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				r.log.Debug().Int("cycle", cycleNum).Int("step", step).Msg("duration reached")
				return nil
			}
		}
		r.log.Debug().Int("cycle", cycleNum).Msg("cycle complete")
		if r.cfg.Cycles >= 0 && cycleNum+1 >= r.cfg.Cycles {
			return nil
		}
	}
}
