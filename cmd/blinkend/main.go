// Command blinkend is the strip daemon: it drives the configured output
// device, switches programs on a crontab-like schedule and serves the
// frame monitor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/display"
	"periph.io/x/host/v3"

	"github.com/blinkenlabs/blinken/internal/config"
	"github.com/blinkenlabs/blinken/internal/cycle"
	"github.com/blinkenlabs/blinken/internal/led"
	"github.com/blinkenlabs/blinken/internal/program"
	"github.com/blinkenlabs/blinken/internal/schedule"
	"github.com/blinkenlabs/blinken/internal/strip"
	"github.com/blinkenlabs/blinken/internal/ws"
)

func main() {
	var (
		cfgPath = flag.String("config", "blinken.yaml", "config file path")
		debug   = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if !*debug {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *cfgPath).Msg("config unreadable, using defaults")
		cfg = config.Default()
	}

	drawer := openOutput(cfg)

	var mon *ws.Monitor
	if cfg.Addr != "" {
		mon = ws.NewMonitor(cfg.NumLED)
		drawer = led.Tee(drawer, mon)
		srv := &http.Server{Addr: cfg.Addr, Handler: mon.Handler()}
		go func() {
			log.Info().Str("addr", cfg.Addr).Msg("frame monitor listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("frame monitor")
			}
		}()
		defer srv.Close()
	}

	st, err := strip.New(cfg.NumLED, drawer)
	if err != nil {
		log.Fatal().Err(err).Msg("strip")
	}
	st.SetBrightness(cfg.Brightness)

	sched := loadSchedule(cfg.ScheduleDir)

	d := &daemon{
		st:     st,
		reg:    registryFromConfig(cfg),
		mon:    mon,
		numLED: cfg.NumLED,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	current := cfg.Program
	cancel, done, err := d.start(ctx, current)
	if err != nil {
		log.Fatal().Err(err).Str("program", current).Msg("start program")
	}

	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			cancel()
			<-done
			if err := st.Close(); err != nil {
				log.Warn().Err(err).Msg("close strip")
			}
			log.Info().Msg("shutting down")
			return
		case now := <-tick.C:
			if sched == nil {
				continue
			}
			name, ok := sched.At(now)
			if !ok || name == current {
				continue
			}
			log.Info().Str("from", current).Str("to", name).Msg("schedule change")
			cancel()
			// the outgoing runner owns the strip until it exits
			<-done
			cancel, done, err = d.start(ctx, name)
			if err != nil {
				log.Error().Err(err).Str("program", name).Msg("start program")
				cancel, done = noProgram()
				current = "" // retry on the next matching rule
				continue
			}
			current = name
		}
	}
}

// noProgram stands in between a failed start and the next schedule
// match.
func noProgram() (context.CancelFunc, <-chan struct{}) {
	done := make(chan struct{})
	close(done)
	return func() {}, done
}

// openOutput opens the configured driver, falling back to the terminal
// renderer when SPI is unavailable so the daemon still comes up on a
// dev box.
func openOutput(cfg *config.Config) display.Drawer {
	if cfg.Driver != "term" {
		if _, err := host.Init(); err != nil {
			log.Warn().Err(err).Msg("host init failed, falling back to terminal")
			cfg.Driver = "term"
		}
	}
	d, err := led.Open(led.Opts{
		NumLED: cfg.NumLED,
		Driver: cfg.Driver,
		SPIDev: cfg.SPI.Dev,
	})
	if err == nil {
		log.Info().Str("driver", cfg.Driver).Int("num_led", cfg.NumLED).Msg("output open")
		return d
	}
	log.Warn().Err(err).Msg("output unavailable, falling back to terminal")
	d, err = led.Open(led.Opts{NumLED: cfg.NumLED, Driver: "term"})
	if err != nil {
		log.Fatal().Err(err).Msg("terminal fallback")
	}
	return d
}

func loadSchedule(dir string) *schedule.Schedule {
	if dir == "" {
		return nil
	}
	sched, err := schedule.Load(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("schedule unreadable, staying on startup program")
		return nil
	}
	if sched.Len() == 0 {
		log.Info().Str("dir", dir).Msg("no schedule rules, staying on startup program")
		return nil
	}
	log.Info().Int("rules", sched.Len()).Str("dir", dir).Msg("schedule loaded")
	return sched
}

func registryFromConfig(cfg *config.Config) *program.Registry {
	o := program.DefaultOptions()
	o.Solid = cfg.Color("solid", o.Solid)
	o.Scanner = cfg.Color("scanner", o.Scanner)
	o.Alert = cfg.Color("alert", o.Alert)
	o.Triad = cfg.Color("triad", o.Triad)
	o.Morse = cfg.Color("morse", o.Morse)
	if cfg.MorseMessage != "" {
		o.MorseMessage = cfg.MorseMessage
	}
	return program.DefaultRegistry(o)
}

type daemon struct {
	st     *strip.Strip
	reg    *program.Registry
	mon    *ws.Monitor
	numLED int
}

// start launches the named program in its own goroutine. The strip is
// the runner's alone until the returned done channel closes, so callers
// must cancel and then wait on it before starting another program.
func (d *daemon) start(ctx context.Context, name string) (context.CancelFunc, <-chan struct{}, error) {
	prog, ok := d.reg.Get(name)
	if !ok {
		return nil, nil, fmt.Errorf("unknown program %q", name)
	}
	effects, err := prog.Build(d.numLED)
	if err != nil {
		return nil, nil, err
	}
	runner, err := cycle.New(cycle.Config{
		StepsPerCycle: prog.Steps(d.numLED),
		Cycles:        prog.Cycles,
		Pause:         prog.Pause,
	}, d.st, log.Logger)
	if err != nil {
		return nil, nil, err
	}
	runner.Append(effects...)

	if d.mon != nil {
		d.mon.SetProgram(name)
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("program", name).Msg("program stopped")
		}
	}()
	return cancel, done, nil
}
