// Command runcycle runs one named light program against the strip, for
// trying out patterns and verifying a build without the scheduler.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/blinkenlabs/blinken/internal/cycle"
	"github.com/blinkenlabs/blinken/internal/led"
	"github.com/blinkenlabs/blinken/internal/program"
	"github.com/blinkenlabs/blinken/internal/strip"
)

func main() {
	var (
		numLED     = flag.Int("num-led", 646, "number of LEDs in the strip")
		driver     = flag.String("driver", "term", "output driver: spi | term")
		spiDev     = flag.String("spi-dev", "", "SPI port name (empty picks the first port)")
		brightness = flag.Int("brightness", 100, "global brightness 0-100")
		name       = flag.String("program", "strandtest", "program to run")
		cycles     = flag.Int("cycles", 3, "cycles to run (-1 runs until interrupted)")
		pauseMS    = flag.Int("pause-ms", 0, "per-step pause override in milliseconds")
		list       = flag.Bool("list", false, "list programs and exit")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	reg := program.DefaultRegistry(program.DefaultOptions())
	if *list {
		for _, n := range reg.List() {
			fmt.Println(n)
		}
		return
	}
	prog, ok := reg.Get(*name)
	if !ok {
		log.Fatal().Str("program", *name).Msg("unknown program; try -list")
	}

	if *driver == "spi" {
		if _, err := host.Init(); err != nil {
			log.Fatal().Err(err).Msg("host init")
		}
	}
	drawer, err := led.Open(led.Opts{NumLED: *numLED, Driver: *driver, SPIDev: *spiDev})
	if err != nil {
		log.Fatal().Err(err).Msg("open output")
	}

	st, err := strip.New(*numLED, drawer)
	if err != nil {
		log.Fatal().Err(err).Msg("strip")
	}
	st.SetBrightness(*brightness)

	effects, err := prog.Build(*numLED)
	if err != nil {
		log.Fatal().Err(err).Str("program", prog.Name).Msg("build program")
	}
	pause := prog.Pause
	if *pauseMS > 0 {
		pause = time.Duration(*pauseMS) * time.Millisecond
	}
	runner, err := cycle.New(cycle.Config{
		StepsPerCycle: prog.Steps(*numLED),
		Cycles:        *cycles,
		Pause:         pause,
	}, st, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("runner")
	}
	runner.Append(effects...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("program", prog.Name).Int("num_led", *numLED).Msg("running")
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("run")
	}
	if err := st.Close(); err != nil {
		log.Warn().Err(err).Msg("close strip")
	}
}
