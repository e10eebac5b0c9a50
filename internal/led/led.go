// Package led opens the output device the strip flushes to. Hardware
// output goes to APA102 ("DotStar") strips over SPI; the terminal
// renderer stands in when no SPI port is available.
package led

import (
	"fmt"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/apa102"
	"periph.io/x/extra/devices/screen"
)

type Opts struct {
	NumLED int
	// Driver selects the sink: "spi" or "term".
	Driver string
	// SPIDev is the spireg port name; empty picks the first port.
	SPIDev string
	// Intensity is the APA102 global PWM ceiling, 0-255.
	Intensity uint8
}

// Open returns the drawer for the requested driver. An SPI failure is
// returned as an error; falling back to the terminal is the caller's
// decision.
func Open(o Opts) (display.Drawer, error) {
	if o.NumLED <= 0 {
		return nil, fmt.Errorf("led: invalid LED count %d", o.NumLED)
	}
	switch o.Driver {
	case "term":
		return screen.New(o.NumLED), nil
	case "spi", "":
		port, err := spireg.Open(o.SPIDev)
		if err != nil {
			return nil, fmt.Errorf("led: open SPI port %q: %w", o.SPIDev, err)
		}
		ao := apa102.DefaultOpts
		ao.NumPixels = o.NumLED
		if o.Intensity > 0 {
			ao.Intensity = o.Intensity
		}
		dev, err := apa102.New(port, &ao)
		if err != nil {
			_ = port.Close()
			return nil, fmt.Errorf("led: apa102: %w", err)
		}
		return dev, nil
	default:
		return nil, fmt.Errorf("led: unknown driver %q", o.Driver)
	}
}
