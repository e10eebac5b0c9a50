package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

type SPI struct {
	// Dev is the SPI port name for spireg; empty picks the first
	// available port.
	Dev string `yaml:"dev,omitempty"`
}

type Config struct {
	NumLED     int    `yaml:"num_led"`
	Driver     string `yaml:"driver"` // "spi" | "term"
	Brightness int    `yaml:"brightness"`
	Addr       string `yaml:"addr,omitempty"` // frame monitor; empty disables

	ScheduleDir string `yaml:"schedule_dir,omitempty"`
	Program     string `yaml:"program"` // startup program

	// Colors overrides built-in program colours by role, as hex
	// strings ("#ff0000"). Known roles: solid, scanner, alert, triad,
	// morse.
	Colors map[string]string `yaml:"colors,omitempty"`

	MorseMessage string `yaml:"morse_message,omitempty"`

	SPI SPI `yaml:"spi,omitempty"`
}

func Default() *Config {
	return &Config{
		NumLED:      646,
		Driver:      "spi",
		Brightness:  100,
		ScheduleDir: "schedule.d",
		Program:     "slow_rainbow",
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if c.NumLED <= 0 {
		return nil, fmt.Errorf("config: %s: num_led must be positive", path)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Color resolves a named colour override, falling back when the role is
// absent or unparseable.
func (c *Config) Color(role string, fallback pixel.Pixel) pixel.Pixel {
	hex, ok := c.Colors[role]
	if !ok {
		return fallback
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := col.RGB255()
	return pixel.New(r, g, b)
}
