package pixel_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blinkenlabs/blinken/internal/pixel"
)

var TestBrightnessFoldsIntoChannels = []struct {
	Px     pixel.Pixel
	Expect color.NRGBA
}{
	{pixel.New(255, 255, 255), color.NRGBA{255, 255, 255, 255}},
	{pixel.NewWithBrightness(255, 255, 255, 50), color.NRGBA{128, 128, 128, 255}},
	{pixel.NewWithBrightness(200, 100, 40, 0), color.NRGBA{0, 0, 0, 255}},
	{pixel.NewWithBrightness(100, 200, 50, 25), color.NRGBA{25, 50, 13, 255}},
	{pixel.Black, color.NRGBA{0, 0, 0, 255}},
}

func TestToRGB(t *testing.T) {
	for _, tc := range TestBrightnessFoldsIntoChannels {
		assert.Equal(t, tc.Expect, tc.Px.ToRGB(), "pixel %+v", tc.Px)
	}
}

func TestNewIsFullBrightness(t *testing.T) {
	p := pixel.New(10, 20, 30)
	assert.Equal(t, pixel.MaxBrightness, p.Brightness)
	assert.Equal(t, uint8(10), p.R)
	assert.Equal(t, uint8(20), p.G)
	assert.Equal(t, uint8(30), p.B)
}

func TestBrightnessClamps(t *testing.T) {
	assert.Equal(t, pixel.MaxBrightness, pixel.NewWithBrightness(1, 2, 3, 150).Brightness)
	assert.Equal(t, pixel.MinBrightness, pixel.NewWithBrightness(1, 2, 3, -5).Brightness)
	assert.Equal(t, 40, pixel.NewWithBrightness(1, 2, 3, 40).Brightness)
}

func TestWithBrightnessKeepsChannels(t *testing.T) {
	p := pixel.New(9, 8, 7).WithBrightness(30)
	assert.Equal(t, pixel.Pixel{R: 9, G: 8, B: 7, Brightness: 30}, p)
	// the receiver is a value; the original is untouched
	q := pixel.Red
	q.WithBrightness(1)
	assert.Equal(t, pixel.MaxBrightness, q.Brightness)
}
