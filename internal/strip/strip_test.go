package strip_test

import (
	"image"
	"image/color"
	"testing"

	"periph.io/x/conn/v3/display"

	"github.com/blinkenlabs/blinken/internal/pixel"
	"github.com/blinkenlabs/blinken/internal/strip"
)

// fakeDrawer captures the frames the strip flushes.
type fakeDrawer struct {
	w      int
	frames int
	last   []color.NRGBA
	halted bool
}

var _ display.Drawer = &fakeDrawer{}

func (f *fakeDrawer) String() string          { return "fake" }
func (f *fakeDrawer) ColorModel() color.Model { return color.NRGBAModel }

func (f *fakeDrawer) Halt() error {
	f.halted = true
	return nil
}

func (f *fakeDrawer) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, 1) }

func (f *fakeDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	f.frames++
	f.last = make([]color.NRGBA, r.Dx())
	for x := 0; x < r.Dx(); x++ {
		f.last[x] = color.NRGBAModel.Convert(src.At(sp.X+x, sp.Y)).(color.NRGBA)
	}
	return nil
}

func TestNewRejectsBadLength(t *testing.T) {
	if _, err := strip.New(0, nil); err == nil {
		t.Fatal("expected error for zero-length strip")
	}
	if _, err := strip.New(-4, nil); err == nil {
		t.Fatal("expected error for negative-length strip")
	}
}

func TestWheelIsCyclic(t *testing.T) {
	s, err := strip.New(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.Wheel(255), s.Wheel(0); got != want {
		t.Fatalf("Wheel(255) = %+v, want Wheel(0) = %+v", got, want)
	}
	if got, want := s.Wheel(-1), s.Wheel(254); got != want {
		t.Fatalf("Wheel(-1) = %+v, want Wheel(254) = %+v", got, want)
	}
	if got, want := s.Wheel(300), s.Wheel(45); got != want {
		t.Fatalf("Wheel(300) = %+v, want Wheel(45) = %+v", got, want)
	}
}

func TestWheelGradient(t *testing.T) {
	s, _ := strip.New(1, nil)
	if got := s.Wheel(0); got != pixel.New(0, 255, 0) {
		t.Fatalf("Wheel(0) = %+v, want pure green", got)
	}
	if got := s.Wheel(85); got != pixel.New(255, 0, 0) {
		t.Fatalf("Wheel(85) = %+v, want pure red", got)
	}
	if got := s.Wheel(170); got != pixel.New(0, 0, 255) {
		t.Fatalf("Wheel(170) = %+v, want pure blue", got)
	}
}

func TestRotateWrapsLastIntoFirst(t *testing.T) {
	s, _ := strip.New(4, nil)
	for i := 0; i < 4; i++ {
		s.Set(i, pixel.NewWithBrightness(uint8(i), 0, 0, 100))
	}
	s.Rotate()
	want := []uint8{3, 0, 1, 2}
	for i, r := range want {
		if got := s.Get(i).R; got != r {
			t.Fatalf("pixel %d = %d after rotate, want %d", i, got, r)
		}
	}
}

func TestBlank(t *testing.T) {
	s, _ := strip.New(3, nil)
	s.Set(1, pixel.Red)
	s.Blank()
	for i := 0; i < s.Len(); i++ {
		if s.Get(i) != pixel.Black {
			t.Fatalf("pixel %d = %+v after blank", i, s.Get(i))
		}
	}
}

func TestShowFoldsGlobalBrightness(t *testing.T) {
	d := &fakeDrawer{w: 2}
	s, err := strip.New(2, d)
	if err != nil {
		t.Fatal(err)
	}
	s.SetBrightness(50)
	s.Set(0, pixel.New(255, 0, 0))
	s.Set(1, pixel.NewWithBrightness(255, 0, 0, 50))
	if err := s.Show(); err != nil {
		t.Fatal(err)
	}
	if d.frames != 1 {
		t.Fatalf("drawer saw %d frames, want 1", d.frames)
	}
	// 100% pixel at 50% global: 255 * 0.5 rounded
	if got := d.last[0]; got != (color.NRGBA{128, 0, 0, 255}) {
		t.Fatalf("pixel 0 flushed as %+v", got)
	}
	// 50% pixel at 50% global: 255 * 0.25 rounded
	if got := d.last[1]; got != (color.NRGBA{64, 0, 0, 255}) {
		t.Fatalf("pixel 1 flushed as %+v", got)
	}
}

func TestShowWithoutDrawerFails(t *testing.T) {
	s, _ := strip.New(2, nil)
	if err := s.Show(); err == nil {
		t.Fatal("expected error flushing a drawerless strip")
	}
}

func TestCloseBlanksAndHalts(t *testing.T) {
	d := &fakeDrawer{w: 3}
	s, _ := strip.New(3, d)
	s.Set(0, pixel.White)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !d.halted {
		t.Fatal("drawer not halted")
	}
	for x, c := range d.last {
		if c != (color.NRGBA{0, 0, 0, 255}) {
			t.Fatalf("final frame pixel %d = %+v, want dark", x, c)
		}
	}
}
