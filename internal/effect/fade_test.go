package effect_test

import (
	"testing"

	"github.com/blinkenlabs/blinken/internal/effect"
	"github.com/blinkenlabs/blinken/internal/pixel"
	"github.com/blinkenlabs/blinken/internal/strip"
)

func paint(s *strip.Strip, lo, hi int, p pixel.Pixel) {
	for i := lo; i <= hi; i++ {
		s.Set(i, p)
	}
}

func TestLinearFadeEndpoints(t *testing.T) {
	s := newStrip(t, 5)
	f, err := effect.NewLinearFade(0, 4, 0, true)
	if err != nil {
		t.Fatal(err)
	}

	paint(s, 0, 4, pixel.Red)
	if got := f.Update(s, 5, 10, 0, 0); got != 5 {
		t.Fatalf("repaint signal %d, want 5", got)
	}
	if got := s.Get(2).Brightness; got != 0 {
		t.Fatalf("brightness %d at step 0, want 0", got)
	}
	// hue survives the rewrite
	if p := s.Get(2); p.R != 255 || p.G != 0 || p.B != 0 {
		t.Fatalf("fade changed the hue: %+v", p)
	}

	f.Update(s, 5, 10, 5, 0)
	if got := s.Get(2).Brightness; got != 50 {
		t.Fatalf("brightness %d at mid-window, want 50", got)
	}
	f.Update(s, 5, 10, 10, 0)
	if got := s.Get(2).Brightness; got != 100 {
		t.Fatalf("brightness %d at window end, want 100", got)
	}
}

func TestFallingFadeInverts(t *testing.T) {
	s := newStrip(t, 5)
	f, err := effect.NewLinearFade(0, 4, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	paint(s, 0, 4, pixel.Green)
	f.Update(s, 5, 10, 0, 0)
	if got := s.Get(0).Brightness; got != 100 {
		t.Fatalf("brightness %d at step 0 of falling fade, want 100", got)
	}
	f.Update(s, 5, 10, 10, 0)
	if got := s.Get(0).Brightness; got != 0 {
		t.Fatalf("brightness %d at window end of falling fade, want 0", got)
	}
}

func TestFadeHoldFreezes(t *testing.T) {
	s := newStrip(t, 5)
	f, err := effect.NewLinearFade(0, 4, 0.5, true)
	if err != nil {
		t.Fatal(err)
	}
	paint(s, 0, 4, pixel.Red)
	f.Update(s, 5, 10, 5, 0) // last step of the window
	if got := s.Get(0).Brightness; got != 100 {
		t.Fatalf("brightness %d at window end, want 100", got)
	}

	// inside the hold: no write, no repaint signal
	s.Set(0, pixel.Blue)
	if got := f.Update(s, 5, 10, 6, 0); got != 0 {
		t.Fatalf("repaint signal %d during hold, want 0", got)
	}
	if s.Get(0) != pixel.Blue {
		t.Fatal("fade wrote during its hold window")
	}
}

func TestExpFadeCurve(t *testing.T) {
	s := newStrip(t, 5)
	f, err := effect.NewExpFade(0, 4, 0, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	paint(s, 0, 4, pixel.Red)
	f.Update(s, 5, 10, 5, 0)
	if got := s.Get(0).Brightness; got != 25 {
		t.Fatalf("brightness %d at mid-window of square fade, want 25", got)
	}
	f.Update(s, 5, 10, 10, 0)
	if got := s.Get(0).Brightness; got != 100 {
		t.Fatalf("brightness %d at window end, want 100", got)
	}
}

func TestFadeValidation(t *testing.T) {
	if _, err := effect.NewLinearFade(0, 4, 1.0, true); err == nil {
		t.Fatal("expected error for hold fraction 1.0")
	}
	if _, err := effect.NewLinearFade(0, 4, -0.1, true); err == nil {
		t.Fatal("expected error for negative hold fraction")
	}
	if _, err := effect.NewExpFade(0, 4, 0, 0, true); err == nil {
		t.Fatal("expected error for non-positive exponent")
	}

	// a hold that consumes the whole cycle leaves nothing to fade
	f, err := effect.NewLinearFade(0, 4, 0.95, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Validate(5, 10); err == nil {
		t.Fatal("expected degenerate window error")
	}
	if err := f.Validate(3, 100); err == nil {
		t.Fatal("expected range error on a 3-LED strip")
	}
}
