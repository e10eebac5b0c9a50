package effect_test

import (
	"math/rand"
	"testing"

	"github.com/blinkenlabs/blinken/internal/effect"
	"github.com/blinkenlabs/blinken/internal/pixel"
	"github.com/blinkenlabs/blinken/internal/strip"
)

func newStrip(t *testing.T, n int) *strip.Strip {
	t.Helper()
	s, err := strip.New(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRainbowDriftsOneWheelPerCycle(t *testing.T) {
	s := newStrip(t, 5)
	r := effect.NewRainbow()
	if got := r.Update(s, 5, 255, 0, 0); got != 5 {
		t.Fatalf("repaint signal %d, want 5", got)
	}
	if got, want := s.Get(0), s.Wheel(0); got != want {
		t.Fatalf("pixel 0 at step 0 = %+v, want %+v", got, want)
	}
	r.Update(s, 5, 255, 85, 0)
	if got, want := s.Get(0), s.Wheel(85); got != want {
		t.Fatalf("pixel 0 at step 85 = %+v, want %+v", got, want)
	}
	if err := r.Validate(5, 0); err == nil {
		t.Fatal("expected degenerate cycle error")
	}
}

func TestChaseDarkPairWalks(t *testing.T) {
	s := newStrip(t, 14)
	c := effect.NewChase()

	darkAt := func(step int) []int {
		c.Update(s, 14, 35, step, 0)
		var dark []int
		for i := 0; i < 14; i++ {
			if s.Get(i) == pixel.Black {
				dark = append(dark, i)
			}
		}
		return dark
	}

	want := []int{0, 1, 7, 8}
	got := darkAt(0)
	if len(got) != len(want) {
		t.Fatalf("step 0 dark pixels %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step 0 dark pixels %v, want %v", got, want)
		}
	}

	// the dark pair walks down one position per step
	got = darkAt(1)
	want = []int{0, 6, 7, 13}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step 1 dark pixels %v, want %v", got, want)
		}
	}
}

func TestSolidPaintsOnInitOnly(t *testing.T) {
	s := newStrip(t, 4)
	e := effect.NewSolid(pixel.Cyan)
	e.Init(s, 4)
	for i := 0; i < 4; i++ {
		if s.Get(i) != pixel.Cyan {
			t.Fatalf("pixel %d = %+v after init", i, s.Get(i))
		}
	}
	if got := e.Update(s, 4, 1, 0, 0); got != 0 {
		t.Fatalf("solid signalled repaint %d, want 0", got)
	}
}

func TestAlertRampsWithStep(t *testing.T) {
	s := newStrip(t, 10)
	a, err := effect.NewAlert(2, 5, pixel.Red)
	if err != nil {
		t.Fatal(err)
	}
	a.Update(s, 10, 10, 5, 0)
	for i := 2; i <= 5; i++ {
		if got := s.Get(i).Brightness; got != 50 {
			t.Fatalf("pixel %d brightness %d at mid-cycle, want 50", i, got)
		}
	}
	if s.Get(0) != pixel.Black || s.Get(6) != pixel.Black {
		t.Fatal("alert wrote outside its range")
	}
	a.Update(s, 10, 10, 9, 0)
	if got := s.Get(3).Brightness; got != 90 {
		t.Fatalf("pixel 3 brightness %d at cycle end, want 90", got)
	}
}

func TestFireIsDeterministicPerSeed(t *testing.T) {
	mk := func() *strip.Strip {
		s := newStrip(t, 6)
		f, err := effect.NewFire(1, 4)
		if err != nil {
			t.Fatal(err)
		}
		f.UseSource(rand.New(rand.NewSource(42)))
		if got := f.Update(s, 6, 10, 0, 0); got != 4 {
			t.Fatalf("repaint signal %d, want 4", got)
		}
		return s
	}
	a, b := mk(), mk()
	for i := 0; i < 6; i++ {
		if a.Get(i) != b.Get(i) {
			t.Fatalf("pixel %d differs across identical seeds: %+v vs %+v", i, a.Get(i), b.Get(i))
		}
	}
	// jitter only darkens the warm base
	for i := 1; i <= 4; i++ {
		p := a.Get(i)
		if p.R < 255-40 || p.G > 96 || p.B > 12 {
			t.Fatalf("pixel %d = %+v outside ember palette", i, p)
		}
	}
	if a.Get(0) != pixel.Black || a.Get(5) != pixel.Black {
		t.Fatal("fire wrote outside its range")
	}
}

func TestStrandTestWalksAndRecolors(t *testing.T) {
	const n = 20
	s := newStrip(t, n)
	e := effect.NewStrandTest()

	if got := effect.TrailLength(n); got != 2 {
		t.Fatalf("TrailLength(%d) = %d, want 2", n, got)
	}

	for step := 0; step < n; step++ {
		e.Update(s, n, n, step, 0)
	}
	// last head of cycle 0 stays red until the tail catches up
	if got := s.Get(n - 1); got != pixel.Red {
		t.Fatalf("head pixel = %+v at end of first cycle, want red", got)
	}

	e.Update(s, n, n, 0, 1)
	if got := s.Get(0); got != pixel.Green {
		t.Fatalf("head pixel = %+v in second cycle, want green", got)
	}
}

func TestStrandTestClampsToStrip(t *testing.T) {
	// steps past the strip length must not panic
	s := newStrip(t, 4)
	e := effect.NewStrandTest()
	for step := 0; step < 10; step++ {
		e.Update(s, 4, 10, step, 0)
	}
}

func TestRoundAndRound(t *testing.T) {
	s := newStrip(t, 6)
	e := effect.NewRoundAndRound(pixel.Blue)
	e.Init(s, 6)
	if s.Get(0) != pixel.Blue || s.Get(2) != pixel.Blue {
		t.Fatal("triad ends not painted")
	}
	if got := s.Get(1).Brightness; got == pixel.MaxBrightness {
		t.Fatal("triad core not dimmed")
	}

	if got := e.Update(s, 6, 6, 0, 0); got != 1 {
		t.Fatalf("repaint signal %d, want 1", got)
	}
	if s.Get(1) != pixel.Blue {
		t.Fatal("pattern did not rotate up the strip")
	}

	if err := e.Validate(2, 6); err == nil {
		t.Fatal("expected error for a 2-LED strip")
	}
}
