package anim

import (
	"image/color"
	"testing"
)

func TestHueAmount(t *testing.T) {
	if got := hueAmount(99, 0); got != 0.99 {
		t.Errorf("hueAmount(99, 0) = %v, want 0.99", got)
	}
	if got := hueAmount(0, 3); got != 0 {
		t.Errorf("hueAmount(0, 3) = %v, want 0", got)
	}
	// The schedule stays in [0,1) and decays for later frames.
	for r := 0; r < 100; r++ {
		for i := 0; i < 6; i++ {
			a := hueAmount(r, i)
			if a < 0 || a >= 1 {
				t.Fatalf("hueAmount(%d, %d) = %v, out of [0,1)", r, i, a)
			}
		}
	}
}

func TestShiftHuePreservesAlpha(t *testing.T) {
	m := solid(8, 8, color.NRGBA{10, 200, 80, 137})
	m.SetNRGBA(0, 0, color.NRGBA{99, 99, 99, 0})

	out := ShiftHue(m, 0.4)

	if a := out.NRGBAAt(3, 3).A; a != 137 {
		t.Errorf("alpha = %d, want 137", a)
	}
	if c := out.NRGBAAt(0, 0); c != (color.NRGBA{99, 99, 99, 0}) {
		t.Errorf("transparent pixel changed: %v", c)
	}
}

func TestShiftHueRotates(t *testing.T) {
	m := solid(1, 1, color.NRGBA{255, 0, 0, 255})
	out := ShiftHue(m, 1.0/3)
	c := out.NRGBAAt(0, 0)
	if c.G < 250 || c.R > 5 || c.B > 5 {
		t.Errorf("red shifted by 1/3 = %v, want green", c)
	}
}

func TestShiftHueZeroIsStable(t *testing.T) {
	m := solid(1, 1, color.NRGBA{180, 90, 30, 255})
	c := ShiftHue(m, 0).NRGBAAt(0, 0)
	if diff(c.R, 180) > 2 || diff(c.G, 90) > 2 || diff(c.B, 30) > 2 {
		t.Errorf("zero shift changed color: %v", c)
	}
}

func diff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
