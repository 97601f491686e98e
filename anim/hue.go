package anim

import (
	"image"
	"math/rand/v2"
)

// hueDraw captures the one random value a hyper animation uses. It is drawn
// once per invocation, not per frame; the rest of the pipeline stays pure.
func hueDraw() int {
	return rand.IntN(100)
}

// hueAmount derives frame i's hue rotation from the per-call draw r:
// (r^(i+1) / 100^i) / 100, which decays toward zero for later frames. The
// swirl is intentionally different on every call.
func hueAmount(r, i int) float64 {
	num := 1
	for k := 0; k <= i; k++ {
		num *= r
	}
	den := 1
	for k := 0; k < i; k++ {
		den *= 100
	}
	return float64(num/den) / 100
}

// ShiftHue rotates the hue of every visible pixel by amount (in [0,1))
// around the HSV cylinder, preserving saturation, value and alpha. Fully
// transparent pixels pass through untouched so the image edges stay clean.
func ShiftHue(m *image.NRGBA, amount float64) *image.NRGBA {
	r := m.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			c := m.NRGBAAt(r.Min.X+x, r.Min.Y+y)
			if c.A == 0 {
				out.SetNRGBA(x, y, c)
				continue
			}
			h, s, v := rgbToHSV(c.R, c.G, c.B)
			h += amount
			if h >= 1 {
				h -= 1
			}
			c.R, c.G, c.B = hsvToRGB(h, s, v)
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

// rgbToHSV converts 8-bit RGB to hue/saturation/value, each in [0,1].
func rgbToHSV(r8, g8, b8 uint8) (h, s, v float64) {
	r := float64(r8) / 255
	g := float64(g8) / 255
	b := float64(b8) / 255

	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}

	v = max
	d := max - min
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v
	}
	switch max {
	case r:
		h = (g - b) / d
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, v
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return uint8(r*255 + 0.5), uint8(g*255 + 0.5), uint8(b*255 + 0.5)
}
