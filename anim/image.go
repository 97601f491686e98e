package anim

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

// toNRGBA copies m into a freshly allocated NRGBA image with its origin at
// (0,0). Every transform below returns a new image; frames must never share
// a backing buffer because the encoder reads them all at once.
func toNRGBA(m image.Image) *image.NRGBA {
	r := m.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), m, r.Min, draw.Src)
	return out
}

// Resize scales m to w x h with Catmull-Rom resampling. The avatars shrink
// to 64-100px, so a high-quality kernel matters more than speed here.
func Resize(m image.Image, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), m, m.Bounds(), xdraw.Src, nil)
	return out
}

// Circularize clears the alpha of every pixel outside the ellipse inscribed
// in m's bounds. Pixels inside keep their original alpha, so transparency
// already present in the avatar is preserved, never expanded.
func Circularize(m *image.NRGBA) *image.NRGBA {
	r := m.Bounds()
	out := toNRGBA(m)
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			dy := (float64(y) + 0.5 - ry) / ry
			if dx*dx+dy*dy > 1 {
				i := out.PixOffset(x, y)
				out.Pix[i+3] = 0
			}
		}
	}
	return out
}

// Mirror flips m horizontally.
func Mirror(m *image.NRGBA) *image.NRGBA {
	r := m.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			out.SetNRGBA(r.Dx()-1-x, y, m.NRGBAAt(r.Min.X+x, r.Min.Y+y))
		}
	}
	return out
}

// Requantize reduces m to at most n colors and converts back to RGBA. The
// catnap avatar runs through this twice to pick up the slightly flattened,
// posterized look of the original. Transparent pixels pass through.
func Requantize(m *image.NRGBA, n int) *image.NRGBA {
	q := quantize.MedianCutQuantizer{
		Weighting: func(m image.Image, x, y int) uint32 {
			_, _, _, a := m.At(x, y).RGBA()
			if a == 0 {
				return 0
			}
			return 1
		},
	}
	pal := q.Quantize(make(color.Palette, 0, n), m)
	if len(pal) == 0 {
		return toNRGBA(m)
	}

	r := m.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	cache := make(map[color.NRGBA]color.NRGBA)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			c := m.NRGBAAt(r.Min.X+x, r.Min.Y+y)
			if c.A == 0 {
				out.SetNRGBA(x, y, c)
				continue
			}
			key := c
			key.A = 0xFF
			nc, ok := cache[key]
			if !ok {
				nc = color.NRGBAModel.Convert(pal[pal.Index(key)]).(color.NRGBA)
				cache[key] = nc
			}
			nc.A = c.A
			out.SetNRGBA(x, y, nc)
		}
	}
	return out
}

// paste alpha-composites src onto dst with its top-left corner at pos.
// Positions may be negative or run off the canvas; draw.Draw clips.
func paste(dst *image.NRGBA, src image.Image, pos image.Point) {
	r := src.Bounds()
	dr := image.Rect(pos.X, pos.Y, pos.X+r.Dx(), pos.Y+r.Dy())
	draw.Draw(dst, dr, src, r.Min, draw.Over)
}

// newCanvas allocates one output frame. The fill carries the chat client's
// dark background RGB with zero alpha; the encoder keys transparency on
// alpha, so uncovered pixels come out transparent, not dark.
func newCanvas(size image.Point) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	fill := color.NRGBA{R: 54, G: 57, B: 63}
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = fill.R
		out.Pix[i+1] = fill.G
		out.Pix[i+2] = fill.B
	}
	return out
}
