package gifenc

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// buildPalette computes one palette over the union of every frame's opaque
// pixels. Quantizing per frame would make colors pop between frames; the
// whole sequence has to agree on a single table so the reserved transparent
// index stays valid throughout.
func buildPalette(frames []*image.NRGBA) color.Palette {
	r := frames[0].Bounds()
	w, h := r.Dx(), r.Dy()

	// Stack the frames into one tall image so the quantizer sees every
	// pixel of the sequence at once.
	union := image.NewNRGBA(image.Rect(0, 0, w, h*len(frames)))
	for i, m := range frames {
		draw.Draw(union, image.Rect(0, i*h, w, (i+1)*h), m, m.Bounds().Min, draw.Src)
	}

	q := quantize.MedianCutQuantizer{
		Weighting: func(m image.Image, x, y int) uint32 {
			_, _, _, a := m.At(x, y).RGBA()
			if a < TransparencyThreshold*0x101 {
				return 0
			}
			return 1
		},
	}
	opaque := q.Quantize(make(color.Palette, 0, 255), union)

	pal := make(color.Palette, 0, len(opaque)+1)
	pal = append(pal, color.NRGBA{Background.R, Background.G, Background.B, 0})
	pal = append(pal, opaque...)
	return pal
}

// indexCache memoizes nearest-palette lookups. Avatar frames repeat the same
// few thousand colors, so the naive per-pixel search is the dominant cost
// without it.
type indexCache struct {
	pal    color.Palette
	opaque color.Palette // pal without the transparent slot
	m      map[color.NRGBA]uint8
}

func newIndexCache(pal color.Palette) *indexCache {
	return &indexCache{
		pal:    pal,
		opaque: pal[1:],
		m:      make(map[color.NRGBA]uint8),
	}
}

// index maps c to its nearest palette entry, never the transparent slot.
func (c *indexCache) index(n color.NRGBA) uint8 {
	n.A = 0xFF
	if i, ok := c.m[n]; ok {
		return i
	}
	i := uint8(c.opaque.Index(n)) + 1
	c.m[n] = i
	return i
}
