// Package gifenc assembles RGBA frame sequences into animated GIFs with a
// single shared palette and one reserved transparent index.
package gifenc

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
)

var (
	ErrEmptySequence     = errors.New("gifenc: empty frame sequence")
	ErrDimensionMismatch = errors.New("gifenc: frames have inconsistent dimensions")
	ErrDurationMismatch  = errors.New("gifenc: duration list does not match frame count")
)

// TransparencyThreshold is the alpha value below which a pixel maps to the
// reserved transparent palette index, whatever its RGB happens to be.
const TransparencyThreshold = 128

// Background is the sentinel RGB the compositor fills canvases with. Only
// its alpha matters to the encoder; transparency is keyed on alpha, never on
// a color match.
var Background = color.NRGBA{R: 54, G: 57, B: 63}

// A Sequence is an ordered list of same-size frames plus their timing.
// Durations is in milliseconds and holds either a single value applied to
// every frame or one value per frame.
type Sequence struct {
	Frames    []*image.NRGBA
	Durations []int
}

func (s *Sequence) validate() error {
	if len(s.Frames) == 0 {
		return ErrEmptySequence
	}
	r := s.Frames[0].Bounds()
	for _, m := range s.Frames[1:] {
		if m.Bounds().Dx() != r.Dx() || m.Bounds().Dy() != r.Dy() {
			return ErrDimensionMismatch
		}
	}
	if len(s.Durations) != 1 && len(s.Durations) != len(s.Frames) {
		return ErrDurationMismatch
	}
	return nil
}

// Duration returns the duration of frame i in milliseconds.
func (s *Sequence) Duration(i int) int {
	if len(s.Durations) == 1 {
		return s.Durations[0]
	}
	return s.Durations[i]
}

// BuildGIF quantizes a sequence to a shared palette and assembles the frames,
// delays and disposal metadata. Index 0 is transparent in every frame and
// each frame is disposed by restoring the background, so nothing from one
// frame bleeds into the next.
func BuildGIF(seq *Sequence) (*gif.GIF, error) {
	if err := seq.validate(); err != nil {
		return nil, err
	}

	pal := buildPalette(seq.Frames)
	lut := newIndexCache(pal)

	g := &gif.GIF{LoopCount: 0}
	for i, src := range seq.Frames {
		r := src.Bounds()
		p := image.NewPaletted(image.Rect(0, 0, r.Dx(), r.Dy()), pal)
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				c := src.NRGBAAt(r.Min.X+x, r.Min.Y+y)
				if c.A < TransparencyThreshold {
					continue // index 0
				}
				p.SetColorIndex(x, y, lut.index(c))
			}
		}
		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, seq.Duration(i)/10)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	return g, nil
}

// Encode writes seq to w as an animated GIF. Either the whole animation is
// written or an error is returned before any output is produced.
func Encode(w io.Writer, seq *Sequence) error {
	g, err := BuildGIF(seq)
	if err != nil {
		return err
	}
	return gif.EncodeAll(w, g)
}
