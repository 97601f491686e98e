package anim

import (
	"image"

	"github.com/mmenzyns/tockar-discord-bot/gifenc"
)

// Catnap differs from the per-frame animations: it builds one static
// composite (cat, avatar, paw), then slides a 150x150 viewport across it
// left to right, and across a mirrored copy right to left, hopping a few
// pixels on alternating frames.
const (
	catnapSteps = 11 // frames per direction
	catnapHop   = 4
)

func (s *Spec) renderCatnap(avatar image.Image, p Provider) (*gifenc.Sequence, error) {
	av := Resize(avatar, s.Avatar.X, s.Avatar.Y)
	av = Requantize(av, 200)
	av = Circularize(av)
	av = Requantize(av, 200)

	cat, ok := p.Sprite(s.Group, 0)
	if !ok {
		// No cat to ride on. Asset absence is an expected condition, so
		// there is a dedicated simplified recipe rather than an error.
		return s.renderCatnapSlide(av), nil
	}
	paw, havePaw := p.Sprite(s.Group, 1)

	// Working composite is taller than the output window so the hop can
	// shift it vertically without exposing an edge.
	im := image.NewNRGBA(image.Rect(0, 0, 150, 200))
	paste(im, cat, image.Pt(19, 88))
	paste(im, av, image.Pt(48, 62))
	if havePaw {
		paste(im, paw, image.Pt(19, 88))
	}
	mirrored := Mirror(im)

	frames := make([]*image.NRGBA, 0, 2*catnapSteps)
	for i := 0; i < catnapSteps; i++ {
		hop := 12
		if i%2 == 0 {
			hop += catnapHop
		}
		frame := newCanvas(s.Canvas)
		paste(frame, im, image.Pt(i*10-50, hop-50))
		frames = append(frames, frame)
	}
	for i := 0; i < catnapSteps; i++ {
		hop := 12
		if i%2 != 0 {
			hop += catnapHop
		}
		frame := newCanvas(s.Canvas)
		paste(frame, mirrored, image.Pt((10-i)*10-50, hop-50))
		frames = append(frames, frame)
	}

	return &gifenc.Sequence{
		Frames:    frames,
		Durations: []int{s.Duration},
	}, nil
}

// renderCatnapSlide is the prop-less fallback: the avatar alone slides left
// to right and back with a small hop on alternating frames. Same frame
// count and canvas as the full recipe.
func (s *Spec) renderCatnapSlide(av *image.NRGBA) *gifenc.Sequence {
	frames := make([]*image.NRGBA, 0, 2*catnapSteps)
	for i := 0; i < 2*catnapSteps; i++ {
		x := i * 10
		if i >= catnapSteps {
			x = (2*catnapSteps - 1 - i) * 10
		}
		y := 62
		if i%2 != 0 {
			y += 5
		}
		frame := newCanvas(s.Canvas)
		paste(frame, av, image.Pt(x, y))
		frames = append(frames, frame)
	}
	return &gifenc.Sequence{
		Frames:    frames,
		Durations: []int{s.Duration},
	}
}
