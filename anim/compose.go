package anim

import (
	"bytes"
	"errors"
	"image"

	"github.com/mmenzyns/tockar-discord-bot/gifenc"
)

var ErrDegenerateAvatar = errors.New("anim: avatar has zero width or height")

// Compose renders the named animation around avatar and encodes it as an
// animated GIF. Overlay sprites come from p; a provider that has nothing
// still yields a complete avatar-only animation. The call owns all of its
// buffers, so concurrent invocations are safe.
func Compose(name string, avatar image.Image, p Provider) ([]byte, error) {
	spec, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	seq, err := spec.Render(avatar, p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gifenc.Encode(&buf, seq); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render builds the frame sequence for s without encoding it.
func (s *Spec) Render(avatar image.Image, p Provider) (*gifenc.Sequence, error) {
	if avatar == nil || avatar.Bounds().Dx() <= 0 || avatar.Bounds().Dy() <= 0 {
		return nil, ErrDegenerateAvatar
	}
	if p == nil {
		p = None
	}
	if s.Name == "catnap" {
		return s.renderCatnap(avatar, p)
	}

	base := Circularize(Resize(avatar, s.Avatar.X, s.Avatar.Y))

	tint := 0
	if s.Hue {
		tint = hueDraw()
	}

	frames := make([]*image.NRGBA, 0, s.Frames)
	for i := 0; i < s.Frames; i++ {
		size, pos := s.place(i)
		av := Resize(base, size.X, size.Y)
		if s.Hue {
			av = ShiftHue(av, hueAmount(tint, i))
		}

		prop, ok := p.Sprite(s.Group, s.spriteIndex(i))
		if ok && s.PropSize != (image.Point{}) {
			prop = Resize(prop, s.PropSize.X, s.PropSize.Y)
		}

		canvas := newCanvas(s.Canvas)
		if ok && !s.PropOver {
			paste(canvas, prop, s.PropPos)
		}
		paste(canvas, av, pos)
		if ok && s.PropOver {
			paste(canvas, prop, s.PropPos)
		}
		frames = append(frames, canvas)
	}

	return &gifenc.Sequence{
		Frames:    frames,
		Durations: []int{s.Duration},
	}, nil
}

func (s *Spec) spriteIndex(frame int) int {
	if s.Sequence == nil {
		return frame
	}
	return s.Sequence[frame]
}
