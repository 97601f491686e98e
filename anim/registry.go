/* Package anim composites avatar animations from fixed per-frame offset
tables and encodes them as transparent GIFs. */
package anim

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

var ErrUnknownAnimation = errors.New("anim: unknown animation")

// A Spec describes one animation: its canvas, its base avatar size, the
// overlay sprite group and the per-frame geometry. The offset tables are
// fixed data lifted verbatim from the hand-tuned originals; tweaking one
// value shifts a single frame.
type Spec struct {
	Name     string
	Frames   int
	Canvas   image.Point // output frame size
	Avatar   image.Point // avatar size before per-frame deformation
	Duration int         // delay per frame, in milliseconds

	Hue bool // hyper variants re-tint the avatar every frame

	Group    string      // overlay sprite group
	Sequence []int       // per-frame sprite index; nil means frame number
	PropPos  image.Point // where the overlay lands on the canvas
	PropSize image.Point // overlay is scaled to this; zero keeps natural size
	PropOver bool        // overlay drawn over the avatar, not under it

	// place computes the avatar's size and position for frame i.
	place func(i int) (size, pos image.Point)

	// tables drive place; kept here so lengths can be checked eagerly.
	tables [][]int
}

var registry = make(map[string]*Spec)

// register validates a spec and adds it to the registry. Table-length
// mismatches are configuration bugs, so they fail at init, not per request.
func register(s *Spec) {
	if _, ok := registry[s.Name]; ok {
		panic("anim: duplicate animation " + s.Name)
	}
	if s.Frames <= 0 || s.Canvas.X <= 0 || s.Canvas.Y <= 0 {
		panic("anim: bad spec for " + s.Name)
	}
	for i, t := range s.tables {
		if len(t) != s.Frames {
			panic(fmt.Sprintf("anim: %s table %d has %d entries, want %d",
				s.Name, i, len(t), s.Frames))
		}
	}
	if s.Sequence != nil && len(s.Sequence) != s.Frames {
		panic(fmt.Sprintf("anim: %s sprite sequence has %d entries, want %d",
			s.Name, len(s.Sequence), s.Frames))
	}
	registry[s.Name] = s
}

// Lookup returns the spec for name.
func Lookup(name string) (*Spec, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	return s, nil
}

// Names lists every registered animation, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	var (
		// pet squashes and stretches around the bottom-right corner.
		petWidth  = []int{-1, -2, 1, 2, 1}
		petHeight = []int{4, 3, 1, 1, -4}

		// bonk flattens the avatar under the bat and lets it recover.
		bonkSquash = []int{0, 0, 0, 5, 10, 20, 15, 5}

		// whip pinches the avatar's width mid-sequence and nudges it
		// sideways to sell the recoil.
		whipSquash = []int{
			0, 0, 0, 0, 0, 0, 0, 0,
			2, 3, 5, 9, 6, 4, 3, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		}
		whipShift = []int{
			0, 0, 0, 0, 0, 0, 0, 0, 0,
			1, 2, 2, 3, 3, 3, 2, 1,
			0, 0, 0, 0, 0, 0, 0, 0, 0,
		}

		// spank inflates the whole avatar instead of squashing one axis.
		spankInflate = []int{4, 2, 1, 0, 0, 0, 0, 3}

		lickShiftX = []int{0, 2, 1, 2}
		lickShiftY = []int{-2, 0, 2, 0}

		hyperlickShiftX = []int{0, 3, -1, 3}
		hyperlickShiftY = []int{-2, 0, 2, 0}

		// hyperpet bobs vertically with an ease in and out.
		hyperpetBob = []int{0, 1, 2, 3, 1, 0}
	)

	register(&Spec{
		Name:     "pet",
		Frames:   5,
		Canvas:   image.Pt(112, 122),
		Avatar:   image.Pt(80, 80),
		Duration: 40,
		Group:    "pet",
		PropOver: true,
		place: func(i int) (size, pos image.Point) {
			size = image.Pt(80-petWidth[i], 80-petHeight[i])
			return size, image.Pt(112-size.X, 122-size.Y)
		},
		tables: [][]int{petWidth, petHeight},
	})

	register(&Spec{
		Name:     "bonk",
		Frames:   8,
		Canvas:   image.Pt(200, 170),
		Avatar:   image.Pt(100, 100),
		Duration: 30,
		Group:    "bonk",
		PropPos:  image.Pt(10, 5),
		PropOver: true,
		place: func(i int) (size, pos image.Point) {
			return image.Pt(100, 100-bonkSquash[i]), image.Pt(80, 60+bonkSquash[i])
		},
		tables: [][]int{bonkSquash},
	})

	register(&Spec{
		Name:     "whip",
		Frames:   26,
		Canvas:   image.Pt(250, 150),
		Avatar:   image.Pt(100, 100),
		Duration: 30,
		Group:    "whip",
		PropSize: image.Pt(150, 150),
		PropOver: true,
		place: func(i int) (size, pos image.Point) {
			return image.Pt(100-whipSquash[i], 100),
				image.Pt(135+whipSquash[i]+whipShift[i], 25)
		},
		tables: [][]int{whipSquash, whipShift},
	})

	register(&Spec{
		Name:     "spank",
		Frames:   8,
		Canvas:   image.Pt(200, 120),
		Avatar:   image.Pt(100, 100),
		Duration: 30,
		Group:    "spank",
		PropPos:  image.Pt(10, 15),
		PropSize: image.Pt(100, 100),
		place: func(i int) (size, pos image.Point) {
			d := spankInflate[i]
			return image.Pt(100+2*d, 100+2*d), image.Pt(80-d, 10-d)
		},
		tables: [][]int{spankInflate},
	})

	register(&Spec{
		Name:     "lick",
		Frames:   4,
		Canvas:   image.Pt(270, 136),
		Avatar:   image.Pt(64, 64),
		Duration: 30,
		Group:    "lick",
		Sequence: []int{0, 1, 2, 1}, // tongue frames ping-pong
		PropPos:  image.Pt(10, 15),
		place: func(i int) (size, pos image.Point) {
			return image.Pt(64, 64), image.Pt(198+lickShiftX[i], 68+lickShiftY[i])
		},
		tables: [][]int{lickShiftX, lickShiftY},
	})

	register(&Spec{
		Name:     "hyperlick",
		Frames:   4,
		Canvas:   image.Pt(270, 136),
		Avatar:   image.Pt(64, 64),
		Duration: 30,
		Hue:      true,
		Group:    "lick", // shares lick's sprites
		Sequence: []int{0, 1, 2, 1},
		PropPos:  image.Pt(10, 15),
		place: func(i int) (size, pos image.Point) {
			return image.Pt(64, 64),
				image.Pt(198+hyperlickShiftX[i], 68+hyperlickShiftY[i])
		},
		tables: [][]int{hyperlickShiftX, hyperlickShiftY},
	})

	register(&Spec{
		Name:     "hyperpet",
		Frames:   6,
		Canvas:   image.Pt(148, 148),
		Avatar:   image.Pt(100, 100),
		Duration: 30,
		Hue:      true,
		Group:    "hyperpet",
		PropPos:  image.Pt(10, 5),
		PropOver: true,
		place: func(i int) (size, pos image.Point) {
			return image.Pt(100, 100), image.Pt(35, 25+hyperpetBob[i])
		},
		tables: [][]int{hyperpetBob},
	})

	register(&Spec{
		Name:     "catnap",
		Frames:   2 * catnapSteps,
		Canvas:   image.Pt(150, 150),
		Avatar:   image.Pt(64, 64),
		Duration: 60,
		Group:    "catnap",
	})
}
