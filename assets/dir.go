// Package assets loads overlay sprites from a directory tree.
package assets

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

// Dir resolves sprites from <root>/<group>/<NN>.png where NN is the
// one-based sprite index, zero-padded to two digits. Catnap's props follow
// the same scheme: 01.png is the cat, 02.png the paw.
//
// A missing or undecodable file reports absence; the compositor treats that
// as a soft condition and renders without the prop.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (d *Dir) Sprite(group string, index int) (image.Image, bool) {
	name := filepath.Join(d.root, group, fmt.Sprintf("%02d.png", index+1))
	f, err := os.Open(name)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	m, err := png.Decode(f)
	if err != nil {
		log.Printf("assets: skipping %s: %v", name, err)
		return nil, false
	}
	return m, true
}
