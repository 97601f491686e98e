package anim

import "image"

// A Provider resolves pre-authored overlay sprites. The boolean reports
// whether the sprite exists; a missing sprite is an expected condition, not
// an error, and the compositor degrades to avatar-only frames.
//
// Sprites are keyed by group name and zero-based index. Most animations use
// their own name as the group; hyperlick borrows the "lick" group. Catnap
// uses index 0 for the cat background and index 1 for the paw.
type Provider interface {
	Sprite(group string, index int) (image.Image, bool)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(group string, index int) (image.Image, bool)

func (f ProviderFunc) Sprite(group string, index int) (image.Image, bool) {
	return f(group, index)
}

// None is a Provider with no sprites at all. Every animation still renders
// with it, just without props.
var None Provider = ProviderFunc(func(string, int) (image.Image, bool) {
	return nil, false
})
