package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	m := image.NewNRGBA(image.Rect(0, 0, 5, 7))
	m.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})
	if err := png.Encode(f, m); err != nil {
		t.Fatal(err)
	}
}

func TestDirSprite(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "pet", "01.png"))

	d := NewDir(root)

	m, ok := d.Sprite("pet", 0)
	if !ok {
		t.Fatal("Sprite(pet, 0) missing")
	}
	if m.Bounds().Dx() != 5 || m.Bounds().Dy() != 7 {
		t.Errorf("bounds = %v, want 5x7", m.Bounds())
	}

	if _, ok := d.Sprite("pet", 1); ok {
		t.Error("Sprite(pet, 1) should be missing")
	}
	if _, ok := d.Sprite("bonk", 0); ok {
		t.Error("Sprite(bonk, 0) should be missing")
	}
}

func TestDirBadFile(t *testing.T) {
	root := t.TempDir()
	name := filepath.Join(root, "lick", "01.png")
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(name, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := NewDir(root).Sprite("lick", 0); ok {
		t.Error("undecodable sprite reported as present")
	}
}
