package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fortytw2/leaktest"

	"github.com/mmenzyns/tockar-discord-bot/anim"
	"github.com/mmenzyns/tockar-discord-bot/config"
)

// testServer starts the router on a local listener. Callers must defer
// ts.Close before their leaktest check so shutdown happens first.
func testServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	s := New(config.Config{Addr: ":0", AvatarLimit: 4 << 20}, anim.None)
	ts := httptest.NewServer(s.Router())
	return ts, ts.Client()
}

func avatarPNG(t *testing.T) *bytes.Buffer {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			m.SetNRGBA(x, y, color.NRGBA{200, 60, 60, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestRender(t *testing.T) {
	defer leaktest.Check(t)()
	ts, client := testServer(t)
	defer ts.Close()

	resp, err := client.Post(ts.URL+"/v1/render/pet", "image/png", avatarPNG(t))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/gif" {
		t.Errorf("Content-Type = %q, want image/gif", ct)
	}
	if resp.Header.Get("X-Render-ID") == "" {
		t.Error("missing X-Render-ID header")
	}
	g, err := gif.DecodeAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 5 {
		t.Errorf("decoded %d frames, want 5", len(g.Image))
	}
}

func TestRenderUnknownAnimation(t *testing.T) {
	defer leaktest.Check(t)()
	ts, client := testServer(t)
	defer ts.Close()

	resp, err := client.Post(ts.URL+"/v1/render/disco", "image/png", avatarPNG(t))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRenderBadAvatar(t *testing.T) {
	defer leaktest.Check(t)()
	ts, client := testServer(t)
	defer ts.Close()

	resp, err := client.Post(ts.URL+"/v1/render/pet", "image/png",
		strings.NewReader("definitely not an image"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAnimations(t *testing.T) {
	defer leaktest.Check(t)()
	ts, client := testServer(t)
	defer ts.Close()

	resp, err := client.Get(ts.URL + "/v1/animations")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Animations []string `json:"animations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Animations) != len(anim.Names()) {
		t.Errorf("listed %d animations, want %d", len(body.Animations), len(anim.Names()))
	}
}

func TestHealthz(t *testing.T) {
	defer leaktest.Check(t)()
	ts, client := testServer(t)
	defer ts.Close()

	resp, err := client.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
