package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOCKAR_ADDR", "")
	t.Setenv("TOCKAR_ASSETS", "")
	t.Setenv("TOCKAR_AVATAR_LIMIT", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.AssetsDir != "images" {
		t.Errorf("AssetsDir = %q, want images", cfg.AssetsDir)
	}
	if cfg.AvatarLimit != 4<<20 {
		t.Errorf("AvatarLimit = %d, want %d", cfg.AvatarLimit, 4<<20)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOCKAR_ADDR", "127.0.0.1:9999")
	t.Setenv("TOCKAR_ASSETS", "/srv/sprites")
	t.Setenv("TOCKAR_AVATAR_LIMIT", "1024")

	cfg := Load()
	if cfg.Addr != "127.0.0.1:9999" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.AssetsDir != "/srv/sprites" {
		t.Errorf("AssetsDir = %q", cfg.AssetsDir)
	}
	if cfg.AvatarLimit != 1024 {
		t.Errorf("AvatarLimit = %d", cfg.AvatarLimit)
	}
}

func TestLoadBadLimit(t *testing.T) {
	t.Setenv("TOCKAR_ADDR", "")
	t.Setenv("TOCKAR_ASSETS", "")
	t.Setenv("TOCKAR_AVATAR_LIMIT", "-3")

	if cfg := Load(); cfg.AvatarLimit != 4<<20 {
		t.Errorf("AvatarLimit = %d, want default", cfg.AvatarLimit)
	}
}
