// Package config reads service configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string // listen address for the HTTP service
	AssetsDir   string // root of the overlay sprite tree
	AvatarLimit int64  // maximum accepted avatar upload, in bytes
}

// Load reads an optional .env file and then the TOCKAR_* variables, falling
// back to defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("config: loaded .env")
	}

	cfg := Config{
		Addr:        ":8080",
		AssetsDir:   "images",
		AvatarLimit: 4 << 20,
	}
	if v := os.Getenv("TOCKAR_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TOCKAR_ASSETS"); v != "" {
		cfg.AssetsDir = v
	}
	if v := os.Getenv("TOCKAR_AVATAR_LIMIT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			log.Printf("config: ignoring bad TOCKAR_AVATAR_LIMIT %q", v)
		} else {
			cfg.AvatarLimit = n
		}
	}
	return cfg
}
