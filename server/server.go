// Package server exposes the animation compositor over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"image"
	"io"
	"log"
	"net/http"

	_ "image/jpeg"
	_ "image/png"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/mmenzyns/tockar-discord-bot/anim"
	"github.com/mmenzyns/tockar-discord-bot/config"
)

type Server struct {
	cfg      config.Config
	provider anim.Provider
}

func New(cfg config.Config, p anim.Provider) *Server {
	if p == nil {
		p = anim.None
	}
	return &Server{cfg: cfg, provider: p}
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/animations", s.handleAnimations)
		r.Post("/render/{animation}", s.handleRender)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	log.Printf("server: listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Router())
}

func (s *Server) handleAnimations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"animations": anim.Names()})
}

// handleRender decodes the avatar in the request body, composites the named
// animation around it and responds with the encoded GIF.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "animation")

	avatar, _, err := image.Decode(io.LimitReader(r.Body, s.cfg.AvatarLimit))
	if err != nil {
		http.Error(w, "could not decode avatar image", http.StatusBadRequest)
		return
	}

	blob, err := anim.Compose(name, avatar, s.provider)
	switch {
	case errors.Is(err, anim.ErrUnknownAnimation):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, anim.ErrDegenerateAvatar):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Printf("render %s failed: %v", name, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	id := uuid.NewString()
	log.Printf("render %s: animation=%s bytes=%d", id, name, len(blob))
	w.Header().Set("X-Render-ID", id)
	w.Header().Set("Content-Type", "image/gif")
	w.Write(blob)
}
