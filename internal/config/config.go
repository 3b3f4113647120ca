package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"
)

// Defaults for the TMDB API surface. ImageBaseURL already includes the
// fixed size segment: profile thumbnails are always requested at w92.
const (
	DefaultAPIBaseURL   = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/w92"
	DefaultHTTPTimeout  = 15 * time.Second
)

// ErrMissingToken is returned when no TMDB bearer token is configured.
var ErrMissingToken = errors.New("TMDB_TOKEN must be set in environment")

// Config carries everything the TMDB client needs. It is built once at
// startup and treated as immutable afterwards.
type Config struct {
	Token        string
	APIBaseURL   string
	ImageBaseURL string
	HTTPTimeout  time.Duration
}

// Load reads configuration from the environment. TMDB_TOKEN is required;
// base URLs fall back to the public TMDB endpoints.
func Load() (Config, error) {
	cfg := Config{
		Token:        strings.TrimSpace(os.Getenv("TMDB_TOKEN")),
		APIBaseURL:   baseURLOr("TMDB_API_BASE_URL", DefaultAPIBaseURL),
		ImageBaseURL: baseURLOr("TMDB_IMAGE_BASE_URL", DefaultImageBaseURL),
		HTTPTimeout:  DefaultHTTPTimeout,
	}
	if cfg.Token == "" {
		return Config{}, ErrMissingToken
	}
	return cfg, nil
}

// MustLoad loads configuration and aborts the process if it is incomplete.
func MustLoad() Config {
	const op = "config.MustLoad"
	cfg, err := Load()
	if err != nil {
		log.Fatalf("%s: %v", op, err)
	}
	return cfg
}

func baseURLOr(key, fallback string) string {
	v := strings.TrimSuffix(strings.TrimSpace(os.Getenv(key)), "/")
	if v == "" {
		return fallback
	}
	return v
}
