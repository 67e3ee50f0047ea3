// Package config reads runtime configuration from GMU_* environment
// variables via viper. Absent Spotify credentials are not an error; they just
// disable the official catalog client.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/Joe-Bitz/goodmorninguganda/internal/domain"
)

type Config struct {
	Addr    string
	DataDir string

	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyShowID       string

	// PublicWatch enables the public-page fallback watcher. Opt-out:
	// GMU_SPOTIFY_PUBLIC_WATCH=0 or =false disables it.
	PublicWatch bool

	ManualTriggerToken string
}

func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("GMU")
	v.AutomaticEnv()

	v.SetDefault("addr", "127.0.0.1:8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("spotify_show_id", domain.DefaultShowID)
	v.SetDefault("spotify_public_watch", "1")

	showID := strings.TrimSpace(v.GetString("spotify_show_id"))
	if showID == "" {
		showID = domain.DefaultShowID
	}

	publicWatch := strings.TrimSpace(v.GetString("spotify_public_watch"))

	return Config{
		Addr:                v.GetString("addr"),
		DataDir:             v.GetString("data_dir"),
		SpotifyClientID:     strings.TrimSpace(v.GetString("spotify_client_id")),
		SpotifyClientSecret: strings.TrimSpace(v.GetString("spotify_client_secret")),
		SpotifyShowID:       showID,
		PublicWatch:         publicWatch != "0" && !strings.EqualFold(publicWatch, "false"),
		ManualTriggerToken:  strings.TrimSpace(v.GetString("manual_trigger_token")),
	}
}

// SpotifyConfigured reports whether the official API client can be enabled.
func (c Config) SpotifyConfigured() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}
