package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/example/lunchbook/internal/domain/booking"
	"github.com/example/lunchbook/internal/logging"
)

// Fixed attempt constants.
const (
	Headless        = true
	Horizon         = 30
	PageLoadTimeout = 20 * time.Second
	SettleDelay     = 800 * time.Millisecond
	ConfirmWait     = 8 * time.Second
	ActionTimeout   = 5 * time.Second
)

type Config struct {
	Contact booking.ContactInfo

	// DatabaseURL enables the attempt journal when set.
	DatabaseURL string
	// ProfilePath overrides the embedded site profile.
	ProfilePath string
	LogLevel    slog.Level
}

func FromEnv() (Config, error) {
	cfg := Config{
		Contact: booking.ContactInfo{
			Name:  strings.TrimSpace(os.Getenv("RES_NAME")),
			Phone: strings.TrimSpace(os.Getenv("RES_PHONE")),
			Email: strings.TrimSpace(os.Getenv("RES_EMAIL")),
		},
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ProfilePath: strings.TrimSpace(os.Getenv("LUNCHBOOK_PROFILE")),
	}
	lvl, err := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return cfg, err
	}
	cfg.LogLevel = lvl
	return cfg, nil
}
