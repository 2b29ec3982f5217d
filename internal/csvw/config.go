package csvw

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
)

// Config configures a Projector.
type Config struct {
	Logger *slog.Logger
	// Clock supplies dc:modified. Defaults to the real clock.
	Clock clockwork.Clock
	// StrictNames turns column name collisions into errors.
	StrictNames bool
}

func (cfg *Config) applyDefaults() {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
}
