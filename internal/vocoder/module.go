package vocoder

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edasprometai/Orpheus-app/internal/config"
)

// Module provides the vocoder decode collaborator.
var Module = fx.Module("vocoder",
	fx.Provide(NewDecoder),
)

// NewDecoder creates the configured Decoder, or nil when no decode server
// is configured. Synthesis then degrades to the "decode unavailable"
// outcome while the rest of the application keeps working.
func NewDecoder(cfg *config.Config, logger *zap.Logger) Decoder {
	if cfg.Vocoder.BaseURL == "" {
		logger.Warn("No vocoder base URL configured, speech synthesis will be unavailable")

		return nil
	}

	return NewHTTPDecoder(logger, cfg.Vocoder.BaseURL)
}
