// Package vocoder provides the boundary to the external SNAC codec: a
// capability interface turning validated layer codes into a waveform, and an
// HTTP client implementation for a remote decode server.
package vocoder

import (
	"context"
	"errors"

	"github.com/edasprometai/Orpheus-app/pkg/snac"
)

// ErrUnavailable is returned when no decode collaborator is configured.
var ErrUnavailable = errors.New("vocoder: decoder unavailable")

// Decoder reconstructs a floating-point waveform from the three residual
// code layers. Implementations are treated as pure and synchronous: no
// retries, no partial results. Cancellation policy belongs to the caller's
// context.
type Decoder interface {
	Decode(ctx context.Context, layers snac.Layers) ([]float32, error)
}
