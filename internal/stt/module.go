package stt

import (
	"go.uber.org/fx"
)

// Module provides speech-to-text dependencies.
var Module = fx.Module("stt",
	fx.Provide(NewTranscriber),
)
