// Package config loads the application configuration and provides it as an
// Fx module.
package config

import (
	"go.uber.org/fx"
)

// Module provides the loaded configuration. It expects the config file path
// to be supplied by the application entry point.
var Module = fx.Module("config",
	fx.Provide(LoadConfig),
)
