// Package main provides the entry point for the Orpheus voice chat demo.
package main

import (
	"flag"

	"go.uber.org/fx"

	"github.com/edasprometai/Orpheus-app/internal/app"
	"github.com/edasprometai/Orpheus-app/internal/chat"
	"github.com/edasprometai/Orpheus-app/internal/commands"
	"github.com/edasprometai/Orpheus-app/internal/config"
	"github.com/edasprometai/Orpheus-app/internal/infrastructure"
	"github.com/edasprometai/Orpheus-app/internal/openai"
	"github.com/edasprometai/Orpheus-app/internal/player"
	"github.com/edasprometai/Orpheus-app/internal/shell"
	"github.com/edasprometai/Orpheus-app/internal/speaker"
	"github.com/edasprometai/Orpheus-app/internal/stt"
	"github.com/edasprometai/Orpheus-app/internal/tts"
	"github.com/edasprometai/Orpheus-app/internal/vocoder"
	pkginfra "github.com/edasprometai/Orpheus-app/pkg/infrastructure"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	application := app.New(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External service modules
		openai.Module,
		vocoder.Module,

		// Application modules
		chat.Module,
		stt.Module,
		tts.Module,
		player.Module,
		speaker.Module,
		commands.Module,
		shell.Module,

		// Supply the config path
		fx.Supply(*configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(pkginfra.NewFxLoggerAdapter),
	)

	application.Run()
}
