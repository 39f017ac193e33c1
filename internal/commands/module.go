package commands

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides command-related dependencies.
var Module = fx.Module("commands",
	fx.Provide(
		// Command providers with proper grouping
		fx.Annotate(
			NewSayCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewVoiceCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewSaveCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewResetCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewTranscribeCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewQuitCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewHelpCommand,
			fx.As(new(Command)),
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewRegistryProvider,
			fx.ParamTags(``, `group:"commands"`),
		),
	),
)

// NewRegistryProvider builds the Registry from the grouped commands and
// closes the loop for commands that describe the registry itself.
func NewRegistryProvider(logger *zap.Logger, cmds []Command) *Registry {
	registry := NewRegistry(logger, cmds)
	for _, c := range cmds {
		if help, ok := c.(*HelpCommand); ok {
			help.SetRegistry(registry)
		}
	}

	return registry
}
