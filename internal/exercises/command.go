package exercises

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cea-irfu-sap/classes-intro/internal/catalog"
	"github.com/cea-irfu-sap/classes-intro/internal/console"
	"github.com/cea-irfu-sap/classes-intro/internal/console/editor"
	"github.com/cea-irfu-sap/classes-intro/internal/exercise"
	"github.com/cea-irfu-sap/classes-intro/internal/utils"
)

const (
	listCommandUseConstant              = "list"
	listCommandShortDescriptionConstant = "List the available exercises"
	runCommandUseConstant               = "run <exercise>"
	runCommandShortDescriptionConstant  = "Run one exercise by name"
	sessionStartedMessageConstant       = "starting interactive session"
	historySaveFailedMessageConstant    = "unable to save prompt history"
	logFieldExerciseCountConstant       = "exercise_count"
	logFieldErrorConstant               = "error"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the exercise commands and the interactive
// session entry point.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	SourceProvider        func() *catalog.Source
	ConfigurationProvider func() console.Configuration
}

// BuildListCommand constructs the list command.
func (builder *CommandBuilder) BuildListCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   listCommandUseConstant,
		Short: listCommandShortDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			registry := builder.buildRegistry(command.OutOrStdout())
			runner := &console.Runner{Registry: registry, Output: command.OutOrStdout()}
			runner.PrintMenu()
			return nil
		},
	}
	return command, nil
}

// BuildRunCommand constructs the run command.
func (builder *CommandBuilder) BuildRunCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   runCommandUseConstant,
		Short: runCommandShortDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			registry := builder.buildRegistry(command.OutOrStdout())
			entry, lookupError := registry.Lookup(arguments[0])
			if lookupError != nil {
				return lookupError
			}
			runner := &console.Runner{Registry: registry, Output: command.OutOrStdout()}
			return runner.RunOne(entry)
		},
	}
	return command, nil
}

// RunInteractive drives the menu-and-prompt session. It backs the root
// command so running the binary with no arguments lands in the workbench.
func (builder *CommandBuilder) RunInteractive(command *cobra.Command, arguments []string) error {
	// Prompts must reach the terminal before the blocking read that follows
	// them, even when the output stream is buffered.
	sessionOutput := utils.NewFlushingWriter(command.OutOrStdout())

	registry := builder.buildRegistry(sessionOutput)
	configuration := builder.resolveConfiguration()
	logger := builder.resolveLogger()

	history := console.NewHistory(configuration.HistoryFile)
	if loadError := history.Load(); loadError != nil {
		return loadError
	}

	logger.Debug(
		sessionStartedMessageConstant,
		zap.Int(logFieldExerciseCountConstant, registry.Len()),
	)

	runner := &console.Runner{
		Registry:   registry,
		LineReader: builder.buildLineReader(command, sessionOutput, registry, history, configuration),
		Output:     sessionOutput,
		History:    history,
	}

	sessionError := runner.Run()

	if saveError := history.Save(); saveError != nil {
		logger.Warn(
			historySaveFailedMessageConstant,
			zap.String(logFieldErrorConstant, saveError.Error()),
		)
	}

	return sessionError
}

func (builder *CommandBuilder) buildRegistry(output io.Writer) *exercise.Registry {
	registry := exercise.NewRegistry()
	RegisterAll(registry, Dependencies{
		Output:  output,
		Catalog: builder.SourceProvider(),
	})
	return registry
}

func (builder *CommandBuilder) buildLineReader(command *cobra.Command, output io.Writer, registry *exercise.Registry, history *console.History, configuration console.Configuration) console.LineReader {
	standardInputFile, readsStandardInput := command.InOrStdin().(*os.File)
	onTerminal := readsStandardInput &&
		(isatty.IsTerminal(standardInputFile.Fd()) || isatty.IsCygwinTerminal(standardInputFile.Fd()))

	if configuration.Plain || !onTerminal {
		return console.NewLineReader(command.InOrStdin(), output)
	}

	completer := exercise.NewCompleter(registry)
	return &editor.LineEditor{
		Input:               command.InOrStdin(),
		Output:              command.OutOrStdout(),
		Complete:            completer.Next,
		SuggestionsProvider: func() []string { return completer.Matches("") },
		HistoryProvider:     history.Lines,
	}
}

func (builder *CommandBuilder) resolveConfiguration() console.Configuration {
	if builder.ConfigurationProvider == nil {
		return console.Configuration{}
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
