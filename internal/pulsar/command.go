package pulsar

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cea-irfu-sap/classes-intro/internal/catalog"
)

const (
	showCommandUseConstant              = "show <pulsar>"
	showCommandShortDescriptionConstant = "Report the catalog parameters of one pulsar"
	showCommandLongDescriptionConstant  = "show looks a pulsar up in the catalog by B-name or J-name and prints its parameter report."
	showLookupMessageConstant           = "looking up pulsar"
	logFieldIdentifierConstant          = "identifier"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ShowCommandBuilder assembles the Cobra command that reports one pulsar.
type ShowCommandBuilder struct {
	LoggerProvider LoggerProvider
	SourceProvider func() *catalog.Source
}

// Build constructs the show command.
func (builder *ShowCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   showCommandUseConstant,
		Short: showCommandShortDescriptionConstant,
		Long:  showCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *ShowCommandBuilder) run(command *cobra.Command, arguments []string) error {
	identifier := arguments[0]

	builder.resolveLogger().Debug(
		showLookupMessageConstant,
		zap.String(logFieldIdentifierConstant, identifier),
	)

	instance, lookupError := FromCatalog(builder.SourceProvider(), identifier)
	if lookupError != nil {
		return lookupError
	}

	return instance.Report(command.OutOrStdout())
}

func (builder *ShowCommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
