package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cea-irfu-sap/classes-intro/internal/utils"
)

const (
	fetchCommandUseConstant              = "fetch"
	fetchCommandShortDescriptionConstant = "Download the ATNF pulsar catalog"
	fetchCommandLongDescriptionConstant  = "fetch downloads a fresh ATNF pulsar catalog CSV export and installs it at the configured path."
	flagURLNameConstant                  = "url"
	flagURLDescriptionConstant           = "Catalog download URL"
	flagOutputNameConstant               = "output"
	flagOutputDescriptionConstant        = "Destination file for the downloaded catalog"
	fetchStartedMessageConstant          = "downloading catalog"
	fetchCompletedMessageConstant        = "catalog downloaded"
	fetchResultTemplateConstant          = "Catalog written to %s\n"
	logFieldURLConstant                  = "url"
	logFieldDestinationConstant          = "destination"
	logFieldConfigurationFileConstant    = "config_file"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// FetchCommandBuilder assembles the Cobra command that downloads the catalog.
type FetchCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
	HTTPClient            *http.Client
	ContextAccessor       utils.CommandContextAccessor
}

// Build constructs the fetch command.
func (builder *FetchCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   fetchCommandUseConstant,
		Short: fetchCommandShortDescriptionConstant,
		Long:  fetchCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().String(flagURLNameConstant, "", flagURLDescriptionConstant)
	command.Flags().String(flagOutputNameConstant, "", flagOutputDescriptionConstant)

	return command, nil
}

func (builder *FetchCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	catalogURL, _ := command.Flags().GetString(flagURLNameConstant)
	if len(strings.TrimSpace(catalogURL)) == 0 {
		catalogURL = configuration.URL
	}
	if len(strings.TrimSpace(catalogURL)) == 0 {
		catalogURL = DefaultCatalogURL
	}

	destinationPath, _ := command.Flags().GetString(flagOutputNameConstant)
	if len(strings.TrimSpace(destinationPath)) == 0 {
		destinationPath = configuration.Path
	}
	if len(strings.TrimSpace(destinationPath)) == 0 {
		destinationPath = defaultCatalogPathConstant
	}

	fetchLogFields := []zap.Field{
		zap.String(logFieldURLConstant, catalogURL),
		zap.String(logFieldDestinationConstant, destinationPath),
	}
	if configurationFilePath, configurationFileStored := builder.ContextAccessor.ConfigurationFilePath(command.Context()); configurationFileStored && len(configurationFilePath) > 0 {
		fetchLogFields = append(fetchLogFields, zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}

	logger := builder.resolveLogger()
	logger.Info(fetchStartedMessageConstant, fetchLogFields...)

	if fetchError := Fetch(command.Context(), builder.HTTPClient, catalogURL, destinationPath); fetchError != nil {
		return fetchError
	}

	logger.Info(
		fetchCompletedMessageConstant,
		zap.String(logFieldDestinationConstant, destinationPath),
	)

	fmt.Fprintf(command.OutOrStdout(), fetchResultTemplateConstant, destinationPath)
	return nil
}

func (builder *FetchCommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return Configuration{}
	}
	return builder.ConfigurationProvider()
}

func (builder *FetchCommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
