package utils

import "context"

type commandContextKey string

const configurationFileContextKeyConstant = commandContextKey("configuration_file_path")

// CommandContextAccessor carries the resolved configuration file path
// through command contexts, so subcommands can report which file their
// settings actually came from.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath returns a context carrying the configuration file path.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFileContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath reads the configuration file path stored in the context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathStored := executionContext.Value(configurationFileContextKeyConstant).(string)
	if !configurationFilePathStored {
		return "", false
	}
	return configurationFilePath, true
}
