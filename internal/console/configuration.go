package console

const (
	defaultHistoryFileConstant = ".pulsarlab_history"

	historyFileConfigurationKeySuffixConstant = ".history_file"
	plainConfigurationKeySuffixConstant       = ".plain"
)

// Configuration captures the console settings persisted in the configuration file.
type Configuration struct {
	HistoryFile string `mapstructure:"history_file"`
	Plain       bool   `mapstructure:"plain"`
}

// DefaultConfigurationValues exposes console defaults keyed under the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + historyFileConfigurationKeySuffixConstant: defaultHistoryFileConstant,
		configurationKeyPrefix + plainConfigurationKeySuffixConstant:       false,
	}
}
