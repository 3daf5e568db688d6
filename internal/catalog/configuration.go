package catalog

const (
	defaultCatalogPathConstant = "atnf.csv"

	pathConfigurationKeySuffixConstant = ".path"
	urlConfigurationKeySuffixConstant  = ".url"
)

// Configuration captures the catalog settings persisted in the configuration file.
type Configuration struct {
	Path string `mapstructure:"path"`
	URL  string `mapstructure:"url"`
}

// DefaultConfigurationValues exposes catalog defaults keyed under the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + pathConfigurationKeySuffixConstant: defaultCatalogPathConstant,
		configurationKeyPrefix + urlConfigurationKeySuffixConstant:  DefaultCatalogURL,
	}
}
