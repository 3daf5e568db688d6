package catalog_test

import (
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"

	"github.com/cea-irfu-sap/classes-intro/internal/catalog"
)

func TestConfigurationDecodesFromSettingsMap(testInstance *testing.T) {
	settings := map[string]any{
		"path": "/srv/catalogs/atnf.csv",
		"url":  "https://example.org/psrcat.csv",
	}

	configuration := catalog.Configuration{}
	require.NoError(testInstance, mapstructure.Decode(settings, &configuration))
	require.Equal(testInstance, "/srv/catalogs/atnf.csv", configuration.Path)
	require.Equal(testInstance, "https://example.org/psrcat.csv", configuration.URL)
}

func TestDefaultConfigurationValuesCarryThePrefix(testInstance *testing.T) {
	defaults := catalog.DefaultConfigurationValues("catalog")

	require.Equal(testInstance, "atnf.csv", defaults["catalog.path"])
	require.Equal(testInstance, catalog.DefaultCatalogURL, defaults["catalog.url"])
}
