package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeConfigurationAppliesEmbeddedDefaults(testInstance *testing.T) {
	application := NewApplication()

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "info", application.configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", application.configuration.Common.LogFormat)
	require.Equal(testInstance, "atnf.csv", application.configuration.Catalog.Path)
	require.Equal(testInstance, ".pulsarlab_history", application.configuration.Console.HistoryFile)
	require.False(testInstance, application.configuration.Console.Plain)
}

func TestInitializeConfigurationHonorsEnvironmentOverrides(testInstance *testing.T) {
	testInstance.Setenv("PULSARLAB_CATALOG_PATH", "/srv/catalogs/atnf.csv")
	testInstance.Setenv("PULSARLAB_CONSOLE_PLAIN", "true")

	application := NewApplication()

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "/srv/catalogs/atnf.csv", application.configuration.Catalog.Path)
	require.True(testInstance, application.configuration.Console.Plain)
}

func TestInitializeConfigurationReadsConfigurationFile(testInstance *testing.T) {
	configurationPath := filepath.Join(testInstance.TempDir(), "config.yaml")
	configurationContent := "common:\n  log_level: debug\nconsole:\n  history_file: /tmp/workbench_history\n"
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o644))

	application := NewApplication()
	application.configurationFilePath = configurationPath

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, "debug", application.configuration.Common.LogLevel)
	require.Equal(testInstance, "/tmp/workbench_history", application.configuration.Console.HistoryFile)
	require.Equal(testInstance, configurationPath, application.configurationMetadata.ConfigFileUsed)
}

func TestResolveCatalogSourceIsCached(testInstance *testing.T) {
	application := NewApplication()

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))
	require.Same(testInstance, application.resolveCatalogSource(), application.resolveCatalogSource())
}
