package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cea-irfu-sap/classes-intro/internal/catalog"
)

func TestSourceLoadsConfiguredFileOnce(testInstance *testing.T) {
	catalogPath := filepath.Join(testInstance.TempDir(), "catalog.csv")
	require.NoError(testInstance, os.WriteFile(catalogPath, []byte(validCatalogContentConstant), 0o644))

	source := catalog.NewSource(catalogPath)

	firstCatalog, firstError := source.Catalog()
	require.NoError(testInstance, firstError)
	require.Equal(testInstance, 2, firstCatalog.Len())

	// Rewriting the file is not observed: the source caches the first load.
	require.NoError(testInstance, os.WriteFile(catalogPath, []byte("NAME,PSRJ,RAJ,DECJ,P0,P1\n"), 0o644))

	secondCatalog, secondError := source.Catalog()
	require.NoError(testInstance, secondError)
	require.Same(testInstance, firstCatalog, secondCatalog)
}

func TestSourceMissingFileFallsBackToEmbeddedSample(testInstance *testing.T) {
	source := catalog.NewSource(filepath.Join(testInstance.TempDir(), "absent.csv"))

	loadedCatalog, loadError := source.Catalog()
	require.NoError(testInstance, loadError)

	_, lookupError := loadedCatalog.Lookup("B0531+21")
	require.NoError(testInstance, lookupError)
}

func TestSourceEmptyPathUsesEmbeddedSample(testInstance *testing.T) {
	source := catalog.NewSource("")

	loadedCatalog, loadError := source.Catalog()
	require.NoError(testInstance, loadError)
	require.Greater(testInstance, loadedCatalog.Len(), 0)
}

func TestSourceUnparseableFileReportsError(testInstance *testing.T) {
	catalogPath := filepath.Join(testInstance.TempDir(), "catalog.csv")
	require.NoError(testInstance, os.WriteFile(catalogPath, []byte("NAME,RAJ\n"), 0o644))

	source := catalog.NewSource(catalogPath)

	_, loadError := source.Catalog()
	require.Error(testInstance, loadError)
	require.Contains(testInstance, loadError.Error(), catalogPath)
}
