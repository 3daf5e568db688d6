package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultCatalogURL points at the public ATNF pulsar catalogue CSV export.
	DefaultCatalogURL = "https://www.atnf.csiro.au/research/pulsar/psrcat/downloads/psrcat_export.csv"

	defaultFetchTimeoutConstant          = 60 * time.Second
	fetchRequestErrorTemplateConstant    = "unable to build catalog request: %w"
	fetchExecutionErrorTemplateConstant  = "catalog download failed: %w"
	fetchStatusErrorTemplateConstant     = "catalog download failed: unexpected status %s"
	fetchReadErrorTemplateConstant       = "unable to read catalog payload: %w"
	fetchValidationErrorTemplateConstant = "downloaded catalog is not parseable: %w"
	fetchWriteErrorTemplateConstant      = "unable to write catalog file %s: %w"
	temporaryFilePatternConstant         = ".atnf-*.csv"
	catalogFilePermissionsConstant       = 0o644
)

// Fetch downloads a catalog CSV export and installs it at destinationPath.
// The payload is parsed before installation so a truncated or malformed
// download never replaces a working catalog file, and the install itself is
// a temp-file rename. A nil httpClient selects a default client with a
// request timeout.
func Fetch(executionContext context.Context, httpClient *http.Client, catalogURL string, destinationPath string) error {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultFetchTimeoutConstant}
	}

	request, requestError := http.NewRequestWithContext(executionContext, http.MethodGet, catalogURL, nil)
	if requestError != nil {
		return fmt.Errorf(fetchRequestErrorTemplateConstant, requestError)
	}

	response, executionError := httpClient.Do(request)
	if executionError != nil {
		return fmt.Errorf(fetchExecutionErrorTemplateConstant, executionError)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf(fetchStatusErrorTemplateConstant, response.Status)
	}

	payload, readError := io.ReadAll(response.Body)
	if readError != nil {
		return fmt.Errorf(fetchReadErrorTemplateConstant, readError)
	}

	if _, validationError := Parse(bytes.NewReader(payload)); validationError != nil {
		return fmt.Errorf(fetchValidationErrorTemplateConstant, validationError)
	}

	return installCatalogFile(payload, destinationPath)
}

func installCatalogFile(payload []byte, destinationPath string) error {
	destinationDirectory := filepath.Dir(destinationPath)

	temporaryFile, temporaryError := os.CreateTemp(destinationDirectory, temporaryFilePatternConstant)
	if temporaryError != nil {
		return fmt.Errorf(fetchWriteErrorTemplateConstant, destinationPath, temporaryError)
	}
	temporaryPath := temporaryFile.Name()

	if _, writeError := temporaryFile.Write(payload); writeError != nil {
		temporaryFile.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf(fetchWriteErrorTemplateConstant, destinationPath, writeError)
	}
	if closeError := temporaryFile.Close(); closeError != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf(fetchWriteErrorTemplateConstant, destinationPath, closeError)
	}
	if permissionsError := os.Chmod(temporaryPath, catalogFilePermissionsConstant); permissionsError != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf(fetchWriteErrorTemplateConstant, destinationPath, permissionsError)
	}

	if renameError := os.Rename(temporaryPath, destinationPath); renameError != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf(fetchWriteErrorTemplateConstant, destinationPath, renameError)
	}

	return nil
}
