package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	_ "embed"
)

const (
	sourceOpenErrorTemplateConstant  = "unable to open catalog file %s: %w"
	sourceParseErrorTemplateConstant = "unable to parse catalog file %s: %w"
)

//go:embed atnf_sample.csv
var embeddedSampleCatalog []byte

// EmbeddedSample parses the bundled ATNF extract shipped with the binary.
func EmbeddedSample() (*Catalog, error) {
	return Parse(bytes.NewReader(embeddedSampleCatalog))
}

// Source resolves a catalog location to a parsed Catalog exactly once and
// caches the result for every later caller. It replaces hidden process-wide
// catalog state: callers receive a Source explicitly and share it on purpose.
type Source struct {
	path      string
	loadOnce  sync.Once
	catalog   *Catalog
	loadError error
}

// NewSource builds a Source reading from the provided file path. An empty
// path selects the embedded sample extract.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Catalog returns the parsed catalog, loading it on first use. A configured
// file that does not exist falls back to the embedded sample extract so the
// exercises keep working before any catalog download.
func (source *Source) Catalog() (*Catalog, error) {
	source.loadOnce.Do(source.load)
	return source.catalog, source.loadError
}

func (source *Source) load() {
	if len(source.path) == 0 {
		source.catalog, source.loadError = EmbeddedSample()
		return
	}

	catalogFile, openError := os.Open(source.path)
	if openError != nil {
		if errors.Is(openError, fs.ErrNotExist) {
			source.catalog, source.loadError = EmbeddedSample()
			return
		}
		source.loadError = fmt.Errorf(sourceOpenErrorTemplateConstant, source.path, openError)
		return
	}
	defer catalogFile.Close()

	parsedCatalog, parseError := Parse(catalogFile)
	if parseError != nil {
		source.loadError = fmt.Errorf(sourceParseErrorTemplateConstant, source.path, parseError)
		return
	}

	source.catalog = parsedCatalog
}
