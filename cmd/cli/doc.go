// Package cli constructs the pulsarlab command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives. Running the root command without arguments opens the
// interactive exercise console.
package cli
