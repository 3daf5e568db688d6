// Package console drives the interactive exercise session: the menu, the
// prompt-and-run loop, and the persisted input history.
package console
