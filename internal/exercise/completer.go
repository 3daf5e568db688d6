package exercise

import "strings"

// Completer cycles through registered exercise names sharing a typed
// prefix, the way a readline completion loop does. A change of prefix
// restarts the cycle.
type Completer struct {
	names         []string
	currentPrefix string
	currentIndex  int
}

// NewCompleter snapshots the registry names for completion.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{names: registry.Names(), currentIndex: -1}
}

// Matches returns every name starting with the prefix, in registration
// order. An empty prefix matches everything.
func (completer *Completer) Matches(prefix string) []string {
	matches := make([]string, 0, len(completer.names))
	for _, candidateName := range completer.names {
		if strings.HasPrefix(candidateName, prefix) {
			matches = append(matches, candidateName)
		}
	}
	return matches
}

// Next returns the following completion for the prefix. Once the matches
// are exhausted it reports false and the cycle starts over on the next
// call, mirroring a readline completion function.
func (completer *Completer) Next(prefix string) (string, bool) {
	if prefix != completer.currentPrefix {
		completer.currentPrefix = prefix
		completer.currentIndex = -1
	}

	matches := completer.Matches(prefix)
	completer.currentIndex++
	if completer.currentIndex >= len(matches) {
		completer.currentIndex = -1
		return "", false
	}
	return matches[completer.currentIndex], true
}
