package exercise

import (
	"fmt"
	"strings"
)

const (
	unknownExerciseTemplateConstant = "unknown exercise %q"
)

// RunFunc executes one exercise. Failures surface as an error so the
// console can report them without aborting the session.
type RunFunc func() error

// Exercise pairs a registered name with its description and body.
type Exercise struct {
	Name        string
	Description string
	Run         RunFunc
}

// Summary returns the first line of the description, or an empty string
// for undocumented exercises.
func (exercise Exercise) Summary() string {
	trimmedDescription := strings.TrimSpace(exercise.Description)
	if len(trimmedDescription) == 0 {
		return ""
	}
	firstLine, _, _ := strings.Cut(trimmedDescription, "\n")
	return strings.TrimSpace(firstLine)
}

// Registry holds exercises in registration order. Re-registering a name
// replaces the exercise in place without moving it.
type Registry struct {
	entries []Exercise
	indexes map[string]int
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{indexes: map[string]int{}}
}

// Register adds the exercise, keeping the original position when the name
// is already present.
func (registry *Registry) Register(registered Exercise) {
	if existingIndex, alreadyRegistered := registry.indexes[registered.Name]; alreadyRegistered {
		registry.entries[existingIndex] = registered
		return
	}
	registry.indexes[registered.Name] = len(registry.entries)
	registry.entries = append(registry.entries, registered)
}

// Len reports the number of registered exercises.
func (registry *Registry) Len() int {
	return len(registry.entries)
}

// Names returns the registered names in registration order.
func (registry *Registry) Names() []string {
	names := make([]string, len(registry.entries))
	for entryIndex, entry := range registry.entries {
		names[entryIndex] = entry.Name
	}
	return names
}

// Entries returns a copy of all exercises in registration order.
func (registry *Registry) Entries() []Exercise {
	duplicatedEntries := make([]Exercise, len(registry.entries))
	copy(duplicatedEntries, registry.entries)
	return duplicatedEntries
}

// Lookup finds an exercise by exact name.
func (registry *Registry) Lookup(name string) (Exercise, error) {
	entryIndex, registered := registry.indexes[name]
	if !registered {
		return Exercise{}, fmt.Errorf(unknownExerciseTemplateConstant, name)
	}
	return registry.entries[entryIndex], nil
}
