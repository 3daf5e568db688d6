package exercise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cea-irfu-sap/classes-intro/internal/exercise"
)

func noopRun() error { return nil }

func TestRegisterKeepsRegistrationOrder(testInstance *testing.T) {
	registry := exercise.NewRegistry()
	registry.Register(exercise.Exercise{Name: "constructor", Run: noopRun})
	registry.Register(exercise.Exercise{Name: "stringer", Run: noopRun})
	registry.Register(exercise.Exercise{Name: "property", Run: noopRun})

	require.Equal(testInstance, []string{"constructor", "stringer", "property"}, registry.Names())
	require.Equal(testInstance, 3, registry.Len())
}

func TestRegisterReplacesInPlace(testInstance *testing.T) {
	registry := exercise.NewRegistry()
	registry.Register(exercise.Exercise{Name: "constructor", Description: "first version", Run: noopRun})
	registry.Register(exercise.Exercise{Name: "stringer", Run: noopRun})
	registry.Register(exercise.Exercise{Name: "constructor", Description: "second version", Run: noopRun})

	require.Equal(testInstance, []string{"constructor", "stringer"}, registry.Names())

	replaced, lookupError := registry.Lookup("constructor")
	require.NoError(testInstance, lookupError)
	require.Equal(testInstance, "second version", replaced.Description)
}

func TestLookupUnknownNameFails(testInstance *testing.T) {
	registry := exercise.NewRegistry()
	registry.Register(exercise.Exercise{Name: "constructor", Run: noopRun})

	_, lookupError := registry.Lookup("bogus")
	require.Error(testInstance, lookupError)
	require.Contains(testInstance, lookupError.Error(), "bogus")
}

func TestSummaryUsesFirstDescriptionLine(testInstance *testing.T) {
	testCases := []struct {
		name            string
		description     string
		expectedSummary string
	}{
		{name: "single_line", description: "Build the Crab pulsar.", expectedSummary: "Build the Crab pulsar."},
		{name: "multi_line", description: "Build the Crab pulsar.\n\nLonger explanation.", expectedSummary: "Build the Crab pulsar."},
		{name: "surrounding_whitespace", description: "  padded summary  \nrest", expectedSummary: "padded summary"},
		{name: "undocumented", description: "", expectedSummary: ""},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			entry := exercise.Exercise{Name: "sample", Description: testCase.description, Run: noopRun}
			require.Equal(testInstance, testCase.expectedSummary, entry.Summary())
		})
	}
}
