package cli_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cea-irfu-sap/classes-intro/cmd/cli"
)

const historyFileEnvironmentNameConstant = "PULSARLAB_CONSOLE_HISTORY_FILE"

func executeApplication(testInstance *testing.T, standardInput string, arguments ...string) (string, error) {
	testInstance.Helper()

	testInstance.Setenv(historyFileEnvironmentNameConstant, filepath.Join(testInstance.TempDir(), "history"))

	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	var outputBuilder strings.Builder
	rootCommand.SetIn(strings.NewReader(standardInput))
	rootCommand.SetOut(&outputBuilder)
	rootCommand.SetErr(&outputBuilder)
	rootCommand.SetArgs(arguments)

	executionError := application.Execute()
	return outputBuilder.String(), executionError
}

func TestRootCommandRunsInteractiveSession(testInstance *testing.T) {
	sessionOutput, executionError := executeApplication(testInstance, "bogus\nstringer\n")
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, sessionOutput, "Available exercises:")
	require.Contains(testInstance, sessionOutput, "Your choice: ")
	require.Contains(testInstance, sessionOutput, "Invalid exercise name. Please try again")
	require.Contains(testInstance, sessionOutput, "<Pulsar(\"Crab\")>")
	require.Contains(testInstance, sessionOutput, "Finished exercise \"stringer\"")
}

func TestListCommandShowsDocumentedExercises(testInstance *testing.T) {
	listOutput, executionError := executeApplication(testInstance, "", "list")
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, listOutput, "Available exercises:")
	require.Contains(testInstance, listOutput, "constructor - Build the Crab pulsar and report its parameters.")
}

func TestRunCommandExecutesTheRequestedExercise(testInstance *testing.T) {
	runOutput, executionError := executeApplication(testInstance, "", "run", "constructor")
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, runOutput, "Running exercise \"constructor\"")
	require.Contains(testInstance, runOutput, "Pulsar \"Crab\":")
}

func TestShowCommandReportsACatalogPulsar(testInstance *testing.T) {
	showOutput, executionError := executeApplication(testInstance, "", "show", "B0531+21")
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, showOutput, "Pulsar \"B0531+21\":")
	require.Contains(testInstance, showOutput, "Period: 3.33924e-02 s")
}

func TestShowCommandFailsForUnknownPulsars(testInstance *testing.T) {
	_, executionError := executeApplication(testInstance, "", "show", "J0000+0000")
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "J0000+0000")
}

func TestVersionCommandPrintsTheApplicationName(testInstance *testing.T) {
	versionOutput, executionError := executeApplication(testInstance, "", "version")
	require.NoError(testInstance, executionError)
	require.Contains(testInstance, versionOutput, "pulsarlab ")
}
