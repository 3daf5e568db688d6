package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationCommandTimeout            = 30 * time.Second
	integrationHistoryFileEnvKeyConstant = "PULSARLAB_CONSOLE_HISTORY_FILE"
	integrationLogLevelEnvKeyConstant    = "PULSARLAB_COMMON_LOG_LEVEL"
	integrationQuietLogLevelConstant     = "error"
)

func runWorkbench(testInstance *testing.T, standardInput string, arguments ...string) (string, error) {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), integrationCommandTimeout)
	defer cancel()

	command := exec.CommandContext(executionContext, workbenchBinaryPath, arguments...)
	command.Dir = testInstance.TempDir()
	command.Stdin = strings.NewReader(standardInput)
	command.Env = append(
		os.Environ(),
		integrationHistoryFileEnvKeyConstant+"="+filepath.Join(command.Dir, "history"),
		integrationLogLevelEnvKeyConstant+"="+integrationQuietLogLevelConstant,
	)

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func TestInteractiveSessionOverPipedInput(testInstance *testing.T) {
	sessionOutput, runError := runWorkbench(testInstance, "bogus\nconstructor\n")
	require.NoError(testInstance, runError, sessionOutput)

	require.Contains(testInstance, sessionOutput, "Available exercises:")
	require.Contains(testInstance, sessionOutput, "Your choice: ")
	require.Contains(testInstance, sessionOutput, "Invalid exercise name. Please try again")
	require.Contains(testInstance, sessionOutput, "Running exercise \"constructor\"")
	require.Contains(testInstance, sessionOutput, "Pulsar \"Crab\":")
	require.Contains(testInstance, sessionOutput, "Finished exercise \"constructor\"")
}

func TestInteractiveSessionPersistsHistory(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	historyPath := filepath.Join(workingDirectory, "history")

	executionContext, cancel := context.WithTimeout(context.Background(), integrationCommandTimeout)
	defer cancel()

	command := exec.CommandContext(executionContext, workbenchBinaryPath)
	command.Dir = workingDirectory
	command.Stdin = strings.NewReader("stringer\n")
	command.Env = append(
		os.Environ(),
		integrationHistoryFileEnvKeyConstant+"="+historyPath,
		integrationLogLevelEnvKeyConstant+"="+integrationQuietLogLevelConstant,
	)

	sessionOutput, runError := command.CombinedOutput()
	require.NoError(testInstance, runError, string(sessionOutput))

	historyContent, readError := os.ReadFile(historyPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "stringer\n", string(historyContent))
}

func TestListCommand(testInstance *testing.T) {
	listOutput, runError := runWorkbench(testInstance, "", "list")
	require.NoError(testInstance, runError, listOutput)

	require.Contains(testInstance, listOutput, "Available exercises:")
	require.Contains(testInstance, listOutput, "constructor - Build the Crab pulsar and report its parameters.")
}

func TestShowCommand(testInstance *testing.T) {
	showOutput, runError := runWorkbench(testInstance, "", "show", "J0534+2200")
	require.NoError(testInstance, runError, showOutput)

	require.Contains(testInstance, showOutput, "Pulsar \"B0531+21\":")
	require.Contains(testInstance, showOutput, "Period: 3.33924e-02 s")
}

func TestShowCommandUnknownPulsarFails(testInstance *testing.T) {
	showOutput, runError := runWorkbench(testInstance, "", "show", "J0000+0000")
	require.Error(testInstance, runError)
	require.Contains(testInstance, showOutput, "J0000+0000")
}

func TestVersionCommand(testInstance *testing.T) {
	versionOutput, runError := runWorkbench(testInstance, "", "version")
	require.NoError(testInstance, runError, versionOutput)
	require.Contains(testInstance, versionOutput, "pulsarlab ")
}
