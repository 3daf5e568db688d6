package editor

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

const promptRunErrorTemplateConstant = "line editor failed: %w"

// LineEditor reads prompt lines through a bubbletea program. It satisfies
// the console LineReader contract: an aborted prompt surfaces as io.EOF.
type LineEditor struct {
	Input               io.Reader
	Output              io.Writer
	Complete            CompleteFunc
	SuggestionsProvider func() []string
	HistoryProvider     func() []string
}

// ReadLine shows the prompt and blocks until the line is submitted or the
// prompt is aborted.
func (lineEditor *LineEditor) ReadLine(prompt string) (string, error) {
	promptModel := NewModel(prompt, lineEditor.resolveSuggestions(), lineEditor.resolveHistory(), lineEditor.Complete)

	program := tea.NewProgram(
		promptModel,
		tea.WithInput(lineEditor.Input),
		tea.WithOutput(lineEditor.Output),
	)

	finalModel, runError := program.Run()
	if runError != nil {
		return "", fmt.Errorf(promptRunErrorTemplateConstant, runError)
	}

	result, isPromptModel := finalModel.(Model)
	if !isPromptModel || result.Aborted() {
		return "", io.EOF
	}
	return result.Value(), nil
}

func (lineEditor *LineEditor) resolveSuggestions() []string {
	if lineEditor.SuggestionsProvider == nil {
		return nil
	}
	return lineEditor.SuggestionsProvider()
}

func (lineEditor *LineEditor) resolveHistory() []string {
	if lineEditor.HistoryProvider == nil {
		return nil
	}
	return lineEditor.HistoryProvider()
}
