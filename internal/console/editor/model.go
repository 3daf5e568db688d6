package editor

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputCharacterLimitConstant = 128
	inputFieldWidthConstant     = 60
)

// CompleteFunc returns successive completions for a typed prefix, and
// reports false once the matches are exhausted.
type CompleteFunc func(prefix string) (string, bool)

// Model is the single-line prompt model. Tab cycles through the names
// matching the typed prefix, ctrl+n/ctrl+p cycle the ghost suggestions,
// and up/down walk the session history the way a readline prompt does.
type Model struct {
	input            textinput.Model
	complete         CompleteFunc
	completionPrefix string
	completing       bool
	historyLines     []string
	historyIndex     int
	pendingLine      string
	submitted        bool
	aborted          bool
	value            string
}

// NewModel builds a prompt model with completion candidates and history.
func NewModel(prompt string, suggestions []string, historyLines []string, complete CompleteFunc) Model {
	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = promptStyle
	input.CompletionStyle = suggestionStyle
	input.CharLimit = inputCharacterLimitConstant
	input.Width = inputFieldWidthConstant
	input.ShowSuggestions = true
	input.SetSuggestions(suggestions)
	input.Focus()

	return Model{
		input:        input,
		complete:     complete,
		historyLines: historyLines,
		historyIndex: -1,
	}
}

// Init starts the cursor blink.
func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submission, aborts, and history navigation before
// delegating the remaining keys to the text input.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, isKeyMessage := message.(tea.KeyMsg)
	if !isKeyMessage {
		var inputCommand tea.Cmd
		model.input, inputCommand = model.input.Update(message)
		return model, inputCommand
	}

	switch keyMessage.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		model.aborted = true
		return model, tea.Quit

	case tea.KeyEnter:
		model.value = model.input.Value()
		model.submitted = true
		return model, tea.Quit

	case tea.KeyTab:
		if model.complete != nil {
			if !model.completing {
				model.completionPrefix = model.input.Value()
				model.completing = true
			}
			if candidate, matched := model.complete(model.completionPrefix); matched {
				model.input.SetValue(candidate)
			} else {
				// Matches exhausted: restore the typed prefix, the next
				// tab starts the cycle over.
				model.input.SetValue(model.completionPrefix)
			}
			model.input.CursorEnd()
			return model, nil
		}

	case tea.KeyUp:
		if len(model.historyLines) == 0 {
			return model, nil
		}
		if model.historyIndex == -1 {
			model.pendingLine = model.input.Value()
			model.historyIndex = len(model.historyLines) - 1
		} else if model.historyIndex > 0 {
			model.historyIndex--
		}
		model.input.SetValue(model.historyLines[model.historyIndex])
		model.input.CursorEnd()
		return model, nil

	case tea.KeyDown:
		if model.historyIndex == -1 {
			return model, nil
		}
		if model.historyIndex < len(model.historyLines)-1 {
			model.historyIndex++
			model.input.SetValue(model.historyLines[model.historyIndex])
		} else {
			model.historyIndex = -1
			model.input.SetValue(model.pendingLine)
		}
		model.input.CursorEnd()
		return model, nil
	}

	// Any ordinary keystroke leaves history navigation and completion mode.
	if model.historyIndex != -1 && keyMessage.Type == tea.KeyRunes {
		model.historyIndex = -1
	}
	model.completing = false

	var inputCommand tea.Cmd
	model.input, inputCommand = model.input.Update(keyMessage)
	return model, inputCommand
}

// View renders the prompt line.
func (model Model) View() string {
	return model.input.View()
}

// Value returns the submitted line.
func (model Model) Value() string {
	return model.value
}

// Submitted reports whether enter was pressed.
func (model Model) Submitted() bool {
	return model.submitted
}

// Aborted reports whether the prompt was cancelled.
func (model Model) Aborted() bool {
	return model.aborted
}
