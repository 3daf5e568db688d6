package console

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	historyReadErrorTemplateConstant  = "unable to read history file %s: %w"
	historyWriteErrorTemplateConstant = "unable to write history file %s: %w"
	historyFilePermissionsConstant    = 0o644
	historyEntryLimitConstant         = 1000
)

// History records the lines entered at the exercise prompt and persists
// them across sessions, the way a readline history file does.
type History struct {
	filePath string
	lines    []string
}

// NewHistory builds a history bound to the provided file path. An empty
// path selects the default history file in the working directory.
func NewHistory(filePath string) *History {
	if len(filePath) == 0 {
		filePath = defaultHistoryFileConstant
	}
	return &History{filePath: filePath}
}

// Load reads previously saved lines. A missing file is not an error: the
// first session simply starts empty.
func (history *History) Load() error {
	historyContent, readError := os.ReadFile(history.filePath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(historyReadErrorTemplateConstant, history.filePath, readError)
	}

	for _, historyLine := range strings.Split(string(historyContent), "\n") {
		if len(historyLine) > 0 {
			history.lines = append(history.lines, historyLine)
		}
	}
	return nil
}

// Append records one entered line.
func (history *History) Append(line string) {
	history.lines = append(history.lines, line)
}

// Lines returns a copy of the recorded lines, oldest first.
func (history *History) Lines() []string {
	duplicatedLines := make([]string, len(history.lines))
	copy(duplicatedLines, history.lines)
	return duplicatedLines
}

// Save writes the recorded lines back to the history file, keeping only
// the most recent entries.
func (history *History) Save() error {
	persistedLines := history.lines
	if len(persistedLines) > historyEntryLimitConstant {
		persistedLines = persistedLines[len(persistedLines)-historyEntryLimitConstant:]
	}

	var historyBuilder strings.Builder
	for _, persistedLine := range persistedLines {
		historyBuilder.WriteString(persistedLine)
		historyBuilder.WriteString("\n")
	}

	if writeError := os.WriteFile(history.filePath, []byte(historyBuilder.String()), historyFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(historyWriteErrorTemplateConstant, history.filePath, writeError)
	}
	return nil
}
