package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/cea-irfu-sap/classes-intro/internal/exercise"
)

const (
	promptConstant                 = "Your choice: "
	menuHeaderConstant             = "Available exercises:"
	menuEntryTemplateConstant      = "    %s - %s\n"
	menuIndentConstant             = "    "
	invalidChoiceMessageConstant   = "Invalid exercise name. Please try again\n"
	runningBannerTemplateConstant  = " Running exercise %q "
	finishedBannerTemplateConstant = " Finished exercise %q "
	bannerWidthConstant            = 80
	bannerFillConstant             = "-"
	undocumentedWrapLimitConstant  = 70
	undocumentedSeparatorConstant  = ", "
)

// LineReader obtains one line of user input after showing a prompt. An
// end-of-input condition (ctrl+d, closed pipe, aborted editor) surfaces as
// io.EOF.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type ioLineReader struct {
	input  *bufio.Reader
	output io.Writer
}

// NewLineReader builds a plain LineReader over an input stream, used when
// standard input is not a terminal.
func NewLineReader(input io.Reader, output io.Writer) LineReader {
	return &ioLineReader{input: bufio.NewReader(input), output: output}
}

func (reader *ioLineReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(reader.output, prompt)

	line, readError := reader.input.ReadString('\n')
	if readError != nil {
		if readError == io.EOF && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", readError
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Runner owns one interactive exercise session.
type Runner struct {
	Registry   *exercise.Registry
	LineReader LineReader
	Output     io.Writer
	History    *History
}

// Run prints the menu once and then prompts until an exercise is chosen
// or the input ends.
func (runner *Runner) Run() error {
	runner.PrintMenu()
	return runner.PromptAndRun()
}

// PrintMenu lists documented exercises one per line and gathers the
// undocumented names into a wrapped trailing block.
func (runner *Runner) PrintMenu() {
	fmt.Fprintln(runner.Output, menuHeaderConstant)

	undocumentedNames := make([]string, 0, runner.Registry.Len())
	for _, entry := range runner.Registry.Entries() {
		summary := entry.Summary()
		if len(summary) == 0 {
			undocumentedNames = append(undocumentedNames, entry.Name)
			continue
		}
		fmt.Fprintf(runner.Output, menuEntryTemplateConstant, entry.Name, summary)
	}

	if len(undocumentedNames) == 0 {
		return
	}

	wrappedNames := wordwrap.WrapString(strings.Join(undocumentedNames, undocumentedSeparatorConstant), undocumentedWrapLimitConstant)
	for _, wrappedLine := range strings.Split(wrappedNames, "\n") {
		fmt.Fprintln(runner.Output, menuIndentConstant+wrappedLine)
	}
}

// PromptAndRun reads exercise names until one matches. Unknown names
// produce a retry message and another prompt; end of input is a silent,
// successful exit. The first matching name stops the prompting, runs once,
// and its result becomes the session result.
func (runner *Runner) PromptAndRun() error {
	for {
		enteredLine, readError := runner.LineReader.ReadLine(promptConstant)
		if readError == io.EOF {
			fmt.Fprintln(runner.Output)
			return nil
		}
		if readError != nil {
			return readError
		}

		exerciseName := strings.TrimSpace(enteredLine)
		if len(exerciseName) > 0 && runner.History != nil {
			runner.History.Append(exerciseName)
		}

		entry, lookupError := runner.Registry.Lookup(exerciseName)
		if lookupError != nil {
			fmt.Fprint(runner.Output, invalidChoiceMessageConstant)
			continue
		}

		return runner.RunOne(entry)
	}
}

// RunOne executes one exercise between its banners. The closing banner is
// printed even when the exercise fails.
func (runner *Runner) RunOne(entry exercise.Exercise) error {
	fmt.Fprintln(runner.Output, centeredBanner(fmt.Sprintf(runningBannerTemplateConstant, entry.Name)))
	runError := entry.Run()
	fmt.Fprintln(runner.Output, centeredBanner(fmt.Sprintf(finishedBannerTemplateConstant, entry.Name)))
	return runError
}

func centeredBanner(bannerText string) string {
	if len(bannerText) >= bannerWidthConstant {
		return bannerText
	}
	totalPadding := bannerWidthConstant - len(bannerText)
	leftPadding := totalPadding / 2
	rightPadding := totalPadding - leftPadding
	return strings.Repeat(bannerFillConstant, leftPadding) + bannerText + strings.Repeat(bannerFillConstant, rightPadding)
}
