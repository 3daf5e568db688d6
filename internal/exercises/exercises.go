package exercises

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/cea-irfu-sap/classes-intro/internal/astro"
	"github.com/cea-irfu-sap/classes-intro/internal/catalog"
	"github.com/cea-irfu-sap/classes-intro/internal/exercise"
	"github.com/cea-irfu-sap/classes-intro/internal/pulsar"
)

const (
	crabNameConstant           = "Crab"
	crabRightAscensionConstant = "05:34:31.97"
	crabDeclinationConstant    = "+22:00:52.07"
	crabPeriodSecondsConstant  = 0.0333924123

	crabFrequencyDerivativeConstant = -3.77535e-10

	catalogExerciseTargetConstant = "J1944+2236"

	constructorExerciseNameConstant = "constructor"
	stringerExerciseNameConstant    = "stringer"
	propertyExerciseNameConstant    = "property"
	catalogExerciseNameConstant     = "catalog"
	fullExerciseNameConstant        = "full"

	constructorDescriptionConstant = "Build the Crab pulsar and report its parameters."
	propertyDescriptionConstant    = "Set the frequency derivative and watch the period derivative follow."
	catalogDescriptionConstant     = "Look a millisecond pulsar up in the ATNF catalog."
	fullDescriptionConstant        = "Render a random sample of the catalog as a parameter table."

	tableSampleSizeConstant       = 20
	tableNameWidthConstant        = 12
	tableRAWidthConstant          = 11
	tableDecWidthConstant         = 12
	tableNumericWidthConstant     = 12
	tableRowTemplateConstant      = "%-12s | %-11s | %-12s | %12.5e | %+12.5e\n"
	tableColumnJoinConstant       = " | "
	tableDividerJoinConstant      = "-+-"
	angleSecondsPrecisionConstant = 2
)

var tableHeaderNames = []string{"Name", "RA", "DEC", "Freq", "Fdot"}

var tableUnitNames = []string{"", "h:m:s", "d:m:s", "Hz", "Hz/s"}

var tableColumnWidths = []int{
	tableNameWidthConstant,
	tableRAWidthConstant,
	tableDecWidthConstant,
	tableNumericWidthConstant,
	tableNumericWidthConstant,
}

// Dependencies carries everything the exercises touch, so sessions and
// tests can supply their own output stream, catalog, and randomness.
type Dependencies struct {
	Output  io.Writer
	Catalog *catalog.Source
	Random  *rand.Rand
}

// RegisterAll adds every course exercise to the registry in course order.
func RegisterAll(registry *exercise.Registry, dependencies Dependencies) {
	registry.Register(exercise.Exercise{
		Name:        constructorExerciseNameConstant,
		Description: constructorDescriptionConstant,
		Run:         func() error { return runConstructor(dependencies) },
	})
	registry.Register(exercise.Exercise{
		Name: stringerExerciseNameConstant,
		Run:  func() error { return runStringer(dependencies) },
	})
	registry.Register(exercise.Exercise{
		Name:        propertyExerciseNameConstant,
		Description: propertyDescriptionConstant,
		Run:         func() error { return runProperty(dependencies) },
	})
	registry.Register(exercise.Exercise{
		Name:        catalogExerciseNameConstant,
		Description: catalogDescriptionConstant,
		Run:         func() error { return runCatalog(dependencies) },
	})
	registry.Register(exercise.Exercise{
		Name:        fullExerciseNameConstant,
		Description: fullDescriptionConstant,
		Run:         func() error { return runFull(dependencies) },
	})
}

func buildCrab(options ...pulsar.Option) (*pulsar.Pulsar, error) {
	rightAscension, rightAscensionError := astro.ParseHMS(crabRightAscensionConstant)
	if rightAscensionError != nil {
		return nil, rightAscensionError
	}
	declination, declinationError := astro.ParseDMS(crabDeclinationConstant)
	if declinationError != nil {
		return nil, declinationError
	}
	return pulsar.New(crabNameConstant, rightAscension, declination, crabPeriodSecondsConstant, options...)
}

func runConstructor(dependencies Dependencies) error {
	crab, buildError := buildCrab()
	if buildError != nil {
		return buildError
	}
	return crab.Report(dependencies.Output)
}

func runStringer(dependencies Dependencies) error {
	crab, buildError := buildCrab()
	if buildError != nil {
		return buildError
	}
	_, writeError := fmt.Fprintln(dependencies.Output, crab.String())
	return writeError
}

func runProperty(dependencies Dependencies) error {
	crab, buildError := buildCrab()
	if buildError != nil {
		return buildError
	}

	if reportError := crab.Report(dependencies.Output); reportError != nil {
		return reportError
	}

	crab.SetFrequencyDerivative(crabFrequencyDerivativeConstant)
	return crab.Report(dependencies.Output)
}

func runCatalog(dependencies Dependencies) error {
	target, lookupError := pulsar.FromCatalog(dependencies.Catalog, catalogExerciseTargetConstant)
	if lookupError != nil {
		return lookupError
	}
	return target.Report(dependencies.Output)
}

func runFull(dependencies Dependencies) error {
	catalogTable, catalogError := dependencies.Catalog.Catalog()
	if catalogError != nil {
		return catalogError
	}

	sampledRows := sampleRows(catalogTable.Rows(), dependencies.Random)

	writeTableHeader(dependencies.Output)
	for _, sampledRow := range sampledRows {
		sampled, buildError := pulsar.New(
			sampledRow.Name,
			sampledRow.RightAscension,
			sampledRow.Declination,
			sampledRow.PeriodSeconds,
			pulsar.WithPeriodDerivative(sampledRow.PeriodDerivative),
		)
		if buildError != nil {
			return buildError
		}

		fmt.Fprintf(
			dependencies.Output,
			tableRowTemplateConstant,
			sampled.Name(),
			sampled.RightAscension().FormatHMS(angleSecondsPrecisionConstant, true),
			sampled.Declination().FormatDMS(angleSecondsPrecisionConstant, true, true),
			sampled.FrequencyHertz(),
			sampled.FrequencyDerivative(),
		)
	}
	return nil
}

func sampleRows(rows []catalog.Row, randomSource *rand.Rand) []catalog.Row {
	if randomSource == nil {
		randomSource = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(rows) <= tableSampleSizeConstant {
		return rows
	}

	sampledRows := make([]catalog.Row, 0, tableSampleSizeConstant)
	for _, rowIndex := range randomSource.Perm(len(rows))[:tableSampleSizeConstant] {
		sampledRows = append(sampledRows, rows[rowIndex])
	}
	return sampledRows
}

func writeTableHeader(output io.Writer) {
	writeCenteredRow(output, tableHeaderNames)
	writeCenteredRow(output, tableUnitNames)

	dividerCells := make([]string, len(tableColumnWidths))
	for columnIndex, columnWidth := range tableColumnWidths {
		dividerCells[columnIndex] = strings.Repeat("-", columnWidth)
	}
	fmt.Fprintln(output, strings.Join(dividerCells, tableDividerJoinConstant))
}

func writeCenteredRow(output io.Writer, cellTexts []string) {
	rowCells := make([]string, len(cellTexts))
	for columnIndex, cellText := range cellTexts {
		rowCells[columnIndex] = centeredCell(cellText, tableColumnWidths[columnIndex])
	}
	fmt.Fprintln(output, strings.Join(rowCells, tableColumnJoinConstant))
}

func centeredCell(cellText string, cellWidth int) string {
	if len(cellText) >= cellWidth {
		return cellText
	}
	totalPadding := cellWidth - len(cellText)
	leftPadding := totalPadding / 2
	rightPadding := totalPadding - leftPadding
	return strings.Repeat(" ", leftPadding) + cellText + strings.Repeat(" ", rightPadding)
}
