package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cea-irfu-sap/classes-intro/internal/astro"
)

const (
	nameColumnConstant             = "NAME"
	jNameColumnConstant            = "PSRJ"
	rightAscensionColumnConstant   = "RAJ"
	declinationColumnConstant      = "DECJ"
	periodColumnConstant           = "P0"
	periodDerivativeColumnConstant = "P1"

	emptyCatalogMessageConstant           = "catalog has no header row"
	missingColumnTemplateConstant         = "catalog is missing required column %s"
	readErrorTemplateConstant             = "unable to read catalog: %w"
	rowFieldErrorTemplateConstant         = "catalog row %d: column %s: %w"
	notFoundMessageTemplateConstant       = "pulsar %q not found in catalog"
	duplicatedRowsInitialCapacityConstant = 64
)

var requiredColumns = []string{
	nameColumnConstant,
	jNameColumnConstant,
	rightAscensionColumnConstant,
	declinationColumnConstant,
	periodColumnConstant,
}

// Row is one catalog entry with the columns the exercises consume.
type Row struct {
	Name             string
	JName            string
	RightAscension   astro.Angle
	Declination      astro.Angle
	PeriodSeconds    float64
	PeriodDerivative float64
}

// Catalog is an immutable, parsed pulsar parameter table.
type Catalog struct {
	rows []Row
}

// NotFoundError reports a lookup identifier absent from the catalog.
type NotFoundError struct {
	Identifier string
}

// Error describes the missing identifier.
func (notFoundError *NotFoundError) Error() string {
	return fmt.Sprintf(notFoundMessageTemplateConstant, notFoundError.Identifier)
}

// Parse reads a CSV catalog export. The header row must contain the NAME,
// PSRJ, RAJ, DECJ, and P0 columns in any order; P1 is optional. Rows without
// a measured period are skipped, matching the null entries in the upstream
// catalog export.
func Parse(reader io.Reader) (*Catalog, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	headerFields, headerError := csvReader.Read()
	if headerError == io.EOF {
		return nil, errors.New(emptyCatalogMessageConstant)
	}
	if headerError != nil {
		return nil, fmt.Errorf(readErrorTemplateConstant, headerError)
	}

	columnIndexes := make(map[string]int, len(headerFields))
	for fieldIndex, fieldName := range headerFields {
		columnIndexes[strings.ToUpper(strings.TrimSpace(fieldName))] = fieldIndex
	}
	for _, requiredColumn := range requiredColumns {
		if _, columnPresent := columnIndexes[requiredColumn]; !columnPresent {
			return nil, fmt.Errorf(missingColumnTemplateConstant, requiredColumn)
		}
	}

	rows := make([]Row, 0, duplicatedRowsInitialCapacityConstant)
	rowNumber := 1
	for {
		recordFields, recordError := csvReader.Read()
		if recordError == io.EOF {
			break
		}
		if recordError != nil {
			return nil, fmt.Errorf(readErrorTemplateConstant, recordError)
		}
		rowNumber++

		fieldByColumn := func(columnName string) string {
			columnIndex, columnPresent := columnIndexes[columnName]
			if !columnPresent || columnIndex >= len(recordFields) {
				return ""
			}
			return strings.TrimSpace(recordFields[columnIndex])
		}

		periodText := fieldByColumn(periodColumnConstant)
		if len(periodText) == 0 {
			continue
		}

		periodSeconds, periodError := strconv.ParseFloat(periodText, 64)
		if periodError != nil {
			return nil, fmt.Errorf(rowFieldErrorTemplateConstant, rowNumber, periodColumnConstant, periodError)
		}

		periodDerivative := 0.0
		if periodDerivativeText := fieldByColumn(periodDerivativeColumnConstant); len(periodDerivativeText) > 0 {
			parsedDerivative, derivativeError := strconv.ParseFloat(periodDerivativeText, 64)
			if derivativeError != nil {
				return nil, fmt.Errorf(rowFieldErrorTemplateConstant, rowNumber, periodDerivativeColumnConstant, derivativeError)
			}
			periodDerivative = parsedDerivative
		}

		rightAscension, rightAscensionError := astro.ParseHMS(fieldByColumn(rightAscensionColumnConstant))
		if rightAscensionError != nil {
			return nil, fmt.Errorf(rowFieldErrorTemplateConstant, rowNumber, rightAscensionColumnConstant, rightAscensionError)
		}

		declination, declinationError := astro.ParseDMS(fieldByColumn(declinationColumnConstant))
		if declinationError != nil {
			return nil, fmt.Errorf(rowFieldErrorTemplateConstant, rowNumber, declinationColumnConstant, declinationError)
		}

		rows = append(rows, Row{
			Name:             fieldByColumn(nameColumnConstant),
			JName:            fieldByColumn(jNameColumnConstant),
			RightAscension:   rightAscension,
			Declination:      declination,
			PeriodSeconds:    periodSeconds,
			PeriodDerivative: periodDerivative,
		})
	}

	return &Catalog{rows: rows}, nil
}

// Len reports the number of catalog rows.
func (catalogTable *Catalog) Len() int {
	return len(catalogTable.rows)
}

// Rows returns a copy of all catalog rows in file order.
func (catalogTable *Catalog) Rows() []Row {
	duplicatedRows := make([]Row, len(catalogTable.rows))
	copy(duplicatedRows, catalogTable.rows)
	return duplicatedRows
}

// Lookup finds the first row whose NAME or PSRJ column equals the identifier
// exactly. Absent identifiers yield a *NotFoundError.
func (catalogTable *Catalog) Lookup(identifier string) (Row, error) {
	for _, candidateRow := range catalogTable.rows {
		if candidateRow.Name == identifier || candidateRow.JName == identifier {
			return candidateRow, nil
		}
	}
	return Row{}, &NotFoundError{Identifier: identifier}
}
