package pulsar

import (
	"errors"
	"fmt"
	"io"

	"github.com/cea-irfu-sap/classes-intro/internal/astro"
	"github.com/cea-irfu-sap/classes-intro/internal/catalog"
)

const (
	reportAngleSecondsPrecisionConstant = 2
	reportTemplateConstant              = "Pulsar %q:\n" +
		"  Coordinates (ICRS): RA = %s (h:m:s), DEC = %s (d:m:s)\n" +
		"  Period: %.5e s\n" +
		"  Period derivative: %.5e s / s\n" +
		"  Frequency: %.5e Hz\n" +
		"  Frequency derivative: %.5e Hz / s\n"
	stringTemplateConstant = "<Pulsar(%q)>"
)

var (
	// ErrNonPositivePeriod rejects spin periods that cannot be inverted.
	ErrNonPositivePeriod = errors.New("pulsar period must be positive")
	// ErrNonPositiveFrequency rejects spin frequencies that cannot be inverted.
	ErrNonPositiveFrequency = errors.New("pulsar frequency must be positive")
)

// Pulsar holds the identifying and timing parameters of one pulsar. The
// period is the stored quantity; frequency views are derived on access so
// the two representations can never disagree.
type Pulsar struct {
	name             string
	rightAscension   astro.Angle
	declination      astro.Angle
	periodSeconds    float64
	periodDerivative float64
}

// Option adjusts optional pulsar parameters at construction time.
type Option func(*Pulsar)

// WithPeriodDerivative sets the spin-down rate in seconds per second.
func WithPeriodDerivative(periodDerivative float64) Option {
	return func(instance *Pulsar) {
		instance.periodDerivative = periodDerivative
	}
}

// New builds a Pulsar from its name, ICRS coordinates, and spin period in
// seconds. The period must be positive.
func New(name string, rightAscension astro.Angle, declination astro.Angle, periodSeconds float64, options ...Option) (*Pulsar, error) {
	if periodSeconds <= 0 {
		return nil, ErrNonPositivePeriod
	}

	instance := &Pulsar{
		name:           name,
		rightAscension: rightAscension,
		declination:    declination,
		periodSeconds:  periodSeconds,
	}
	for _, option := range options {
		option(instance)
	}
	return instance, nil
}

// FromCatalog builds a Pulsar from the catalog row matching the identifier.
func FromCatalog(source *catalog.Source, identifier string) (*Pulsar, error) {
	catalogTable, catalogError := source.Catalog()
	if catalogError != nil {
		return nil, catalogError
	}

	row, lookupError := catalogTable.Lookup(identifier)
	if lookupError != nil {
		return nil, lookupError
	}

	return New(row.Name, row.RightAscension, row.Declination, row.PeriodSeconds, WithPeriodDerivative(row.PeriodDerivative))
}

// Name returns the pulsar designation.
func (instance *Pulsar) Name() string {
	return instance.name
}

// RightAscension returns the ICRS right ascension.
func (instance *Pulsar) RightAscension() astro.Angle {
	return instance.rightAscension
}

// Declination returns the ICRS declination.
func (instance *Pulsar) Declination() astro.Angle {
	return instance.declination
}

// PeriodSeconds returns the spin period in seconds.
func (instance *Pulsar) PeriodSeconds() float64 {
	return instance.periodSeconds
}

// PeriodDerivative returns the spin-down rate in seconds per second.
func (instance *Pulsar) PeriodDerivative() float64 {
	return instance.periodDerivative
}

// SetPeriodSeconds replaces the spin period. The period must be positive.
func (instance *Pulsar) SetPeriodSeconds(periodSeconds float64) error {
	if periodSeconds <= 0 {
		return ErrNonPositivePeriod
	}
	instance.periodSeconds = periodSeconds
	return nil
}

// SetPeriodDerivative replaces the spin-down rate.
func (instance *Pulsar) SetPeriodDerivative(periodDerivative float64) {
	instance.periodDerivative = periodDerivative
}

// FrequencyHertz returns the spin frequency, the inverse of the period.
func (instance *Pulsar) FrequencyHertz() float64 {
	return 1.0 / instance.periodSeconds
}

// SetFrequencyHertz rewrites the period from a spin frequency. The
// frequency must be positive.
func (instance *Pulsar) SetFrequencyHertz(frequencyHertz float64) error {
	if frequencyHertz <= 0 {
		return ErrNonPositiveFrequency
	}
	instance.periodSeconds = 1.0 / frequencyHertz
	return nil
}

// FrequencyDerivative returns the frequency spin-down rate, -P1/P².
func (instance *Pulsar) FrequencyDerivative() float64 {
	if instance.periodDerivative == 0 {
		return 0
	}
	return -instance.periodDerivative / (instance.periodSeconds * instance.periodSeconds)
}

// SetFrequencyDerivative rewrites the period derivative from a frequency
// spin-down rate, P1 = -fdot·P².
func (instance *Pulsar) SetFrequencyDerivative(frequencyDerivative float64) {
	if frequencyDerivative == 0 {
		instance.periodDerivative = 0
		return
	}
	instance.periodDerivative = -frequencyDerivative * instance.periodSeconds * instance.periodSeconds
}

// String renders the short designation form.
func (instance *Pulsar) String() string {
	return fmt.Sprintf(stringTemplateConstant, instance.name)
}

// Report writes the full parameter block to the writer.
func (instance *Pulsar) Report(output io.Writer) error {
	_, writeError := fmt.Fprintf(
		output,
		reportTemplateConstant,
		instance.name,
		instance.rightAscension.FormatHMS(reportAngleSecondsPrecisionConstant, false),
		instance.declination.FormatDMS(reportAngleSecondsPrecisionConstant, true, false),
		instance.periodSeconds,
		instance.periodDerivative,
		instance.FrequencyHertz(),
		instance.FrequencyDerivative(),
	)
	return writeError
}
