package pulsar_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cea-irfu-sap/classes-intro/internal/astro"
	"github.com/cea-irfu-sap/classes-intro/internal/catalog"
	"github.com/cea-irfu-sap/classes-intro/internal/pulsar"
)

const (
	crabNameConstant            = "Crab"
	crabRightAscensionConstant  = "05:34:31.97"
	crabDeclinationConstant     = "+22:00:52.07"
	crabPeriodSecondsConstant   = 0.0333924123
	crabFrequencyHertzConstant  = 29.946923
	relativeToleranceConstant   = 1e-6
	frequencyDerivativeConstant = -3.77535e-10
	expectedCrabReportConstant  = "Pulsar \"Crab\":\n" +
		"  Coordinates (ICRS): RA = 5:34:31.97 (h:m:s), DEC = +22:00:52.07 (d:m:s)\n" +
		"  Period: 3.33924e-02 s\n" +
		"  Period derivative: 0.00000e+00 s / s\n" +
		"  Frequency: 2.99469e+01 Hz\n" +
		"  Frequency derivative: 0.00000e+00 Hz / s\n"
)

func buildCrab(testInstance *testing.T, options ...pulsar.Option) *pulsar.Pulsar {
	testInstance.Helper()

	rightAscension, rightAscensionError := astro.ParseHMS(crabRightAscensionConstant)
	require.NoError(testInstance, rightAscensionError)

	declination, declinationError := astro.ParseDMS(crabDeclinationConstant)
	require.NoError(testInstance, declinationError)

	instance, constructionError := pulsar.New(crabNameConstant, rightAscension, declination, crabPeriodSecondsConstant, options...)
	require.NoError(testInstance, constructionError)
	return instance
}

func TestNewRejectsNonPositivePeriods(testInstance *testing.T) {
	testCases := []struct {
		name          string
		periodSeconds float64
	}{
		{name: "zero_period", periodSeconds: 0},
		{name: "negative_period", periodSeconds: -0.033},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			_, constructionError := pulsar.New(crabNameConstant, astro.Angle{}, astro.Angle{}, testCase.periodSeconds)
			require.ErrorIs(testInstance, constructionError, pulsar.ErrNonPositivePeriod)
		})
	}
}

func TestFrequencyIsInverseOfPeriod(testInstance *testing.T) {
	instance := buildCrab(testInstance)

	require.InEpsilon(testInstance, crabFrequencyHertzConstant, instance.FrequencyHertz(), relativeToleranceConstant)

	require.NoError(testInstance, instance.SetFrequencyHertz(100.0))
	require.InEpsilon(testInstance, 0.01, instance.PeriodSeconds(), relativeToleranceConstant)

	require.ErrorIs(testInstance, instance.SetFrequencyHertz(0), pulsar.ErrNonPositiveFrequency)
	require.ErrorIs(testInstance, instance.SetPeriodSeconds(-1), pulsar.ErrNonPositivePeriod)
}

func TestFrequencyDerivativeRoundTrips(testInstance *testing.T) {
	instance := buildCrab(testInstance)
	require.Zero(testInstance, instance.FrequencyDerivative())

	instance.SetFrequencyDerivative(frequencyDerivativeConstant)

	expectedPeriodDerivative := -frequencyDerivativeConstant * crabPeriodSecondsConstant * crabPeriodSecondsConstant
	require.InEpsilon(testInstance, expectedPeriodDerivative, instance.PeriodDerivative(), relativeToleranceConstant)
	require.InEpsilon(testInstance, frequencyDerivativeConstant, instance.FrequencyDerivative(), relativeToleranceConstant)

	instance.SetFrequencyDerivative(0)
	require.Zero(testInstance, instance.PeriodDerivative())
}

func TestStringUsesShortDesignationForm(testInstance *testing.T) {
	instance := buildCrab(testInstance)
	require.Equal(testInstance, "<Pulsar(\"Crab\")>", instance.String())
}

func TestReportLayout(testInstance *testing.T) {
	instance := buildCrab(testInstance)

	var reportBuilder strings.Builder
	require.NoError(testInstance, instance.Report(&reportBuilder))
	require.Equal(testInstance, expectedCrabReportConstant, reportBuilder.String())
}

func TestFromCatalogBuildsMatchingPulsar(testInstance *testing.T) {
	source := catalog.NewSource("")

	instance, lookupError := pulsar.FromCatalog(source, "B0531+21")
	require.NoError(testInstance, lookupError)
	require.Equal(testInstance, "B0531+21", instance.Name())
	require.InEpsilon(testInstance, crabPeriodSecondsConstant, instance.PeriodSeconds(), relativeToleranceConstant)
	require.Negative(testInstance, instance.FrequencyDerivative())
}

func TestFromCatalogReportsUnknownIdentifiers(testInstance *testing.T) {
	source := catalog.NewSource("")

	_, lookupError := pulsar.FromCatalog(source, "J0000+0000")
	require.Error(testInstance, lookupError)

	var notFoundError *catalog.NotFoundError
	require.True(testInstance, errors.As(lookupError, &notFoundError))
	require.Equal(testInstance, "J0000+0000", notFoundError.Identifier)
}
