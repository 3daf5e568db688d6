package astro

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	sexagesimalSeparatorConstant         = ":"
	degreesPerHourConstant               = 15.0
	minutesPerUnitConstant               = 60.0
	sexagesimalFieldLimitConstant        = 3
	emptyAngleMessageConstant            = "empty angle text"
	invalidAngleTemplateConstant         = "invalid sexagesimal angle %q: %w"
	tooManyFieldsMessageConstant         = "more than three fields"
	invalidFieldTemplateConstant         = "field %q is not a number"
	fieldOutOfRangeTemplateConstant      = "field %q must be below 60"
	negativeFieldTemplateConstant        = "field %q must not be negative"
	positiveSignPrefixConstant           = "+"
	negativeSignPrefixConstant           = "-"
	zeroPaddingPrefixConstant            = "0"
	paddedMinutesFormatConstant          = "%02d"
	secondsPaddingThresholdConstant      = 10.0
	leadingFieldPaddingThresholdConstant = 10
)

var (
	errEmptyAngle    = errors.New(emptyAngleMessageConstant)
	errTooManyFields = errors.New(tooManyFieldsMessageConstant)
)

// Angle is a sky angle stored internally in decimal degrees.
type Angle struct {
	degrees float64
}

// FromDegrees builds an Angle from decimal degrees.
func FromDegrees(degrees float64) Angle {
	return Angle{degrees: degrees}
}

// FromHours builds an Angle from decimal hours of right ascension.
func FromHours(hours float64) Angle {
	return Angle{degrees: hours * degreesPerHourConstant}
}

// Degrees reports the angle in decimal degrees.
func (angle Angle) Degrees() float64 {
	return angle.degrees
}

// Hours reports the angle in decimal hours (fifteen degrees per hour).
func (angle Angle) Hours() float64 {
	return angle.degrees / degreesPerHourConstant
}

// ParseHMS parses an hour angle written as "h:m:s". Trailing fields may be
// omitted, matching the ATNF RAJ column where faint pulsars carry "h:m" only.
func ParseHMS(angleText string) (Angle, error) {
	parsedHours, parseError := parseSexagesimal(angleText)
	if parseError != nil {
		return Angle{}, parseError
	}
	return FromHours(parsedHours), nil
}

// ParseDMS parses a declination written as "±d:m:s". Trailing fields may be
// omitted, matching the ATNF DECJ column.
func ParseDMS(angleText string) (Angle, error) {
	parsedDegrees, parseError := parseSexagesimal(angleText)
	if parseError != nil {
		return Angle{}, parseError
	}
	return FromDegrees(parsedDegrees), nil
}

// FormatHMS renders the angle as colon-separated hours, minutes, and seconds
// with the requested seconds precision. Minutes and seconds are always two
// digits; padLeading additionally zero-pads the hours field for tabular output.
func (angle Angle) FormatHMS(precision int, padLeading bool) string {
	formatted := formatSexagesimal(angle.Hours(), precision, padLeading)
	if angle.degrees < 0 {
		return negativeSignPrefixConstant + formatted
	}
	return formatted
}

// FormatDMS renders the angle as colon-separated degrees, arcminutes, and
// arcseconds. alwaysSign forces an explicit "+" on non-negative angles, the
// convention for declination columns.
func (angle Angle) FormatDMS(precision int, alwaysSign bool, padLeading bool) string {
	formatted := formatSexagesimal(angle.degrees, precision, padLeading)
	if angle.degrees < 0 {
		return negativeSignPrefixConstant + formatted
	}
	if alwaysSign {
		return positiveSignPrefixConstant + formatted
	}
	return formatted
}

func parseSexagesimal(angleText string) (float64, error) {
	trimmedText := strings.TrimSpace(angleText)
	if len(trimmedText) == 0 {
		return 0, fmt.Errorf(invalidAngleTemplateConstant, angleText, errEmptyAngle)
	}

	sign := 1.0
	remainingText := trimmedText
	switch remainingText[0] {
	case '+':
		remainingText = remainingText[1:]
	case '-':
		sign = -1.0
		remainingText = remainingText[1:]
	}

	fields := strings.Split(remainingText, sexagesimalSeparatorConstant)
	if len(fields) > sexagesimalFieldLimitConstant {
		return 0, fmt.Errorf(invalidAngleTemplateConstant, angleText, errTooManyFields)
	}

	value := 0.0
	fieldScale := 1.0
	for fieldIndex, field := range fields {
		trimmedField := strings.TrimSpace(field)
		parsedField, fieldError := strconv.ParseFloat(trimmedField, 64)
		if fieldError != nil {
			return 0, fmt.Errorf(invalidAngleTemplateConstant, angleText, fmt.Errorf(invalidFieldTemplateConstant, trimmedField))
		}
		if parsedField < 0 {
			return 0, fmt.Errorf(invalidAngleTemplateConstant, angleText, fmt.Errorf(negativeFieldTemplateConstant, trimmedField))
		}
		if fieldIndex > 0 && parsedField >= minutesPerUnitConstant {
			return 0, fmt.Errorf(invalidAngleTemplateConstant, angleText, fmt.Errorf(fieldOutOfRangeTemplateConstant, trimmedField))
		}

		value += parsedField / fieldScale
		fieldScale *= minutesPerUnitConstant
	}

	return sign * value, nil
}

// formatSexagesimal renders the magnitude of value as "u:mm:ss.ss", carrying
// rounded-up seconds into minutes and minutes into the leading unit.
func formatSexagesimal(value float64, precision int, padLeading bool) string {
	magnitude := math.Abs(value)

	leadingUnits := int(magnitude)
	remainderMinutes := (magnitude - float64(leadingUnits)) * minutesPerUnitConstant
	minutes := int(remainderMinutes)
	seconds := (remainderMinutes - float64(minutes)) * minutesPerUnitConstant

	roundingScale := math.Pow(10, float64(precision))
	seconds = math.Round(seconds*roundingScale) / roundingScale
	if seconds >= minutesPerUnitConstant {
		seconds -= minutesPerUnitConstant
		minutes++
	}
	if minutes >= int(minutesPerUnitConstant) {
		minutes -= int(minutesPerUnitConstant)
		leadingUnits++
	}

	secondsText := strconv.FormatFloat(seconds, 'f', precision, 64)
	if seconds < secondsPaddingThresholdConstant {
		secondsText = zeroPaddingPrefixConstant + secondsText
	}

	leadingText := strconv.Itoa(leadingUnits)
	if padLeading && leadingUnits < leadingFieldPaddingThresholdConstant {
		leadingText = zeroPaddingPrefixConstant + leadingText
	}

	minutesText := fmt.Sprintf(paddedMinutesFormatConstant, minutes)

	return strings.Join([]string{leadingText, minutesText, secondsText}, sexagesimalSeparatorConstant)
}
