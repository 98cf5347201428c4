// Package duration parses the compact duration strings used in configuration.
//
// The grammar is deliberately small: a bare number is a count of seconds, and
// a single trailing s, m, or h unit scales by seconds, minutes, or hours.
// Fractions are allowed everywhere ("0.5", "1.5h"), surrounding whitespace and
// unit case are ignored, and sign is preserved so callers can express
// zero-or-negative intervals.
package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit multipliers in seconds for the single-letter suffixes.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// ParseError describes an input that does not match the duration grammar.
type ParseError struct {
	Input string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid duration: %q", e.Input)
}

// Parse converts a configuration string to a time.Duration.
//
// "30" and "30s" are thirty seconds, "90m" is ninety minutes, "1.5h" is
// ninety minutes. Anything else returns a *ParseError naming the input.
func Parse(s string) (time.Duration, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	// Bare number of seconds.
	if value, err := strconv.ParseFloat(normalized, 64); err == nil {
		return fromSeconds(value), nil
	}

	if len(normalized) >= 2 {
		multiplier := 0.0
		switch normalized[len(normalized)-1] {
		case 's':
			multiplier = 1
		case 'm':
			multiplier = secondsPerMinute
		case 'h':
			multiplier = secondsPerHour
		}
		if multiplier > 0 {
			numeric := strings.TrimSpace(normalized[:len(normalized)-1])
			if value, err := strconv.ParseFloat(numeric, 64); err == nil {
				return fromSeconds(value * multiplier), nil
			}
		}
	}

	return 0, &ParseError{Input: s}
}

func fromSeconds(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
