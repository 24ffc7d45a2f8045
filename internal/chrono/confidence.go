package chrono

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Confidence -trimprefix=Confidence -output=confidence_string.go

// Confidence is a coarse reliability grade attached to an interpretation.
// Grades are ordered, so they can be compared with < and >.
type Confidence int

const (
	ConfidenceNone Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
)

// scaleConfidence downgrades a grade computed while resolving month and
// day by the confidence already established for the year.
func scaleConfidence(year, local Confidence) Confidence {
	switch year {
	case ConfidenceHigh:
		return local
	case ConfidenceMedium:
		switch local {
		case ConfidenceHigh:
			return ConfidenceMedium
		case ConfidenceMedium:
			return ConfidenceLow
		}
	case ConfidenceLow:
		if local == ConfidenceHigh {
			return ConfidenceLow
		}
	}
	return ConfidenceNone
}

// ParseConfidence parses a grade name such as "medium". Matching is
// case-insensitive.
func ParseConfidence(s string) (Confidence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ConfidenceNone, nil
	case "low":
		return ConfidenceLow, nil
	case "medium":
		return ConfidenceMedium, nil
	case "high":
		return ConfidenceHigh, nil
	}
	return ConfidenceNone, fmt.Errorf("unknown confidence %q (none, low, medium, high)", s)
}

// MarshalText renders the grade in lower case.
func (c Confidence) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

func (c *Confidence) UnmarshalText(text []byte) error {
	parsed, err := ParseConfidence(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
