package models

import (
	"errors"
	"fmt"
)

// ErrUnknownCoverageProvider is returned for coverage providers vitest does not ship
var ErrUnknownCoverageProvider = errors.New("unknown coverage provider")

// CoverageProvider selects the vitest coverage engine
type CoverageProvider string

const (
	CoverageV8       CoverageProvider = "v8"
	CoverageIstanbul CoverageProvider = "istanbul"
)

// IsValid checks if the coverage provider is valid
func (c CoverageProvider) IsValid() bool {
	switch c {
	case CoverageV8, CoverageIstanbul:
		return true
	default:
		return false
	}
}

// String returns the string representation of CoverageProvider
func (c CoverageProvider) String() string {
	return string(c)
}

// ParseCoverageProvider parses a string into a CoverageProvider.
// The empty string selects the v8 provider.
func ParseCoverageProvider(s string) (CoverageProvider, error) {
	if s == "" {
		return CoverageV8, nil
	}
	cp := CoverageProvider(s)
	if !cp.IsValid() {
		return "", fmt.Errorf("%w: %s (must be v8 or istanbul)", ErrUnknownCoverageProvider, s)
	}
	return cp, nil
}
