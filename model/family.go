// SPDX-License-Identifier: MIT
package model

import (
	"fmt"
	"strings"
)

// Family selects the observation density for a whole dataset.
type Family int

const (
	// Lognormal: log(y) ~ N(mu, sigma).
	Lognormal Family = 1
	// Gamma: shape 1/sigma², mean exp(mu).
	Gamma Family = 2
	// SkewNormal: (y - mu)/sigma ~ SN(omega).
	SkewNormal Family = 3
)

var familyNames = map[Family]string{
	Lognormal:  "lognormal",
	Gamma:      "gamma",
	SkewNormal: "skewnormal",
}

// String implements fmt.Stringer.
func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}

	return fmt.Sprintf("Family(%d)", int(f))
}

// Valid reports whether f is one of the three supported families.
func (f Family) Valid() bool {
	_, ok := familyNames[f]

	return ok
}

// ParseFamily maps a numeric mode selector to a Family.
func ParseFamily(mode int) (Family, error) {
	f := Family(mode)
	if !f.Valid() {
		return 0, fmt.Errorf("ParseFamily(%d): %w", mode, ErrUnknownFamily)
	}

	return f, nil
}

// ParseFamilyName accepts either a family name ("lognormal", "gamma",
// "skewnormal"/"skew-normal") or the numeric selector as text.
func ParseFamilyName(s string) (Family, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	var (
		f    Family
		name string
	)
	for f, name = range familyNames {
		if key == name || key == fmt.Sprint(int(f)) {
			return f, nil
		}
	}

	return 0, fmt.Errorf("ParseFamilyName(%q): %w", s, ErrUnknownFamily)
}
