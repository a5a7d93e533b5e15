// Package validation holds the pure field and date predicates shared by the
// flight and booking domains. The functions have no side effects and no
// dependencies, so they can back both validator tags and service-level checks.
package validation

import (
	"regexp"
	"time"
)

var (
	alphaOnly     = regexp.MustCompile(`^[a-zA-Z]*$`)
	alphanumSpace = regexp.MustCompile(`^[0-9a-zA-Z ]*$`)
)

// IsAlphabetic reports whether s consists solely of ASCII letters. The empty
// string satisfies the pattern; field presence is enforced separately by the
// required tag.
func IsAlphabetic(s string) bool {
	return alphaOnly.MatchString(s)
}

// IsAlphanumeric reports whether s consists solely of ASCII letters, digits
// and spaces. The empty string satisfies the pattern.
func IsAlphanumeric(s string) bool {
	return alphanumSpace.MatchString(s)
}

// truncateToDay drops the time-of-day component so comparisons work on
// calendar days only.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPastDate reports whether date falls strictly before today. A date equal to
// today is not in the past, so same-day departures stay valid.
func IsPastDate(date, today time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(today))
}

// IsArrivalBeforeDeparture reports whether arrival falls strictly before
// departure. Equal dates are allowed (same-day travel).
func IsArrivalBeforeDeparture(arrival, departure time.Time) bool {
	return truncateToDay(arrival).Before(truncateToDay(departure))
}
