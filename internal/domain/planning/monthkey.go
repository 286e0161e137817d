package planning

import (
	"fmt"
	"regexp"
	"time"
)

// MonthKey is a YYYY-MM month identifier. Zero-padded months make
// lexicographic comparison equal to chronological comparison, which is
// what template window checks and plan ordering rely on.
type MonthKey string

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func (k MonthKey) Valid() bool {
	return monthKeyPattern.MatchString(string(k))
}

func (k MonthKey) String() string {
	return string(k)
}

// Before reports whether k is strictly earlier than other.
func (k MonthKey) Before(other MonthKey) bool {
	return string(k) < string(other)
}

func (k MonthKey) After(other MonthKey) bool {
	return string(k) > string(other)
}

// MonthKeyOf returns the key for the month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

// LastN returns the n keys ending at k, oldest first. Used by the
// trailing-summary report to zero-fill months without a plan.
func (k MonthKey) LastN(n int) []MonthKey {
	t, err := time.Parse("2006-01", string(k))
	if err != nil {
		return nil
	}
	keys := make([]MonthKey, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, MonthKeyOf(t.AddDate(0, -i, 0)))
	}
	return keys
}

func ParseMonthKey(s string) (MonthKey, error) {
	k := MonthKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonthKey, s)
	}
	return k, nil
}
