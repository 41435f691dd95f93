package ledger

import "time"

// ParseDate parses a yyyy-mm-dd date string. The second return is false for
// empty or malformed input; callers treat such dates as indeterminate (a
// tenant with a bad lease date is never classified from it) rather than
// erroring, since date validation belongs to the forms that accept input.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
