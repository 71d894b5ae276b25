package validation

import (
	"fmt"
	"strings"
	"time"
)

// hexDigits reports whether s is entirely hexadecimal characters.
func hexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ValidateHabitName checks that a habit name is non-empty after trimming.
func ValidateHabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	return nil
}

// ValidateColor checks that a color token is a #RRGGBB hex string.
func ValidateColor(color string) error {
	if len(color) != 7 || color[0] != '#' || !hexDigits(color[1:]) {
		return fmt.Errorf("invalid color %q (expected #RRGGBB)", color)
	}
	return nil
}

// ValidateLogTime rejects timestamps later than now. Backdated logs are
// allowed; future-dated ones are not.
func ValidateLogTime(ts int64, now time.Time) error {
	if ts > now.UnixMilli() {
		return fmt.Errorf("log time cannot be in the future")
	}
	return nil
}

// ParseLogTime parses a user-supplied log time. Accepts RFC3339, a local
// date-time without zone, or a bare date (logged at local midnight).
func ParseLogTime(s string) (int64, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		var t time.Time
		var err error
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q (expected RFC3339, YYYY-MM-DD HH:MM, or YYYY-MM-DD)", s)
}
