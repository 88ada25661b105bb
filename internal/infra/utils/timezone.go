package utils

import (
	"fmt"
	"time"
)

// ValidateTimezone validates that the given timezone string is a valid IANA timezone name
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("timezone cannot be empty")
	}

	_, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}

	return nil
}

// LoadLocationOrUTC falls back to UTC when the timezone is empty or unknown.
func LoadLocationOrUTC(timezone string) *time.Location {
	if err := ValidateTimezone(timezone); err != nil {
		return time.UTC
	}
	location, _ := time.LoadLocation(timezone)
	return location
}
