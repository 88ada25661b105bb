package domain

import "time"

// AgeAt returns completed years between birthdate and at. People born on
// February 29 turn a year older on March 1 in non-leap years.
func AgeAt(birthdate, at time.Time) int {
	if birthdate.IsZero() || at.Before(birthdate) {
		return 0
	}

	years := at.Year() - birthdate.Year()
	if at.Month() < birthdate.Month() ||
		(at.Month() == birthdate.Month() && at.Day() < birthdate.Day()) {
		years--
	}

	return max(years, 0)
}

func Age(birthdate time.Time) int {
	return AgeAt(birthdate, time.Now())
}
