package domain

import "strings"

type Address struct {
	Purok        string
	Street       string
	Barangay     string
	Municipality string
	Province     string
	Region       string
	ZipCode      string
}

func (a Address) Line() string {
	parts := make([]string, 0, 7)
	for _, part := range []string{a.Purok, a.Street, a.Barangay, a.Municipality, a.Province, a.Region, a.ZipCode} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}

func (a Address) IsZero() bool {
	return a == Address{}
}
