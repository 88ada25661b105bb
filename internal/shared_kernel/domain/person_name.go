package domain

import (
	"errors"
	"slices"
	"strings"
)

var ErrInvalidDisplayName = errors.New("display name must be in the form LASTNAME, FIRSTNAME MIDDLENAME")

var _suffixes = []string{"JR", "SR", "II", "III", "IV"}

type PersonName struct {
	LastName   string
	FirstName  string
	MiddleName string
	Suffix     string
}

// ParsePersonName reads names written as "LASTNAME, FIRSTNAME MIDDLENAME".
// With two or more given-name tokens the last one is taken as the middle name.
func ParsePersonName(display string) (PersonName, error) {
	last, given, found := strings.Cut(display, ",")
	if !found {
		return PersonName{}, ErrInvalidDisplayName
	}

	last = normalizeNamePart(last)
	if last == "" {
		return PersonName{}, ErrInvalidDisplayName
	}

	tokens := strings.Fields(strings.ToUpper(given))
	result := PersonName{LastName: last}

	tokens = slices.DeleteFunc(tokens, func(token string) bool {
		if isSuffix(token) && result.Suffix == "" {
			result.Suffix = strings.TrimSuffix(token, ".")
			return true
		}
		return false
	})

	switch len(tokens) {
	case 0:
		return PersonName{}, ErrInvalidDisplayName
	case 1:
		result.FirstName = tokens[0]
	default:
		result.FirstName = strings.Join(tokens[:len(tokens)-1], " ")
		result.MiddleName = tokens[len(tokens)-1]
	}

	return result, nil
}

func (n PersonName) Display() string {
	given := make([]string, 0, 3)
	for _, part := range []string{n.FirstName, n.MiddleName, n.Suffix} {
		if part = normalizeNamePart(part); part != "" {
			given = append(given, part)
		}
	}

	last := normalizeNamePart(n.LastName)
	switch {
	case len(given) == 0:
		return last
	case last == "":
		return strings.Join(given, " ")
	}
	return last + ", " + strings.Join(given, " ")
}

func (n PersonName) IsZero() bool {
	return n.LastName == "" && n.FirstName == ""
}

func normalizeNamePart(value string) string {
	return strings.Join(strings.Fields(strings.ToUpper(value)), " ")
}

func isSuffix(token string) bool {
	return slices.Contains(_suffixes, strings.TrimSuffix(token, "."))
}
