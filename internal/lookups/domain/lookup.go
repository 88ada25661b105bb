package domain

import "strings"

type Item struct {
	Code  string `yaml:"code" json:"code"`
	Label string `yaml:"label" json:"label"`
}

// Matches is a case-insensitive substring match on code or label.
func (i Item) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.Label), query) ||
		strings.Contains(strings.ToLower(i.Code), query)
}

type Category struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Items       []Item `yaml:"items" json:"items"`
}

func (c Category) Search(query string) []Item {
	result := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Matches(query) {
			result = append(result, item)
		}
	}
	return result
}

func (c Category) Has(code string) bool {
	for _, item := range c.Items {
		if item.Code == code {
			return true
		}
	}
	return false
}
