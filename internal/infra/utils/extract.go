package utils

import (
	"fmt"

	"github.com/thoas/go-funk"
)

// ExtractStringValue uses go-funk to read a dotted property path from a struct or map.
func ExtractStringValue(msg any, propertyName string) string {
	if propertyName == "" {
		return ""
	}

	value := funk.Get(msg, propertyName)
	if value == nil {
		return ""
	}
	if strVal, ok := value.(string); ok {
		return strVal
	}
	if stringer, ok := value.(fmt.Stringer); ok {
		return stringer.String()
	}

	return fmt.Sprintf("%v", value)
}
