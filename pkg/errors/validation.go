package errors

import (
	"strings"
	"unicode"
)

// maxFieldNameLength bounds column names accepted from config files.
const maxFieldNameLength = 256

// ValidateFieldName validates a physical column name read from user
// configuration. Empty names are allowed and mean "unbound".
//
// Rejected names:
//   - longer than 256 bytes
//   - containing control characters or null bytes
//   - consisting only of whitespace
func ValidateFieldName(role, name string) error {
	if name == "" {
		return nil
	}

	if len(name) > maxFieldNameLength {
		return New(ErrCodeConfiguration, "%s: field name too long (max %d characters)", role, maxFieldNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeConfiguration, "%s: field name contains invalid control characters", role)
		}
	}

	if strings.TrimSpace(name) == "" {
		return New(ErrCodeConfiguration, "%s: field name cannot be blank", role)
	}

	return nil
}
