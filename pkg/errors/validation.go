package errors

import (
	"strings"
	"unicode"
)

// maxTermLength bounds search terms and coordinates accepted from callers.
const maxTermLength = 256

// ValidateSearchTerm validates a free-text or field-scoped search term.
// The term is expected to be trimmed already.
//
// Rules:
//   - No empty terms
//   - No control characters
//   - Maximum length of 256 characters
func ValidateSearchTerm(term string) error {
	if term == "" {
		return New(ErrCodeInvalidInput, "search term cannot be empty")
	}
	return validateText("search term", term)
}

// ValidateCoordinate validates a Maven groupId and artifactId pair.
// Both parts are required and may not contain ':' or whitespace.
func ValidateCoordinate(groupID, artifactID string) error {
	if groupID == "" || artifactID == "" {
		return New(ErrCodeInvalidInput, "groupId and artifactId are required")
	}
	for _, part := range []struct{ name, value string }{
		{"groupId", groupID},
		{"artifactId", artifactID},
	} {
		if err := validateText(part.name, part.value); err != nil {
			return err
		}
		if strings.ContainsAny(part.value, ": \t") {
			return New(ErrCodeInvalidInput, "%s contains invalid characters: %q", part.name, part.value)
		}
	}
	return nil
}

func validateText(what, s string) error {
	if len(s) > maxTermLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", what, maxTermLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", what)
		}
	}
	return nil
}
