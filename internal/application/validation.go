package application

import (
	"fmt"
	"strings"
	"unicode"

	"didact/internal/domain"
)

// ValidateRequired checks that a field is non-empty after trimming whitespace
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateLink checks that a string is a Didact link without parsing its fields
func ValidateLink(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if !domain.IsLink(strings.TrimSpace(value)) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s or %s link, got: %s", domain.LinkPrefix, domain.VSCodeLinkPrefix, value),
		}
	}
	return nil
}

// ValidateDocumentName checks that a file name selects a tutorial format
func ValidateDocumentName(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if domain.FormatForPath(value) == domain.FormatUnknown {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unsupported document type: %s (expected .md or .adoc)", value),
		}
	}
	return nil
}

// formatFieldName splits a camelCase field name into words for messages.
// Acronyms keep their case: "sourceURI" -> "source URI", "fileName" -> "file name".
func formatFieldName(fieldName string) string {
	var words []string
	start := 0
	for i := 1; i < len(fieldName); i++ {
		if unicode.IsUpper(rune(fieldName[i])) && unicode.IsLower(rune(fieldName[i-1])) {
			words = append(words, fieldName[start:i])
			start = i
		}
	}
	words = append(words, fieldName[start:])

	for i, w := range words {
		if strings.ToUpper(w) != w {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}
