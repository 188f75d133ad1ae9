package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxCardNameLength bounds lookup queries. The longest printed card name is
// well under this.
const maxCardNameLength = 200

// ValidateCardName validates a normalized card name before it is sent to the
// lookup service.
//
// Rules:
//   - No control characters
//   - Maximum length of 200 characters
//
// An empty name passes; the lookup service answers it with no match.
func ValidateCardName(name string) error {
	if utf8.RuneCountInString(name) > maxCardNameLength {
		return New(ErrCodeInvalidInput, "card name too long (max %d characters)", maxCardNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "card name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
