package errors

import (
	"strings"
	"unicode"
)

// ValidateIdentifier validates a type or relation name for safety and
// correctness before it enters an instance.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// Anything stricter (naming conventions, reserved words) is left to the
// callers that own the vocabulary.
func ValidateIdentifier(name string) error {
	if name == "" {
		return New(ErrCodeMalformedInput, "name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeMalformedInput, "name too long (max 256 characters)")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeMalformedInput, "name contains invalid control characters")
		}
	}

	return nil
}

// ValidateAtomID validates an atom identifier.
// Atom ids share the identifier rules and additionally reject interior
// whitespace, which would break the whitespace-separated wire forms.
func ValidateAtomID(id string) error {
	if err := ValidateIdentifier(id); err != nil {
		return err
	}

	if strings.ContainsFunc(id, unicode.IsSpace) {
		return New(ErrCodeMalformedInput, "atom id cannot contain whitespace: %q", id)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
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
