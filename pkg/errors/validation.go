package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// latexPackageRegex matches package names accepted by \usepackage.
var latexPackageRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// ValidatePackageName validates a LaTeX package name for \usepackage.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - Letters, digits and dashes only, starting with a letter
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidPackage, "package name too long (max 64 characters)")
	}
	if !latexPackageRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid package name: %q", name)
	}
	return nil
}

// ValidateOutputPath validates a file path the sink is asked to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
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

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory: %q", path)
	}

	return nil
}

// documentIDRegex matches identifiers issued by the document store (UUIDs).
var documentIDRegex = regexp.MustCompile(`^[0-9a-fA-F-]{1,64}$`)

// ValidateDocumentID validates a stored document identifier.
func ValidateDocumentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "document id cannot be empty")
	}
	if !documentIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid document id: %q", id)
	}
	return nil
}
