package errors

import (
	"strings"
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "amsmath", false},
		{"valid with dash", "tikz-cd", false},
		{"valid with digits", "utf8x", false},

		{"empty", "", true},
		{"too long", "a" + strings.Repeat("b", 70), true},
		{"leading digit", "8bit", true},
		{"brace injection", "amsmath}\\input{x", true},
		{"comma list", "amsmath,amssymb", true},
		{"space", "ams math", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPackage) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPackage)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "out.tex", false},
		{"nested file", "build/report.tex", false},
		{"absolute file", "/tmp/report.tex", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "out\x00.tex", true},
		{"newline", "out\n.tex", true},
		{"directory", "build/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDocumentID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"uuid", "3f1c1f0e-2b7a-4d1e-9a55-0b1f5c9e2d11", false},
		{"empty", "", true},
		{"traversal", "../etc/passwd", true},
		{"spaces", "abc def", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
