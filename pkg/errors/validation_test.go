package errors

import (
	"strings"
	"testing"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "edges", false},
		{"valid mixed case", "SortedList", false},
		{"valid with dash", "linked-list", false},
		{"valid with dot", "list.next", false},
		{"valid unicode", "größe", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"tab", "foo\tbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeMalformedInput) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeMalformedInput)
			}
		})
	}
}

func TestValidateAtomID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid counter id", "Node_0", false},
		{"valid builtin id", "int_42", false},
		{"valid plain", "alpha", false},

		{"empty", "", true},
		{"interior space", "Node 0", true},
		{"leading space", " Node_0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAtomID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAtomID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
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
		{"valid relative", "out/graph.svg", false},
		{"valid absolute", "/tmp/graph.svg", false},
		{"valid with dots", "./graph.dot", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a/", 300), true},
		{"null byte", "out\x00.svg", true},
		{"control char", "out\x01.svg", true},
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
