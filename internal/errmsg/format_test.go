//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpHide,
			err:      nil,
			expected: "",
		},
		{
			name:     "hide operation",
			op:       OpHide,
			err:      errors.New("payload does not fit in carrier"),
			expected: "Failed to hide secret: payload does not fit in carrier",
		},
		{
			name:     "reveal operation",
			op:       OpReveal,
			err:      errors.New("unsupported method tag"),
			expected: "Failed to reveal secret: unsupported method tag",
		},
		{
			name:     "image save operation",
			op:       OpImageSave,
			err:      errors.New("output format is lossy"),
			expected: "Failed to save image: output format is lossy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImageLoad,
			context:  "base.png",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpImageLoad,
			context:  "",
			err:      errors.New("no such file"),
			expected: "Failed to load image: no such file",
		},
		{
			name:     "context is quoted",
			op:       OpImageLoad,
			context:  "base.png",
			err:      errors.New("no such file"),
			expected: "Failed to load image 'base.png': no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
