// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by command.
const (
	// Embedding
	OpHide  Op = "hide secret"
	OpMerge Op = "merge images"

	// Extraction
	OpReveal  Op = "reveal secret"
	OpUnmerge Op = "unmerge image"

	// Planning
	OpSelect   Op = "select encoding method"
	OpResize   Op = "resize image"
	OpCapacity Op = "compute capacity"

	// File operations
	OpImageLoad Op = "load image"
	OpImageSave Op = "save image"
	OpFileLoad  Op = "load file"

	// History
	OpHistoryOpen Op = "open history"
	OpHistoryList Op = "list history"

	// Initialization
	OpConfigLoad Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
