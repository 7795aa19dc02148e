// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Startup
	OpConfigLoad  Op = "load config"
	OpLibraryLoad Op = "load library"

	// Actions on catalog items
	OpLinkCopy  Op = "copy link"
	OpLinkOpen  Op = "open link"
	OpActionRun Op = "run action"

	// Commands forwarded to the player backend
	OpCommandRun Op = "run command"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// Wrap returns err with the Format message, keeping err in the chain.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("Failed to %s: %w", op, err)
}

// FormatWith creates an error message naming the item the operation was on.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
