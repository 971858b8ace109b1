// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is an error that tells the operator what went wrong with
	// which file and what to do about it.
	//
	// Use the ErrorContext builder for convenient construction:
	//
	//	err := issue.NewErrorContext().
	//		WithSummary("Could not find `lakefile.toml`").
	//		WithResource("lakefile.toml").
	//		WithHint("run `lake update`").
	//		Wrap(originalErr).
	//		BuildError()
	ActionableError struct {
		// Summary is the one-line description of the failure.
		Summary string

		// Resource identifies the file or path involved (optional).
		Resource string

		// Hints tell the operator how to fix the issue (optional).
		Hints []string

		// Cause is the nested error that triggered this one (optional).
		Cause error
	}

	// ErrorContext is a builder for constructing ActionableError instances.
	ErrorContext struct {
		summary  string
		resource string
		hints    []string
		cause    error
	}
)

// NewErrorContext creates a new ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error renders the summary, the nested error and every hint, one per line:
//
//	Could not find `lakefile.toml`.
//	Note: nested error: open lakefile.toml: no such file or directory.
//	Hint: make sure ...
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString(sentence(e.Summary))

	if e.Cause != nil {
		msg.WriteString("\nNote: nested error: ")
		msg.WriteString(sentence(e.Cause.Error()))
	}

	for _, hint := range e.Hints {
		msg.WriteString("\nHint: ")
		msg.WriteString(sentence(hint))
	}

	return msg.String()
}

// Unwrap returns the underlying cause error for use with errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the error message, adding the full error chain when verbose is set.
func (e *ActionableError) Format(verbose bool) string {
	msg := e.Error()
	if !verbose {
		return msg
	}

	var chain strings.Builder
	chain.WriteString(msg)
	if e.Resource != "" {
		chain.WriteString("\n\nResource: ")
		chain.WriteString(e.Resource)
	}
	if e.Cause == nil {
		return chain.String()
	}
	chain.WriteString("\n\nError chain:")
	depth := 1
	for err := e.Cause; err != nil; err = errors.Unwrap(err) {
		fmt.Fprintf(&chain, "\n  %d. %s", depth, err.Error())
		depth++
	}
	return chain.String()
}

// WithSummary sets the one-line failure description.
func (c *ErrorContext) WithSummary(summary string) *ErrorContext {
	c.summary = summary
	return c
}

// WithResource sets the file or path involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithHint adds a remediation hint. Can be called multiple times.
func (c *ErrorContext) WithHint(hint string) *ErrorContext {
	c.hints = append(c.hints, hint)
	return c
}

// Wrap sets the nested cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build creates an ActionableError from the context.
// Returns nil if no summary is set.
func (c *ErrorContext) Build() *ActionableError {
	if c.summary == "" {
		return nil
	}

	return &ActionableError{
		Summary:  c.summary,
		Resource: c.resource,
		Hints:    c.hints,
		Cause:    c.cause,
	}
}

// BuildError is Build returning the error interface, so a missing summary
// yields a true nil error rather than a typed nil pointer.
func (c *ErrorContext) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
