package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds all diagnostic information from a projection run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Chunk identifies which chunk this relates to (if any).
	Chunk string
	// Column identifies which column title this relates to (if any).
	Column string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, chunk, column string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Chunk: chunk, Column: column})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, chunk, column string, suggestions ...string) {
	d.Add(Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Chunk:       chunk,
		Column:      column,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, chunk, column string, suggestions ...string) {
	d.Add(Diagnostic{
		Severity:    SeverityInfo,
		Code:        code,
		Message:     message,
		Chunk:       chunk,
		Column:      column,
		Suggestions: suggestions,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Chunk != "" {
		prefix = append(prefix, "["+d.Chunk+"]")
	}

	if d.Column != "" {
		prefix = append(prefix, fmt.Sprintf("%q", d.Column))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + quoteJoin(d.Suggestions) + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}

	return strings.Join(quoted, " or ")
}
