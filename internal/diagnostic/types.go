package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"binding-generator/binding"
	"binding-generator/environment"
	"binding-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeValidationFailed      = "validation_failed"
	CodeNamingFailed          = "naming_failed"
	CodeValueMissing          = "value_missing"
	CodeHostOverrideAmbiguous = "host_override_ambiguous"
	CodeGenerationFailed      = "generation_failed"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Application is the registry key of the application concerned (if any).
	Application string
	// Environment is the deployment environment concerned (if any).
	Environment environment.Environment
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, application string, env environment.Environment) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Application: application,
		Environment: env,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, application string, env environment.Environment) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Application: application,
		Environment: env,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, application string, env environment.Environment) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:    DiagnosticInfo,
		Code:        code,
		Message:     message,
		Application: application,
		Environment: env,
	})
}

// AddFailure adds an error diagnostic for err, coded by Classify.
func (d *Diagnostics) AddFailure(err error, application string, env environment.Environment) {
	d.AddError(Classify(err), err.Error(), application, env)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, warnings and infos, in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Application != "" {
		prefix = append(prefix, "["+d.Application+"]")
	}

	if d.Environment != "" {
		prefix = append(prefix, d.Environment.String())
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Classify returns the diagnostic code matching the kind of err.
func Classify(err error) string {
	var (
		bindingErr   *binding.BindingError
		namingErr    *binding.NamingConventionError
		missingErr   *environment.NotSupportedError
		ambiguousErr *binding.AmbiguousOverrideError
	)

	switch {
	case errors.As(err, &ambiguousErr):
		return CodeHostOverrideAmbiguous
	case errors.As(err, &namingErr):
		return CodeNamingFailed
	case errors.As(err, &missingErr):
		return CodeValueMissing
	case errors.As(err, &bindingErr):
		return CodeValidationFailed
	default:
		return CodeGenerationFailed
	}
}
