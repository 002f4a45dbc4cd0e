package binding

import (
	"errors"
	"fmt"
)

var (
	// ErrReferenceCycle is returned when applications reference each other in a cycle.
	ErrReferenceCycle = errors.New("application reference cycle")
	// ErrUnknownApplication is returned when a registry lookup fails.
	ErrUnknownApplication = errors.New("unknown application")
	// ErrUnknownOverrides is returned when an overrides registry lookup fails.
	ErrUnknownOverrides = errors.New("unknown overrides")
)

// BindingError reports an inconsistency of the binding graph detected by
// validation. It aborts the traversal that raised it.
type BindingError struct {
	// Kind of the offending node.
	Kind NodeKind
	// Name of the offending node, when it could be resolved.
	Name string
	// Reason describes the inconsistency.
	Reason string
}

func (e *BindingError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s binding: %s", e.Kind, e.Reason)
	}

	return fmt.Sprintf("%s '%s' binding: %s", e.Kind, e.Name, e.Reason)
}

func bindingErrorf(kind NodeKind, name, format string, args ...any) *BindingError {
	return &BindingError{Kind: kind, Name: name, Reason: fmt.Sprintf(format, args...)}
}

// NamingConventionError wraps any failure raised while a naming convention
// computes a name.
type NamingConventionError struct {
	// Kind of the node whose name was being computed.
	Kind NodeKind
	// Convention is the Go type name of the failing convention.
	Convention string
	// Cause is the original failure.
	Cause error
}

func (e *NamingConventionError) Error() string {
	return fmt.Sprintf("naming convention %s failed to compute %s name: %v", e.Convention, e.Kind, e.Cause)
}

func (e *NamingConventionError) Unwrap() error {
	return e.Cause
}

// AmbiguousOverrideError reports a platform overrides type implementing both
// host provisioning interfaces.
type AmbiguousOverrideError struct {
	// Type is the Go type name of the overrides object.
	Type string
}

func (e *AmbiguousOverrideError) Error() string {
	return fmt.Sprintf(
		"platform overrides type '%s' must implement either '%s' or '%s' but not both",
		e.Type, hostNamesProviderName, hostPolicyProviderName,
	)
}
