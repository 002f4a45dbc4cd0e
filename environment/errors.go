package environment

import "fmt"

// NotSupportedError reports a setting that has no value for the target
// environment. It is a configuration authoring error and is never defaulted.
type NotSupportedError struct {
	// Member is the name of the setting, usually captured from the call site.
	Member string
	// Environment is the environment the value was requested for.
	Environment Environment
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("'%s' does not have a defined value for '%s' environment.", e.Member, e.Environment)
}
