package environment

import (
	"runtime"
	"strings"
)

// Value holds one environment-dependent setting while it is being resolved.
//
// A Value is built fresh for every read and is never stored. Each For* call
// evaluates its predicate against the environment captured at construction
// and, on a match, overwrites the held value.
type Value[T any] struct {
	env    Environment
	member string
	value  T
	has    bool
}

// ValueFor starts the resolution of a setting for env. The setting is named
// after the calling function; use Named to override it.
func ValueFor[T any](env Environment) *Value[T] {
	return &Value[T]{env: env, member: callerName(2)}
}

// Named overrides the member name reported when no value applies.
func (v *Value[T]) Named(member string) *Value[T] {
	v.member = member
	return v
}

// For sets value when predicate holds for the captured environment.
func (v *Value[T]) For(predicate func(Environment) bool, value T) *Value[T] {
	if predicate(v.env) {
		v.value = value
		v.has = true
	}

	return v
}

// ForEnvironment sets value when the captured environment is exactly env.
func (v *Value[T]) ForEnvironment(env Environment, value T) *Value[T] {
	return v.For(func(e Environment) bool { return e == env }, value)
}

func (v *Value[T]) ForDevelopment(value T) *Value[T] {
	return v.For(Environment.IsDevelopment, value)
}

func (v *Value[T]) ForBuild(value T) *Value[T] {
	return v.For(Environment.IsBuild, value)
}

func (v *Value[T]) ForDevelopmentOrBuild(value T) *Value[T] {
	return v.For(Environment.IsDevelopmentOrBuild, value)
}

func (v *Value[T]) ForIntegration(value T) *Value[T] {
	return v.For(Environment.IsIntegration, value)
}

func (v *Value[T]) ForIntegrationUpwards(value T) *Value[T] {
	return v.For(Environment.IsIntegrationUpwards, value)
}

func (v *Value[T]) ForAcceptance(value T) *Value[T] {
	return v.For(Environment.IsAcceptance, value)
}

func (v *Value[T]) ForAcceptanceUpwards(value T) *Value[T] {
	return v.For(Environment.IsAcceptanceUpwards, value)
}

func (v *Value[T]) ForPreProduction(value T) *Value[T] {
	return v.For(Environment.IsPreProduction, value)
}

func (v *Value[T]) ForPreProductionUpwards(value T) *Value[T] {
	return v.For(Environment.IsPreProductionUpwards, value)
}

func (v *Value[T]) ForProduction(value T) *Value[T] {
	return v.For(Environment.IsProduction, value)
}

// HasValue reports whether any predicate matched.
func (v *Value[T]) HasValue() bool {
	return v.has
}

// Value returns the resolved value, or a *NotSupportedError if no predicate
// matched the environment.
func (v *Value[T]) Value() (T, error) {
	if !v.has {
		var zero T
		return zero, &NotSupportedError{Member: v.member, Environment: v.env}
	}

	return v.value, nil
}

// MustValue is like Value but panics when no value applies.
func (v *Value[T]) MustValue() T {
	value, err := v.Value()
	if err != nil {
		panic(err)
	}

	return value
}

// callerName returns the unqualified name of the function skip frames up the
// stack, ignoring closure suffixes such as "func1".
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "<unknown>"
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "<unknown>"
	}

	return memberName(fn.Name())
}

// memberName extracts the member from a fully qualified function name like
// "example.com/app/settings.(*Platform).ReceiveHost.func1".
func memberName(qualified string) string {
	name := qualified
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	parts := strings.Split(name, ".")
	for i := len(parts) - 1; i > 0; i-- {
		p := parts[i]
		if isClosureSegment(p) {
			continue
		}

		return strings.Trim(p, "()*")
	}

	return name
}

// isClosureSegment reports whether s is a compiler generated segment:
// "func1", "gowrap2" or a bare counter such as "1".
func isClosureSegment(s string) bool {
	for _, prefix := range []string{"func", "gowrap"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok && rest != "" {
			s = rest
			break
		}
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
