package binding

import (
	"fmt"
	"reflect"
)

// Convention computes artifact names from typed metadata instead of literal
// strings. Implementations must be pure: they must not mutate the node they
// are handed.
type Convention interface {
	ComputeApplicationName(app *Application) (string, error)
	ComputeReceivePortName(port *ReceivePort) (string, error)
	ComputeReceiveLocationName(location *ReceiveLocation) (string, error)
	ComputeSendPortName(port *SendPort) (string, error)
	// ComputeAdapterName returns the conventional token for an adapter, used
	// to suffix location and port names.
	ComputeAdapterName(adapter Adapter) (string, error)
	// ComputeAggregateName returns the group name of a binding type.
	ComputeAggregateName(t reflect.Type) (string, error)
}

// Name is either a literal string or a Convention computing the name.
// The zero Name is an empty literal.
type Name struct {
	literal    string
	convention Convention
}

// Literal returns a Name holding s verbatim.
func Literal(s string) Name {
	return Name{literal: s}
}

// Conventional returns a Name computed by c.
func Conventional(c Convention) Name {
	return Name{convention: c}
}

// Convention returns the convention behind n, or nil for a literal name.
func (n Name) Convention() Convention {
	return n.convention
}

// IsConvention reports whether n is computed by a convention.
func (n Name) IsConvention() bool {
	return n.convention != nil
}

// IsZero reports whether n is an empty literal.
func (n Name) IsZero() bool {
	return n.convention == nil && n.literal == ""
}

// String returns the literal, or a placeholder naming the convention type.
// It never runs the convention.
func (n Name) String() string {
	if n.convention != nil {
		return "<" + typeName(n.convention) + ">"
	}

	return n.literal
}

func (n Name) same(other Name) bool {
	if n.literal != other.literal {
		return false
	}

	if n.convention == nil || other.convention == nil {
		return n.convention == other.convention
	}

	t := reflect.TypeOf(n.convention)
	if t != reflect.TypeOf(other.convention) || !t.Comparable() {
		return false
	}

	return n.convention == other.convention
}

// nameMemo memoizes the resolved name of one node. It is keyed by the Name it
// was computed from, so assigning a new Name invalidates it.
type nameMemo struct {
	key   Name
	value string
	valid bool
}

// resolve returns the literal of n verbatim, or runs compute against the
// convention of n once per distinct Name.
func (m *nameMemo) resolve(n Name, kind NodeKind, compute func(Convention) (string, error)) (string, error) {
	if n.convention == nil {
		return n.literal, nil
	}

	if m.valid && m.key.same(n) {
		return m.value, nil
	}

	value, err := computeName(n.convention, kind, compute)
	if err != nil {
		return "", err
	}

	*m = nameMemo{key: n, value: value, valid: true}

	return value, nil
}

func computeName(c Convention, kind NodeKind, compute func(Convention) (string, error)) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &NamingConventionError{Kind: kind, Convention: typeName(c), Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	value, err = compute(c)
	if err != nil {
		return "", &NamingConventionError{Kind: kind, Convention: typeName(c), Cause: err}
	}

	return value, nil
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}

	return reflect.TypeOf(v).String()
}
