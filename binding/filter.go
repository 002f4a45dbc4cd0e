package binding

import (
	"errors"
	"fmt"
	"strings"
)

// FilterOperator is a subscription filter comparison. The values match the
// Operator attribute of binding files.
type FilterOperator int

const (
	OperatorEquals FilterOperator = iota
	OperatorLessThan
	OperatorLessThanOrEqual
	OperatorGreaterThan
	OperatorGreaterThanOrEqual
	OperatorNotEqual
	OperatorExists
)

func (o FilterOperator) String() string {
	switch o {
	case OperatorEquals:
		return "=="
	case OperatorLessThan:
		return "<"
	case OperatorLessThanOrEqual:
		return "<="
	case OperatorGreaterThan:
		return ">"
	case OperatorGreaterThanOrEqual:
		return ">="
	case OperatorNotEqual:
		return "!="
	case OperatorExists:
		return "exists"
	default:
		return fmt.Sprintf("FilterOperator(%d)", int(o))
	}
}

// FilterStatement compares a context property with a value. When Ref is set
// the value is the resolved name of Ref, read at serialization time.
type FilterStatement struct {
	Property string
	Operator FilterOperator
	Value    string
	Ref      Node
}

// Equals returns a statement matching property == value.
func Equals(property, value string) FilterStatement {
	return FilterStatement{Property: property, Operator: OperatorEquals, Value: value}
}

// NotEqual returns a statement matching property != value.
func NotEqual(property, value string) FilterStatement {
	return FilterStatement{Property: property, Operator: OperatorNotEqual, Value: value}
}

// Exists returns a statement matching messages promoting property.
func Exists(property string) FilterStatement {
	return FilterStatement{Property: property, Operator: OperatorExists}
}

// NameEquals returns a statement matching property == the resolved name of node.
func NameEquals(property string, node Node) FilterStatement {
	return FilterStatement{Property: property, Operator: OperatorEquals, Ref: node}
}

// ReceivePortNameIs subscribes to messages received through port.
func ReceivePortNameIs(port *ReceivePort) FilterStatement {
	return NameEquals("BTS.ReceivePortName", port)
}

// MessageTypeIs subscribes to messages of the given message type.
func MessageTypeIs(messageType string) FilterStatement {
	return Equals("BTS.MessageType", messageType)
}

// ResolveValue returns the literal value or the resolved name of Ref.
func (s FilterStatement) ResolveValue() (string, error) {
	if s.Ref != nil {
		return s.Ref.ResolveName()
	}

	return s.Value, nil
}

func (s FilterStatement) validate() error {
	if !strings.Contains(s.Property, ".") {
		return fmt.Errorf("filter property %q is not namespace qualified", s.Property)
	}

	if s.Operator < OperatorEquals || s.Operator > OperatorExists {
		return fmt.Errorf("filter operator %s is unknown", s.Operator)
	}

	if s.Operator == OperatorExists && (s.Value != "" || s.Ref != nil) {
		return fmt.Errorf("filter on %q with exists operator must not have a value", s.Property)
	}

	return nil
}

// FilterGroup is a conjunction of statements.
type FilterGroup []FilterStatement

// Filter is a disjunction of groups.
type Filter struct {
	Groups []FilterGroup
}

// Where returns a filter made of one group of statements.
func Where(statements ...FilterStatement) *Filter {
	return &Filter{Groups: []FilterGroup{statements}}
}

// Or appends a group of statements and returns f.
func (f *Filter) Or(statements ...FilterStatement) *Filter {
	f.Groups = append(f.Groups, statements)
	return f
}

func (f *Filter) validate() error {
	if len(f.Groups) == 0 {
		return errors.New("filter has no group")
	}

	for i, g := range f.Groups {
		if len(g) == 0 {
			return fmt.Errorf("filter group %d is empty", i)
		}

		for _, s := range g {
			if err := s.validate(); err != nil {
				return err
			}
		}
	}

	return nil
}
