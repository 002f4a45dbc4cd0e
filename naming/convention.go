package naming

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"binding-generator/binding"
	"binding-generator/internal/common"
)

// Separator joins the tokens of a conventional name.
const Separator = "."

var (
	// ErrMissingToken is returned when a token required by a name is empty.
	ErrMissingToken = errors.New("naming token is not defined")
	// ErrInvalidToken is returned when a token contains the separator.
	ErrInvalidToken = errors.New("naming token contains the separator")
)

// Aggregate is implemented by binding types naming the group they belong to.
type Aggregate interface {
	AggregateName() string
}

// Convention computes names from an application, a party and a subject.
// P and S let applications declare their parties and subjects as string
// enums.
type Convention[P, S ~string] struct {
	// Application is the application token. Empty inherits the resolved name
	// of the owning application.
	Application string
	Party       P
	Subject     S
	// MessageFormat optionally suffixes location and send port names, e.g. "XML".
	MessageFormat string
	// Aggregate supplies the subject when Subject is empty.
	Aggregate reflect.Type
}

var _ binding.Convention = (*Convention[string, string])(nil)

func (c *Convention[P, S]) ComputeApplicationName(*binding.Application) (string, error) {
	if err := checkToken("application", c.Application); err != nil {
		return "", err
	}

	return c.Application, nil
}

func (c *Convention[P, S]) ComputeReceivePortName(port *binding.ReceivePort) (string, error) {
	app, err := c.applicationToken(port.Application())
	if err != nil {
		return "", err
	}

	party, subject, err := c.partyAndSubject(nil)
	if err != nil {
		return "", err
	}

	return join(app, "RP"+direction(port.TwoWay), party, subject), nil
}

func (c *Convention[P, S]) ComputeReceiveLocationName(location *binding.ReceiveLocation) (string, error) {
	port := location.ReceivePort()
	if port == nil {
		return "", errors.New("receive location is not attached to a receive port")
	}

	app, err := c.applicationToken(port.Application())
	if err != nil {
		return "", err
	}

	party, subject, err := c.partyAndSubject(port.Name.Convention())
	if err != nil {
		return "", err
	}

	adapter, err := c.ComputeAdapterName(location.Transport.Adapter)
	if err != nil {
		return "", err
	}

	return c.withFormat(join(app, "RL"+direction(port.TwoWay), party, subject, adapter))
}

func (c *Convention[P, S]) ComputeSendPortName(port *binding.SendPort) (string, error) {
	app, err := c.applicationToken(port.Application())
	if err != nil {
		return "", err
	}

	party, subject, err := c.partyAndSubject(nil)
	if err != nil {
		return "", err
	}

	adapter, err := c.ComputeAdapterName(port.Transport.Adapter)
	if err != nil {
		return "", err
	}

	return c.withFormat(join(app, "SP"+direction(port.TwoWay), party, subject, adapter))
}

// ComputeAdapterName returns the protocol name of a.
func (c *Convention[P, S]) ComputeAdapterName(a binding.Adapter) (string, error) {
	if a == nil {
		return "", fmt.Errorf("adapter: %w", ErrMissingToken)
	}

	name := a.ProtocolType().Name
	if err := checkToken("adapter", name); err != nil {
		return "", err
	}

	return name, nil
}

// ComputeAggregateName returns the AggregateName of t when t implements
// Aggregate, or the capitalized name of the package declaring t.
func (c *Convention[P, S]) ComputeAggregateName(t reflect.Type) (string, error) {
	return AggregateName(t)
}

// AggregateName returns the group name of t. See Convention.ComputeAggregateName.
func AggregateName(t reflect.Type) (string, error) {
	if t == nil {
		return "", fmt.Errorf("aggregate: %w", ErrMissingToken)
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if a, ok := reflect.New(t).Interface().(Aggregate); ok {
		return a.AggregateName(), nil
	}

	name := common.PackageToken(t.PkgPath())
	if name == "" {
		return "", fmt.Errorf("aggregate of %s: %w", t, ErrMissingToken)
	}

	return name, nil
}

// applicationToken returns the convention's application, or the resolved
// name of app when the convention leaves it empty.
func (c *Convention[P, S]) applicationToken(app *binding.Application) (string, error) {
	if c.Application != "" {
		return c.Application, checkToken("application", c.Application)
	}

	if app == nil {
		return "", fmt.Errorf("application: %w", ErrMissingToken)
	}

	name, err := app.ResolveName()
	if err != nil {
		return "", err
	}

	return name, checkToken("application", name)
}

// partyAndSubject returns the party and subject tokens, completing empty ones
// from parent when it is a convention of the same shape. The subject falls
// back to the aggregate name.
func (c *Convention[P, S]) partyAndSubject(parent binding.Convention) (string, string, error) {
	party, subject, aggregate := string(c.Party), string(c.Subject), c.Aggregate

	if p, ok := parent.(*Convention[P, S]); ok && p != nil {
		if party == "" {
			party = string(p.Party)
		}

		if subject == "" {
			subject = string(p.Subject)
		}

		if aggregate == nil {
			aggregate = p.Aggregate
		}
	}

	if subject == "" && aggregate != nil {
		name, err := AggregateName(aggregate)
		if err != nil {
			return "", "", err
		}

		subject = name
	}

	if err := checkToken("party", party); err != nil {
		return "", "", err
	}

	if err := checkToken("subject", subject); err != nil {
		return "", "", err
	}

	return party, subject, nil
}

func (c *Convention[P, S]) withFormat(name string) (string, error) {
	if c.MessageFormat == "" {
		return name, nil
	}

	if err := checkToken("message format", c.MessageFormat); err != nil {
		return "", err
	}

	return join(name, c.MessageFormat), nil
}

func checkToken(token, value string) error {
	if value == "" {
		return fmt.Errorf("%s: %w", token, ErrMissingToken)
	}

	if strings.Contains(value, Separator) {
		return fmt.Errorf("%s %q: %w", token, value, ErrInvalidToken)
	}

	return nil
}

func direction(twoWay bool) string {
	if twoWay {
		return "2"
	}

	return "1"
}

func join(tokens ...string) string {
	return strings.Join(tokens, Separator)
}
