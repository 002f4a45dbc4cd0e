package binding

import (
	"errors"

	"binding-generator/environment"
)

// Validator is the visitor checking the consistency of a binding graph. The
// first inconsistency is returned as a *BindingError; naming convention and
// host resolution failures are returned unmodified.
type Validator struct {
	deployment environment.Deployment
}

// NewValidator returns a validator resolving hosts against d.
func NewValidator(d environment.Deployment) *Validator {
	return &Validator{deployment: d}
}

func (v *Validator) VisitReferencedApplication(app *Application) error {
	name, err := app.ResolveName()
	if err != nil {
		return err
	}

	if name == "" {
		return bindingErrorf(KindApplication, "", "referenced application name is not defined")
	}

	return nil
}

func (v *Validator) VisitApplication(app *Application) error {
	name, err := app.ResolveName()
	if err != nil {
		return err
	}

	if name == "" {
		return bindingErrorf(KindApplication, "", "name is not defined")
	}

	if err := uniqueNames(KindReceivePort, app.ReceivePorts); err != nil {
		return err
	}

	if err := uniqueNames(KindSendPort, app.SendPorts); err != nil {
		return err
	}

	var locations []*ReceiveLocation
	for _, rp := range app.ReceivePorts {
		locations = append(locations, rp.ReceiveLocations...)
	}

	return uniqueNames(KindReceiveLocation, locations)
}

func (v *Validator) VisitReceivePort(port *ReceivePort) error {
	name, err := resolveRequiredName(port)
	if err != nil {
		return err
	}

	if len(port.ReceiveLocations) == 0 {
		return bindingErrorf(KindReceivePort, name, "receive locations are not defined")
	}

	if port.TwoWay && port.SendPipeline.IsZero() {
		return bindingErrorf(KindReceivePort, name, "send pipeline is not defined for a two-way port")
	}

	return nil
}

func (v *Validator) VisitReceiveLocation(location *ReceiveLocation) error {
	name, err := resolveRequiredName(location)
	if err != nil {
		return err
	}

	if location.ReceivePipeline.IsZero() {
		return bindingErrorf(KindReceiveLocation, name, "receive pipeline is not defined")
	}

	if location.ReceivePipeline.Kind != ReceivePipeline {
		return bindingErrorf(KindReceiveLocation, name, "%s is not a receive pipeline", location.ReceivePipeline.Name)
	}

	if port := location.ReceivePort(); port != nil && port.TwoWay && location.SendPipeline.IsZero() {
		return bindingErrorf(KindReceiveLocation, name, "send pipeline is not defined for a two-way port")
	}

	t := &location.Transport
	if t.Adapter == nil {
		return bindingErrorf(KindReceiveLocation, name, "transport adapter is not defined")
	}

	if err := t.Adapter.Validate(); err != nil {
		return bindingErrorf(KindReceiveLocation, name, "%s adapter: %v", t.Adapter.ProtocolType().Name, err)
	}

	if !t.Adapter.ProtocolType().Capabilities.Has(CapabilitySupportsReceive) {
		return bindingErrorf(KindReceiveLocation, name, "%s adapter does not support receive", t.Adapter.ProtocolType().Name)
	}

	if err := t.Schedule.validate(); err != nil {
		return bindingErrorf(KindReceiveLocation, name, "%v", err)
	}

	host, err := t.ResolveHost(v.deployment)
	if err != nil {
		return err
	}

	if host == "" {
		return bindingErrorf(KindReceiveLocation, name, "transport host is not defined")
	}

	return nil
}

func (v *Validator) VisitSendPort(port *SendPort) error {
	name, err := resolveRequiredName(port)
	if err != nil {
		return err
	}

	if port.SendPipeline.IsZero() {
		return bindingErrorf(KindSendPort, name, "send pipeline is not defined")
	}

	if port.SendPipeline.Kind != SendPipeline {
		return bindingErrorf(KindSendPort, name, "%s is not a send pipeline", port.SendPipeline.Name)
	}

	if port.TwoWay && port.ReceivePipeline.IsZero() {
		return bindingErrorf(KindSendPort, name, "receive pipeline is not defined for a two-way port")
	}

	if port.Priority < 1 || port.Priority > 10 {
		return bindingErrorf(KindSendPort, name, "priority %d is not between 1 and 10", port.Priority)
	}

	if port.Filter != nil {
		if err := port.Filter.validate(); err != nil {
			return bindingErrorf(KindSendPort, name, "%v", err)
		}
	}

	if err := v.validateTransport(name, "transport", &port.Transport); err != nil {
		return err
	}

	if port.BackupTransport != nil {
		return v.validateTransport(name, "backup transport", port.BackupTransport)
	}

	return nil
}

func (v *Validator) validateTransport(portName, label string, t *SendPortTransport) error {
	if err := t.validate(); err != nil {
		return bindingErrorf(KindSendPort, portName, "%s: %v", label, err)
	}

	host, err := t.ResolveHost(v.deployment)
	if err != nil {
		return err
	}

	if host == "" {
		return bindingErrorf(KindSendPort, portName, "%s host is not defined", label)
	}

	return nil
}

func (v *Validator) VisitOrchestration(orchestration *Orchestration) error {
	if orchestration.Name == "" {
		return bindingErrorf(KindOrchestration, "", "type name is not defined")
	}

	if orchestration.Assembly == "" {
		return bindingErrorf(KindOrchestration, orchestration.Name, "assembly is not defined")
	}

	for _, pb := range orchestration.PortBindings {
		if pb.LogicalPort == "" {
			return bindingErrorf(KindOrchestration, orchestration.Name, "logical port name is not defined")
		}

		if (pb.ReceivePort == nil) == (pb.SendPort == nil) {
			return bindingErrorf(KindOrchestration, orchestration.Name,
				"logical port '%s' must be bound to exactly one receive or send port", pb.LogicalPort)
		}
	}

	host, err := orchestration.ResolveHost(v.deployment)
	if err != nil {
		return err
	}

	if host == "" {
		return bindingErrorf(KindOrchestration, orchestration.Name, "host is not defined")
	}

	return nil
}

func resolveRequiredName(n Node) (string, error) {
	name, err := n.ResolveName()
	if err != nil {
		return "", err
	}

	if name == "" {
		return "", bindingErrorf(n.Kind(), "", "name is not defined")
	}

	return name, nil
}

func uniqueNames[N Node](kind NodeKind, nodes []N) error {
	seen := make(map[string]struct{}, len(nodes))

	for _, n := range nodes {
		name, err := n.ResolveName()
		if err != nil {
			return err
		}

		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			return bindingErrorf(kind, name, "name is declared multiple times")
		}

		seen[name] = struct{}{}
	}

	return nil
}

// IsValidationError reports whether err stems from graph validation.
func IsValidationError(err error) bool {
	var be *BindingError
	return errors.As(err, &be)
}

var _ Visitor = (*Validator)(nil)
