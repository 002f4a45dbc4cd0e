package binding

import (
	"fmt"
	"reflect"

	"binding-generator/environment"
)

// stubAdapter is a minimal adapter for graph tests.
type stubAdapter struct {
	name         string
	capabilities Capabilities
	invalid      error
	overrides    []Override
}

func receiveAdapter() *stubAdapter {
	return &stubAdapter{name: "STUB", capabilities: CapabilitySupportsReceive | CapabilitySupportsSend}
}

func isolatedAdapter() *stubAdapter {
	return &stubAdapter{name: "ISOLATED", capabilities: CapabilitySupportsReceive | CapabilityReceiveIsolated}
}

func (a *stubAdapter) ProtocolType() ProtocolType {
	return ProtocolType{Name: a.name, Capabilities: a.capabilities}
}

func (a *stubAdapter) Address(environment.Deployment) (string, error) {
	return "stub://" + a.name, nil
}

func (a *stubAdapter) TransportTypeData(environment.Deployment) (string, error) {
	return "<CustomProps />", nil
}

func (a *stubAdapter) Validate() error {
	return a.invalid
}

func (a *stubAdapter) ApplyEnvironmentOverrides(d environment.Deployment) error {
	for _, o := range a.overrides {
		if err := o(d); err != nil {
			return err
		}
	}

	return nil
}

// countingConvention returns fixed names and counts its invocations.
type countingConvention struct {
	prefix string
	calls  int
	err    error
	panics bool
}

func (c *countingConvention) compute(kind string) (string, error) {
	c.calls++

	if c.panics {
		panic("convention exploded")
	}

	if c.err != nil {
		return "", c.err
	}

	return c.prefix + "." + kind, nil
}

func (c *countingConvention) ComputeApplicationName(*Application) (string, error) {
	return c.compute("App")
}

func (c *countingConvention) ComputeReceivePortName(*ReceivePort) (string, error) {
	return c.compute("RP")
}

func (c *countingConvention) ComputeReceiveLocationName(*ReceiveLocation) (string, error) {
	return c.compute("RL")
}

func (c *countingConvention) ComputeSendPortName(*SendPort) (string, error) {
	return c.compute("SP")
}

func (c *countingConvention) ComputeAdapterName(a Adapter) (string, error) {
	return a.ProtocolType().Name, nil
}

func (c *countingConvention) ComputeAggregateName(t reflect.Type) (string, error) {
	return t.Name(), nil
}

// recorder logs every callback it receives.
type recorder struct {
	calls []string
}

func (r *recorder) record(kind string, n Node) error {
	name, err := n.ResolveName()
	if err != nil {
		return err
	}

	r.calls = append(r.calls, fmt.Sprintf("%s %s", kind, name))

	return nil
}

func (r *recorder) VisitReferencedApplication(app *Application) error { return r.record("ref", app) }
func (r *recorder) VisitApplication(app *Application) error           { return r.record("app", app) }
func (r *recorder) VisitReceivePort(p *ReceivePort) error             { return r.record("rp", p) }
func (r *recorder) VisitReceiveLocation(l *ReceiveLocation) error     { return r.record("rl", l) }
func (r *recorder) VisitSendPort(p *SendPort) error                   { return r.record("sp", p) }
func (r *recorder) VisitOrchestration(o *Orchestration) error         { return r.record("orch", o) }

// newGraph returns a small valid application.
func newGraph() *Application {
	shared := NewApplication(Literal("Shared"))

	rp := NewReceivePort(Literal("App.RP1")).
		AddReceiveLocations(
			NewReceiveLocation(Literal("App.RL1.A"), receiveAdapter()),
			NewReceiveLocation(Literal("App.RL1.B"), receiveAdapter()))

	sp := NewSendPort(Literal("App.SP1"), receiveAdapter())
	sp.Filter = Where(ReceivePortNameIs(rp))

	orchestration := NewOrchestration("App.Process", "App, Version=1.0.0.0").
		BindReceive("In", rp).
		BindSend("Out", sp)

	return NewApplication(Literal("App")).
		Reference(shared).
		AddReceivePorts(rp).
		AddSendPorts(sp).
		AddOrchestrations(orchestration)
}

var dev = environment.For(environment.Development)
