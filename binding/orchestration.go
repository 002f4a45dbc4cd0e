package binding

import "binding-generator/environment"

// ServiceState is the runtime state of an orchestration after import.
type ServiceState int

const (
	ServiceUnenlisted ServiceState = 1
	ServiceEnlisted   ServiceState = 2
	ServiceStarted    ServiceState = 3
)

// PortBinding binds a logical orchestration port to exactly one physical port.
type PortBinding struct {
	LogicalPort string
	ReceivePort *ReceivePort
	SendPort    *SendPort
}

// Orchestration is a deployed orchestration and the bindings of its ports.
type Orchestration struct {
	// Name is the orchestration's full type name.
	Name string
	// Assembly is the strong name of the assembly containing the orchestration.
	Assembly string
	// Host selects the processing host. Nil defers to the platform policy.
	Host         HostResolutionPolicy
	State        ServiceState
	PortBindings []PortBinding
	Overrides    []Override

	application *Application
}

// NewOrchestration returns a started orchestration.
func NewOrchestration(name, assembly string) *Orchestration {
	return &Orchestration{Name: name, Assembly: assembly, State: ServiceStarted}
}

func (o *Orchestration) Kind() NodeKind {
	return KindOrchestration
}

// ResolveName returns the orchestration type name.
func (o *Orchestration) ResolveName() (string, error) {
	return o.Name, nil
}

// Application returns the application owning the orchestration, once linked.
func (o *Orchestration) Application() *Application {
	return o.application
}

// BindReceive binds a logical port to a receive port.
func (o *Orchestration) BindReceive(logicalPort string, port *ReceivePort) *Orchestration {
	o.PortBindings = append(o.PortBindings, PortBinding{LogicalPort: logicalPort, ReceivePort: port})
	return o
}

// BindSend binds a logical port to a send port.
func (o *Orchestration) BindSend(logicalPort string, port *SendPort) *Orchestration {
	o.PortBindings = append(o.PortBindings, PortBinding{LogicalPort: logicalPort, SendPort: port})
	return o
}

// OnEnvironment registers an environment override.
func (o *Orchestration) OnEnvironment(ov Override) *Orchestration {
	o.Overrides = append(o.Overrides, ov)
	return o
}

// ResolveHost returns the processing host for d.
func (o *Orchestration) ResolveHost(d environment.Deployment) (string, error) {
	policy, err := policyOrPlatform(o.Host, d)
	if err != nil {
		return "", err
	}

	return policy.ResolveOrchestrationHost(d, o)
}
