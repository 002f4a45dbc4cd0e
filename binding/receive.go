package binding

// Authentication is the receive port authentication mode.
type Authentication int

const (
	NoAuthentication            Authentication = 0
	AuthenticationDropOnFailure Authentication = 1
	AuthenticationKeepOnFailure Authentication = 2
)

// ReceivePort groups receive locations sharing the same inbound processing.
type ReceivePort struct {
	Name        Name
	Description string
	// TwoWay makes the port request-response.
	TwoWay           bool
	ReceiveLocations []*ReceiveLocation
	// SendPipeline processes responses of a two-way port.
	SendPipeline       PipelineRef
	Authentication     Authentication
	Tracking           Tracking
	RouteFailedMessage bool
	Overrides          []Override

	application *Application
	name        nameMemo
}

// NewReceivePort returns a one-way receive port.
func NewReceivePort(name Name) *ReceivePort {
	return &ReceivePort{Name: name}
}

// NewTwoWayReceivePort returns a request-response receive port.
func NewTwoWayReceivePort(name Name) *ReceivePort {
	return &ReceivePort{Name: name, TwoWay: true, SendPipeline: PassThruTransmit}
}

func (p *ReceivePort) Kind() NodeKind {
	return KindReceivePort
}

func (p *ReceivePort) ResolveName() (string, error) {
	return p.name.resolve(p.Name, KindReceivePort, func(c Convention) (string, error) {
		return c.ComputeReceivePortName(p)
	})
}

// Application returns the application owning the port, once linked.
func (p *ReceivePort) Application() *Application {
	return p.application
}

// AddReceiveLocations adds receive locations to the port.
func (p *ReceivePort) AddReceiveLocations(locations ...*ReceiveLocation) *ReceivePort {
	p.ReceiveLocations = append(p.ReceiveLocations, locations...)
	p.link()

	return p
}

// OnEnvironment registers an environment override.
func (p *ReceivePort) OnEnvironment(o Override) *ReceivePort {
	p.Overrides = append(p.Overrides, o)
	return p
}

func (p *ReceivePort) link() {
	for _, rl := range p.ReceiveLocations {
		rl.port = p
		rl.Transport.location = rl
	}
}

// ReceiveLocation is an inbound endpoint of a receive port.
type ReceiveLocation struct {
	Name        Name
	Description string
	Enabled     bool
	// ReceivePipeline processes inbound messages.
	ReceivePipeline PipelineRef
	// SendPipeline processes responses when the port is two-way.
	SendPipeline PipelineRef
	Transport    ReceiveLocationTransport
	Overrides    []Override

	port *ReceivePort
	name nameMemo
}

// NewReceiveLocation returns a disabled receive location using adapter and
// the pass-through pipelines.
func NewReceiveLocation(name Name, adapter Adapter) *ReceiveLocation {
	return &ReceiveLocation{
		Name:            name,
		ReceivePipeline: PassThruReceive,
		Transport:       ReceiveLocationTransport{Adapter: adapter},
	}
}

func (l *ReceiveLocation) Kind() NodeKind {
	return KindReceiveLocation
}

func (l *ReceiveLocation) ResolveName() (string, error) {
	return l.name.resolve(l.Name, KindReceiveLocation, func(c Convention) (string, error) {
		return c.ComputeReceiveLocationName(l)
	})
}

// ReceivePort returns the port owning the location, once linked.
func (l *ReceiveLocation) ReceivePort() *ReceivePort {
	return l.port
}

// OnEnvironment registers an environment override.
func (l *ReceiveLocation) OnEnvironment(o Override) *ReceiveLocation {
	l.Overrides = append(l.Overrides, o)
	return l
}
