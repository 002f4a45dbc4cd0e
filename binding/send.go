package binding

// PortState is the runtime state of a send port after import.
type PortState int

const (
	PortBound   PortState = 1
	PortStopped PortState = 2
	PortStarted PortState = 3
)

// SendPort is an outbound endpoint subscribing to messages through Filter.
type SendPort struct {
	Name        Name
	Description string
	TwoWay      bool
	State       PortState
	// Filter is the subscription. Nil for ports bound to orchestrations only.
	Filter               *Filter
	OrderedDelivery      bool
	Priority             int
	StopSendingOnFailure bool
	RouteFailedMessage   bool
	SendPipeline         PipelineRef
	// ReceivePipeline processes responses when the port is two-way.
	ReceivePipeline PipelineRef
	Transport       SendPortTransport
	BackupTransport *SendPortTransport
	Tracking        Tracking
	Overrides       []Override

	application *Application
	name        nameMemo
}

// NewSendPort returns a started one-way send port using adapter, the
// pass-through pipeline, priority 5 and the default retry policy.
func NewSendPort(name Name, adapter Adapter) *SendPort {
	return &SendPort{
		Name:         name,
		State:        PortStarted,
		Priority:     5,
		SendPipeline: PassThruTransmit,
		Transport: SendPortTransport{
			Adapter:     adapter,
			RetryPolicy: DefaultRetryPolicy,
		},
	}
}

// NewSolicitResponseSendPort returns a two-way send port.
func NewSolicitResponseSendPort(name Name, adapter Adapter) *SendPort {
	sp := NewSendPort(name, adapter)
	sp.TwoWay = true
	sp.ReceivePipeline = PassThruReceive

	return sp
}

func (p *SendPort) Kind() NodeKind {
	return KindSendPort
}

func (p *SendPort) ResolveName() (string, error) {
	return p.name.resolve(p.Name, KindSendPort, func(c Convention) (string, error) {
		return c.ComputeSendPortName(p)
	})
}

// Application returns the application owning the port, once linked.
func (p *SendPort) Application() *Application {
	return p.application
}

// OnEnvironment registers an environment override.
func (p *SendPort) OnEnvironment(o Override) *SendPort {
	p.Overrides = append(p.Overrides, o)
	return p
}
