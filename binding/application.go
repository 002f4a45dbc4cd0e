package binding

import (
	"time"

	"binding-generator/environment"
)

// Override adjusts a node to the target deployment. Overrides run once per
// external pipeline call, before validation.
type Override func(d environment.Deployment) error

// Tracking is a set of BizTalk message tracking options.
type Tracking int

const (
	TrackingNone                    Tracking = 0
	TrackingBeforeReceivePipeline   Tracking = 1
	TrackingAfterReceivePipeline    Tracking = 2
	TrackingBeforeSendPipeline      Tracking = 4
	TrackingAfterSendPipeline       Tracking = 8
	TrackingPropertiesBeforeReceive Tracking = 16
	TrackingPropertiesAfterReceive  Tracking = 32
	TrackingPropertiesBeforeSend    Tracking = 64
	TrackingPropertiesAfterSend     Tracking = 128
)

// Application is the root of a binding graph.
type Application struct {
	Name        Name
	Description string
	// ReferencedApplications are applications this one depends on. They are
	// visited before the application itself.
	ReferencedApplications []*Application
	ReceivePorts           []*ReceivePort
	SendPorts              []*SendPort
	Orchestrations         []*Orchestration
	// Timestamp is written in the binding file header. Zero means generation time.
	Timestamp time.Time
	Overrides []Override

	name nameMemo
}

// NewApplication returns an empty application.
func NewApplication(name Name) *Application {
	return &Application{Name: name}
}

func (a *Application) Kind() NodeKind {
	return KindApplication
}

func (a *Application) ResolveName() (string, error) {
	return a.name.resolve(a.Name, KindApplication, func(c Convention) (string, error) {
		return c.ComputeApplicationName(a)
	})
}

// Reference adds applications this one depends on.
func (a *Application) Reference(apps ...*Application) *Application {
	a.ReferencedApplications = append(a.ReferencedApplications, apps...)
	return a
}

// AddReceivePorts adds receive ports to the application.
func (a *Application) AddReceivePorts(ports ...*ReceivePort) *Application {
	a.ReceivePorts = append(a.ReceivePorts, ports...)
	a.link()

	return a
}

// AddSendPorts adds send ports to the application.
func (a *Application) AddSendPorts(ports ...*SendPort) *Application {
	a.SendPorts = append(a.SendPorts, ports...)
	a.link()

	return a
}

// AddOrchestrations adds orchestrations to the application.
func (a *Application) AddOrchestrations(orchestrations ...*Orchestration) *Application {
	a.Orchestrations = append(a.Orchestrations, orchestrations...)
	a.link()

	return a
}

// OnEnvironment registers an environment override.
func (a *Application) OnEnvironment(o Override) *Application {
	a.Overrides = append(a.Overrides, o)
	return a
}

// link sets the parent references of every node under a.
func (a *Application) link() {
	for _, rp := range a.ReceivePorts {
		rp.application = a
		rp.link()
	}

	for _, sp := range a.SendPorts {
		sp.application = a
		sp.Transport.port = sp
		if sp.BackupTransport != nil {
			sp.BackupTransport.port = sp
		}
	}

	for _, o := range a.Orchestrations {
		o.application = a
	}
}
