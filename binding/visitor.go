package binding

// Visitor receives one callback per node during a Processing walk. Returning
// an error aborts the walk.
type Visitor interface {
	VisitReferencedApplication(app *Application) error
	VisitApplication(app *Application) error
	VisitReceivePort(port *ReceivePort) error
	VisitReceiveLocation(location *ReceiveLocation) error
	VisitSendPort(port *SendPort) error
	VisitOrchestration(orchestration *Orchestration) error
}

// VisitorFuncs adapts a set of optional callbacks to Visitor. Nil callbacks
// are skipped.
type VisitorFuncs struct {
	ReferencedApplication func(*Application) error
	Application           func(*Application) error
	ReceivePort           func(*ReceivePort) error
	ReceiveLocation       func(*ReceiveLocation) error
	SendPort              func(*SendPort) error
	Orchestration         func(*Orchestration) error
}

func (f *VisitorFuncs) VisitReferencedApplication(app *Application) error {
	if f.ReferencedApplication == nil {
		return nil
	}

	return f.ReferencedApplication(app)
}

func (f *VisitorFuncs) VisitApplication(app *Application) error {
	if f.Application == nil {
		return nil
	}

	return f.Application(app)
}

func (f *VisitorFuncs) VisitReceivePort(port *ReceivePort) error {
	if f.ReceivePort == nil {
		return nil
	}

	return f.ReceivePort(port)
}

func (f *VisitorFuncs) VisitReceiveLocation(location *ReceiveLocation) error {
	if f.ReceiveLocation == nil {
		return nil
	}

	return f.ReceiveLocation(location)
}

func (f *VisitorFuncs) VisitSendPort(port *SendPort) error {
	if f.SendPort == nil {
		return nil
	}

	return f.SendPort(port)
}

func (f *VisitorFuncs) VisitOrchestration(orchestration *Orchestration) error {
	if f.Orchestration == nil {
		return nil
	}

	return f.Orchestration(orchestration)
}
