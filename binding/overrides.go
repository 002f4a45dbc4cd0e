package binding

import "binding-generator/environment"

// OverrideApplicator is the visitor running the environment overrides of
// every node of an application, including adapters implementing
// EnvironmentOverrider. Referenced applications are left untouched; they are
// settled by their own pipeline.
type OverrideApplicator struct {
	deployment environment.Deployment
}

// NewOverrideApplicator returns an applicator targeting d.
func NewOverrideApplicator(d environment.Deployment) *OverrideApplicator {
	return &OverrideApplicator{deployment: d}
}

func (a *OverrideApplicator) VisitReferencedApplication(*Application) error {
	return nil
}

func (a *OverrideApplicator) VisitApplication(app *Application) error {
	return a.apply(app.Overrides)
}

func (a *OverrideApplicator) VisitReceivePort(port *ReceivePort) error {
	return a.apply(port.Overrides)
}

func (a *OverrideApplicator) VisitReceiveLocation(location *ReceiveLocation) error {
	if err := a.apply(location.Overrides); err != nil {
		return err
	}

	return a.applyAdapter(location.Transport.Adapter)
}

func (a *OverrideApplicator) VisitSendPort(port *SendPort) error {
	if err := a.apply(port.Overrides); err != nil {
		return err
	}

	if err := a.applyAdapter(port.Transport.Adapter); err != nil {
		return err
	}

	if port.BackupTransport != nil {
		return a.applyAdapter(port.BackupTransport.Adapter)
	}

	return nil
}

func (a *OverrideApplicator) VisitOrchestration(orchestration *Orchestration) error {
	return a.apply(orchestration.Overrides)
}

// apply runs overrides in registration order. Their errors are returned
// unmodified.
func (a *OverrideApplicator) apply(overrides []Override) error {
	for _, o := range overrides {
		if err := o(a.deployment); err != nil {
			return err
		}
	}

	return nil
}

func (a *OverrideApplicator) applyAdapter(adapter Adapter) error {
	if o, ok := adapter.(EnvironmentOverrider); ok {
		return o.ApplyEnvironmentOverrides(a.deployment)
	}

	return nil
}
