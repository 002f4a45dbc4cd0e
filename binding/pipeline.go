package binding

import (
	"log/slog"
	"reflect"

	"binding-generator/environment"
)

//go:generate go tool stringer -type=Stage -output=stage_string.go

// Stage is the state of a VisitorPipeline.
type Stage int

const (
	// StagePreprocessing is the initial and terminal stage. Accept applies
	// overrides and validates before running the requested visitor.
	StagePreprocessing Stage = iota
	// StageProcessing is active only while a walk is in progress. Accept walks
	// the graph directly.
	StageProcessing
)

// VisitorPipeline drives every walk of an application graph. It is
// re-entrant but not safe for concurrent use: one instance drives one
// traversal at a time.
type VisitorPipeline struct {
	application *Application
	deployment  environment.Deployment
	stage       Stage
	overrides   Visitor
	validator   Visitor
	log         *slog.Logger
}

// PipelineOption configures a VisitorPipeline.
type PipelineOption func(*VisitorPipeline)

// WithLogger sets the pipeline logger.
func WithLogger(log *slog.Logger) PipelineOption {
	return func(p *VisitorPipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithOverrideApplicator replaces the visitor applying environment overrides.
func WithOverrideApplicator(v Visitor) PipelineOption {
	return func(p *VisitorPipeline) {
		p.overrides = v
	}
}

// WithValidator replaces the visitor validating the graph.
func WithValidator(v Visitor) PipelineOption {
	return func(p *VisitorPipeline) {
		p.validator = v
	}
}

// NewVisitorPipeline returns a pipeline walking app for deployment d.
func NewVisitorPipeline(app *Application, d environment.Deployment, opts ...PipelineOption) *VisitorPipeline {
	p := &VisitorPipeline{
		application: app,
		deployment:  d,
		stage:       StagePreprocessing,
		log:         slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.overrides == nil {
		p.overrides = NewOverrideApplicator(d)
	}

	if p.validator == nil {
		p.validator = NewValidator(d)
	}

	return p
}

// Stage returns the current stage.
func (p *VisitorPipeline) Stage() Stage {
	return p.stage
}

// Deployment returns the deployment the pipeline targets.
func (p *VisitorPipeline) Deployment() environment.Deployment {
	return p.deployment
}

// Application returns the walked application.
func (p *VisitorPipeline) Application() *Application {
	return p.application
}

// Validator returns the visitor validating the graph.
func (p *VisitorPipeline) Validator() Visitor {
	return p.validator
}

// Accept runs v over the application graph. From an external caller, it
// first applies environment overrides and validates the graph; calls nested
// within that work walk the graph directly.
func (p *VisitorPipeline) Accept(v Visitor) error {
	switch p.stage {
	case StagePreprocessing:
		return p.preprocess(v)
	default:
		return p.process(v)
	}
}

func (p *VisitorPipeline) preprocess(v Visitor) error {
	if err := p.deployment.Validate(); err != nil {
		return err
	}

	p.stage = StageProcessing
	defer func() {
		p.stage = StagePreprocessing
	}()

	log := p.log.With(slog.String("environment", p.deployment.Environment.String()))

	log.Debug("applying environment overrides")

	if err := p.Accept(p.overrides); err != nil {
		return err
	}

	log.Debug("validating binding")

	if err := p.Accept(p.validator); err != nil {
		return err
	}

	if sameVisitor(v, p.validator) {
		return nil
	}

	log.Debug("visiting binding", slog.String("visitor", typeName(v)))

	return p.Accept(v)
}

// sameVisitor reports whether a and b are the same visitor value. Visitors
// whose dynamic type is not comparable are never the same.
func sameVisitor(a, b Visitor) bool {
	t := reflect.TypeOf(a)
	if t == nil || t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}

	return a == b
}

// process walks referenced applications, the application, receive ports and
// their locations, send ports, then orchestrations. Later visits may rely on
// names settled by earlier ones.
func (p *VisitorPipeline) process(v Visitor) error {
	app := p.application
	app.link()

	refs, err := orderedReferences(app)
	if err != nil {
		return err
	}

	for _, ref := range refs {
		ref.link()

		if err := v.VisitReferencedApplication(ref); err != nil {
			return err
		}
	}

	if err := v.VisitApplication(app); err != nil {
		return err
	}

	for _, rp := range app.ReceivePorts {
		if err := v.VisitReceivePort(rp); err != nil {
			return err
		}

		for _, rl := range rp.ReceiveLocations {
			if err := v.VisitReceiveLocation(rl); err != nil {
				return err
			}
		}
	}

	for _, sp := range app.SendPorts {
		if err := v.VisitSendPort(sp); err != nil {
			return err
		}
	}

	for _, o := range app.Orchestrations {
		if err := v.VisitOrchestration(o); err != nil {
			return err
		}
	}

	return nil
}
