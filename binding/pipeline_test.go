package binding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binding-generator/environment"
)

func TestVisitorPipeline_WalkOrder(t *testing.T) {
	r := &recorder{}

	require.NoError(t, NewVisitorPipeline(newGraph(), dev).Accept(r))
	assert.Equal(t, []string{
		"ref Shared",
		"app App",
		"rp App.RP1",
		"rl App.RL1.A",
		"rl App.RL1.B",
		"sp App.SP1",
		"orch App.Process",
	}, r.calls)
}

func TestVisitorPipeline_ValidatesBeforeVisitor(t *testing.T) {
	app := newGraph()
	app.ReceivePorts[0].ReceiveLocations = nil

	r := &recorder{}
	err := NewVisitorPipeline(app, dev).Accept(r)

	var be *BindingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, KindReceivePort, be.Kind)
	assert.EqualError(t, err, "ReceivePort 'App.RP1' binding: receive locations are not defined")
	assert.Empty(t, r.calls)
}

func TestVisitorPipeline_PreprocessingOncePerAccept(t *testing.T) {
	var overrides, validations, nested int

	app := newGraph()
	p := NewVisitorPipeline(app, dev,
		WithOverrideApplicator(&VisitorFuncs{Application: func(*Application) error { overrides++; return nil }}),
		WithValidator(&VisitorFuncs{Application: func(*Application) error { validations++; return nil }}))

	outer := &VisitorFuncs{
		Application: func(*Application) error {
			assert.Equal(t, StageProcessing, p.Stage())

			return p.Accept(&VisitorFuncs{Application: func(*Application) error { nested++; return nil }})
		},
	}

	require.NoError(t, p.Accept(outer))
	assert.Equal(t, 1, overrides)
	assert.Equal(t, 1, validations)
	assert.Equal(t, 1, nested)
	assert.Equal(t, StagePreprocessing, p.Stage())

	require.NoError(t, p.Accept(outer))
	assert.Equal(t, 2, overrides)
	assert.Equal(t, 2, validations)
}

func TestVisitorPipeline_AcceptValidator(t *testing.T) {
	validations := 0
	validator := &VisitorFuncs{Application: func(*Application) error { validations++; return nil }}

	p := NewVisitorPipeline(newGraph(), dev, WithValidator(validator))

	require.NoError(t, p.Accept(p.Validator()))
	assert.Equal(t, 1, validations)
}

// namesVisitor has a slice field, so its values cannot be compared with ==.
type namesVisitor struct {
	names []string
}

func (namesVisitor) VisitReferencedApplication(*Application) error { return nil }
func (namesVisitor) VisitApplication(*Application) error           { return nil }
func (namesVisitor) VisitReceivePort(*ReceivePort) error           { return nil }
func (namesVisitor) VisitReceiveLocation(*ReceiveLocation) error   { return nil }
func (namesVisitor) VisitSendPort(*SendPort) error                 { return nil }
func (namesVisitor) VisitOrchestration(*Orchestration) error       { return nil }

func TestVisitorPipeline_UncomparableVisitors(t *testing.T) {
	p := NewVisitorPipeline(newGraph(), dev, WithValidator(namesVisitor{names: []string{"validator"}}))

	assert.NotPanics(t, func() {
		require.NoError(t, p.Accept(namesVisitor{}))
	})
	assert.Equal(t, StagePreprocessing, p.Stage())

	assert.False(t, sameVisitor(namesVisitor{}, namesVisitor{}))
	assert.False(t, sameVisitor(namesVisitor{}, nil))

	validator := &VisitorFuncs{}
	assert.True(t, sameVisitor(validator, validator))
	assert.False(t, sameVisitor(validator, &VisitorFuncs{}))
}

func TestVisitorPipeline_StageRestored(t *testing.T) {
	boom := errors.New("boom")
	app := newGraph()
	p := NewVisitorPipeline(app, dev)

	err := p.Accept(&VisitorFuncs{SendPort: func(*SendPort) error { return boom }})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, StagePreprocessing, p.Stage())

	assert.Panics(t, func() {
		_ = p.Accept(&VisitorFuncs{ReceivePort: func(*ReceivePort) error { panic("visitor exploded") }})
	})
	assert.Equal(t, StagePreprocessing, p.Stage())
	assert.Equal(t, "StagePreprocessing", p.Stage().String())
}

func TestVisitorPipeline_OverridesRunBeforeValidation(t *testing.T) {
	app := newGraph()
	sp := app.SendPorts[0]
	sp.Priority = 0

	sp.OnEnvironment(func(d environment.Deployment) error {
		sp.Priority = 11
		if d.Environment.IsDevelopment() {
			sp.Priority = 1
		}

		return nil
	})

	stub := sp.Transport.Adapter.(*stubAdapter)
	stub.overrides = append(stub.overrides, func(environment.Deployment) error {
		stub.name = "OVERRIDDEN"
		return nil
	})

	require.NoError(t, NewVisitorPipeline(app, dev).Accept(&recorder{}))
	assert.Equal(t, 1, sp.Priority)
	assert.Equal(t, "OVERRIDDEN", stub.name)

	err := NewVisitorPipeline(app, environment.For(environment.Production)).Accept(&recorder{})
	assert.True(t, IsValidationError(err))
}

func TestVisitorPipeline_NoEnvironment(t *testing.T) {
	err := NewVisitorPipeline(newGraph(), environment.Deployment{}).Accept(&recorder{})
	require.ErrorIs(t, err, environment.ErrNoEnvironment)
}

func TestVisitorPipeline_OverrideErrorUnmodified(t *testing.T) {
	boom := errors.New("boom")
	app := newGraph()
	app.ReceivePorts[0].ReceiveLocations[1].OnEnvironment(func(environment.Deployment) error { return boom })

	err := NewVisitorPipeline(app, dev).Accept(&recorder{})
	assert.Same(t, boom, err)
}
