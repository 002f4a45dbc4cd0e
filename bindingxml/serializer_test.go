package bindingxml

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binding-generator/adapter"
	"binding-generator/binding"
	"binding-generator/environment"
)

const orchestrationAssembly = "Sample.Orchestrations, Version=1.0.0.0, Culture=neutral, PublicKeyToken=0123456789abcdef"

type sample struct {
	shared  *binding.Application
	app     *binding.Application
	rp      *binding.ReceivePort
	rl      *binding.ReceiveLocation
	sp      *binding.SendPort
	archive *binding.SendPort
}

func newSample() sample {
	sharedPort := binding.NewReceivePort(binding.Literal("Shared.RP1.Partner.Invoice")).
		AddReceiveLocations(binding.NewReceiveLocation(
			binding.Literal("Shared.RL1.Partner.Invoice.FILE"),
			adapter.NewFileInbound(`C:\Shared\In`, "*.xml")))
	shared := binding.NewApplication(binding.Literal("Shared")).AddReceivePorts(sharedPort)

	rl := binding.NewReceiveLocation(binding.Literal("Sample.RL1.Partner.Order.FILE"), adapter.NewFileInbound(`C:\Files\In`, "*.xml"))
	rl.Enabled = true
	rp := binding.NewReceivePort(binding.Literal("Sample.RP1.Partner.Order")).AddReceiveLocations(rl)

	sp := binding.NewSendPort(binding.Literal("Sample.SP1.Partner.Order.FILE"), adapter.NewFileOutbound(`C:\Files\Out`))
	sp.Transport.RetryPolicy = binding.RetryPolicy{Count: 30, Interval: 60 * time.Minute}
	sp.Filter = binding.Where(binding.ReceivePortNameIs(rp)).
		Or(binding.ReceivePortNameIs(sharedPort), binding.MessageTypeIs("urn:sample#Order"))

	archive := binding.NewSendPort(binding.Literal("Sample.SP1.Archive.Order.FILE"), adapter.NewFileOutbound(`C:\Files\Archive`))
	archive.Transport.ServiceWindow = &binding.ServiceWindow{Start: 22 * time.Hour, Stop: 6 * time.Hour}
	archive.BackupTransport = &binding.SendPortTransport{
		Adapter:     adapter.NewFileOutbound(`D:\Archive`),
		Host:        binding.Host("BackupHost"),
		RetryPolicy: binding.NoRetry,
	}

	orchestration := binding.NewOrchestration("Sample.Orchestrations.ProcessOrder", orchestrationAssembly).
		BindReceive("Inbound", rp).
		BindSend("Outbound", archive)

	app := binding.NewApplication(binding.Literal("Sample")).
		Reference(shared).
		AddReceivePorts(rp).
		AddSendPorts(sp, archive).
		AddOrchestrations(orchestration)
	app.Timestamp = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	return sample{shared: shared, app: app, rp: rp, rl: rl, sp: sp, archive: archive}
}

func TestSerializer_SampleScenario(t *testing.T) {
	s := newSample()

	data, err := NewSerializer(s.app, environment.For(environment.Development)).Serialize()
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte(`<?xml version="1.0" encoding="UTF-8"?>`)))
	assert.Contains(t, string(data), "<RetryCount>30</RetryCount>")
	assert.Contains(t, string(data), "<RetryInterval>60</RetryInterval>")
	assert.Contains(t, string(data), "<Timestamp>2024-03-05T14:30:00</Timestamp>")

	doc, err := Parse(data)
	require.NoError(t, err)

	defer func() {
		if t.Failed() {
			t.Log(spew.Sdump(doc))
		}
	}()

	sp := doc.SendPort("Sample.SP1.Partner.Order.FILE")
	require.NotNil(t, sp)
	require.NotNil(t, sp.PrimaryTransport)
	assert.Equal(t, 30, sp.PrimaryTransport.RetryCount)
	assert.Equal(t, 60, sp.PrimaryTransport.RetryInterval)
	assert.Equal(t, "Sample", sp.ApplicationName)

	rp := doc.ReceivePort("Sample.RP1.Partner.Order")
	require.NotNil(t, rp)
	require.Len(t, rp.ReceiveLocations, 1)
	assert.Equal(t, "Sample.RL1.Partner.Order.FILE", rp.ReceiveLocations[0].Name)
	assert.True(t, rp.ReceiveLocations[0].Enable)
	assert.True(t, rp.ReceiveLocations[0].Primary)
}

func TestSerializer_RoundTrip(t *testing.T) {
	s := newSample()
	d := environment.For(environment.Acceptance)

	data, err := NewSerializer(s.app, d).Serialize()
	require.NoError(t, err)

	doc, err := Parse(data)
	require.NoError(t, err)

	defer func() {
		if t.Failed() {
			t.Log(spew.Sdump(doc))
		}
	}()

	assert.Equal(t, deploymentAssembly, doc.Assembly)
	require.Len(t, doc.ReceivePorts, 1)
	require.Len(t, doc.SendPorts, 2)

	rl := doc.ReceivePorts[0].ReceiveLocations[0]
	wantData, err := s.rl.Transport.Adapter.TransportTypeData(d)
	require.NoError(t, err)
	assert.Equal(t, wantData, rl.ReceiveLocationTransportTypeData)
	assert.Equal(t, `C:\Files\In\*.xml`, rl.Address)
	assert.Equal(t, "BizTalkServerApplication", rl.ReceiveHandler.Name)
	assert.Equal(t, TransportType{
		Name:               "FILE",
		Capabilities:       "11",
		ConfigurationClsid: "5e49e3a6-b4fc-4077-b44c-22f34a242fdb",
	}, rl.ReceiveLocationTransportType)
	assert.Equal(t, "Microsoft.BizTalk.DefaultPipelines.PassThruReceive", rl.ReceivePipeline.Name)
	assert.Nil(t, rl.SendPipeline)

	for i, sp := range []*binding.SendPort{s.sp, s.archive} {
		name, err := sp.ResolveName()
		require.NoError(t, err)
		assert.Equal(t, name, doc.SendPorts[i].Name)

		wantData, err := sp.Transport.Adapter.TransportTypeData(d)
		require.NoError(t, err)
		assert.Equal(t, wantData, doc.SendPorts[i].PrimaryTransport.TransportTypeData)
		assert.Equal(t, "BizTalkServerApplication", doc.SendPorts[i].PrimaryTransport.SendHandler.Name)
	}

	archive := doc.SendPorts[1]
	assert.True(t, archive.PrimaryTransport.ServiceWindowEnabled)
	assert.Equal(t, "2000-01-01T22:00:00", archive.PrimaryTransport.FromTime)
	assert.Equal(t, "2000-01-01T06:00:00", archive.PrimaryTransport.ToTime)
	require.NotNil(t, archive.SecondaryTransport)
	assert.Equal(t, "BackupHost", archive.SecondaryTransport.SendHandler.Name)
	assert.False(t, archive.SecondaryTransport.Primary)
	assert.Equal(t, 0, archive.SecondaryTransport.RetryCount)
	assert.Empty(t, archive.Filter)
}

func TestSerializer_Filter(t *testing.T) {
	s := newSample()

	doc, err := NewSerializer(s.app, environment.For(environment.Development)).Document()
	require.NoError(t, err)

	filter, err := ParseFilter(doc.SendPorts[0].Filter)
	require.NoError(t, err)

	assert.Equal(t, []FilterGroup{
		{Statements: []FilterStatement{{Property: "BTS.ReceivePortName", Value: "Sample.RP1.Partner.Order"}}},
		{Statements: []FilterStatement{
			{Property: "BTS.ReceivePortName", Value: "Shared.RP1.Partner.Invoice"},
			{Property: "BTS.MessageType", Value: "urn:sample#Order"},
		}},
	}, filter.Groups)
}

func TestSerializer_Orchestrations(t *testing.T) {
	s := newSample()

	doc, err := NewSerializer(s.app, environment.For(environment.Development)).Document()
	require.NoError(t, err)

	require.Len(t, doc.ModuleRefs, 2)
	assert.Equal(t, "[Application:Sample]", doc.ModuleRefs[0].Name)

	module := doc.ModuleRefs[1]
	assert.Equal(t, "Sample.Orchestrations", module.Name)
	assert.Equal(t, "1.0.0.0", module.Version)
	assert.Equal(t, "neutral", module.Culture)
	assert.Equal(t, "0123456789abcdef", module.PublicKeyToken)
	assert.Equal(t, orchestrationAssembly, module.FullName)

	require.Len(t, module.Services, 1)
	service := module.Services[0]
	assert.Equal(t, "Sample.Orchestrations.ProcessOrder", service.Name)
	assert.Equal(t, "Started", service.State)
	assert.Equal(t, "BizTalkServerApplication", service.Host.Name)
	assert.Equal(t, []ServicePort{
		{Name: "Inbound", Modifier: modifierImplements, BindingOption: 1, ReceivePortRef: &PortRef{Name: "Sample.RP1.Partner.Order"}},
		{Name: "Outbound", Modifier: modifierUses, BindingOption: 1, SendPortRef: &PortRef{Name: "Sample.SP1.Archive.Order.FILE"}},
	}, service.Ports)
}

func TestSerializer_EnvironmentOverrides(t *testing.T) {
	s := newSample()
	s.sp.OnEnvironment(func(d environment.Deployment) error {
		if d.Environment.IsPreProductionUpwards() {
			s.sp.Transport.Adapter.(*adapter.FileOutbound).DestinationFolder = `\\prd\out`
		}

		return nil
	})

	doc, err := NewSerializer(s.app, environment.For(environment.Production)).Document()
	require.NoError(t, err)
	assert.Equal(t, `\\prd\out\%MessageID%.xml`, doc.SendPorts[0].PrimaryTransport.Address)
}

func TestSerializer_NoPartialOutput(t *testing.T) {
	s := newSample()
	s.rp.ReceiveLocations = nil

	var buf bytes.Buffer

	n, err := NewSerializer(s.app, environment.For(environment.Development)).WriteTo(&buf)
	require.Error(t, err)
	assert.True(t, binding.IsValidationError(err))
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestSerializer_OverrideFailure(t *testing.T) {
	boom := errors.New("boom")
	s := newSample()
	s.app.OnEnvironment(func(environment.Deployment) error { return boom })

	data, err := NewSerializer(s.app, environment.For(environment.Development)).Serialize()
	require.ErrorIs(t, err, boom)
	assert.Nil(t, data)
}

func TestSerializer_Clock(t *testing.T) {
	s := newSample()
	s.app.Timestamp = time.Time{}

	clock := func() time.Time { return time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC) }

	doc, err := NewSerializer(s.app, environment.For(environment.Development), WithClock(clock)).Document()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02T03:04:05", doc.Timestamp)
}

func TestBuilder_References(t *testing.T) {
	s := newSample()
	builder := NewBuilder(environment.For(environment.Development))

	require.NoError(t, binding.NewVisitorPipeline(s.app, environment.For(environment.Development)).Accept(builder))
	assert.Equal(t, []string{"Shared"}, builder.References())
}
