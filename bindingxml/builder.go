package bindingxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"binding-generator/binding"
	"binding-generator/environment"
)

// Attribute values of the BindingInfo root.
const (
	deploymentAssembly = "Microsoft.BizTalk.Deployment, Version=3.0.1.0, Culture=neutral, PublicKeyToken=31bf3856ad364e35"
	bindingVersion     = "3.5.1.0"
	xsdNamespace       = "http://www.w3.org/2001/XMLSchema"
	xsiNamespace       = "http://www.w3.org/2001/XMLSchema-instance"
)

const (
	// DateTimeLayout is the layout of dates and times in binding files.
	DateTimeLayout = "2006-01-02T15:04:05"

	trackingNone = "None"
)

var (
	minDate   = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxDate   = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
	lastInDay = 24*time.Hour - time.Second
)

// Orchestration port binding modifiers.
const (
	modifierUses       = 1
	modifierImplements = 2
)

// Builder is a binding.Visitor populating a Document. It expects the walk
// order of binding.VisitorPipeline: the owning receive port is visited
// before its receive locations.
type Builder struct {
	deployment environment.Deployment
	now        func() time.Time

	doc          *Document
	application  string
	references   []string
	receivePorts map[*binding.ReceivePort]int
}

var _ binding.Visitor = (*Builder)(nil)

// NewBuilder returns a builder resolving hosts and adapter data for d.
func NewBuilder(d environment.Deployment) *Builder {
	return &Builder{deployment: d, now: time.Now}
}

// Document returns the document built by the last walk, or nil.
func (b *Builder) Document() *Document {
	return b.doc
}

// References returns the names of the referenced applications visited so
// far, in visit order.
func (b *Builder) References() []string {
	return b.references
}

func (b *Builder) VisitReferencedApplication(app *binding.Application) error {
	name, err := app.ResolveName()
	if err != nil {
		return err
	}

	b.references = append(b.references, name)

	return nil
}

func (b *Builder) VisitApplication(app *binding.Application) error {
	name, err := app.ResolveName()
	if err != nil {
		return err
	}

	timestamp := app.Timestamp
	if timestamp.IsZero() {
		timestamp = b.now()
	}

	module := "[Application:" + name + "]"

	b.application = name
	b.receivePorts = make(map[*binding.ReceivePort]int)
	b.doc = &Document{
		XmlnsXsd:         xsdNamespace,
		XmlnsXsi:         xsiNamespace,
		Assembly:         deploymentAssembly,
		Version:          bindingVersion,
		BindingStatus:    "FullyBound",
		Timestamp:        timestamp.Format(DateTimeLayout),
		DistributionList: &Empty{},
		PartyCollection:  &Nil{Nil: true},
		ModuleRefs: []ModuleRef{{
			Name:           module,
			FullName:       module + ", Version=, Culture=, PublicKeyToken=",
			TrackedSchemas: &Empty{},
		}},
	}

	return nil
}

func (b *Builder) VisitReceivePort(port *binding.ReceivePort) error {
	name, err := port.ResolveName()
	if err != nil {
		return err
	}

	rp := ReceivePort{
		Name:               name,
		IsTwoWay:           port.TwoWay,
		Description:        port.Description,
		Authentication:     int(port.Authentication),
		Tracking:           int(port.Tracking),
		Transforms:         &Empty{},
		RouteFailedMessage: port.RouteFailedMessage,
		ApplicationName:    b.application,
	}

	if port.TwoWay {
		rp.SendPipeline, rp.SendPipelineData = pipeline(port.SendPipeline)
	}

	b.receivePorts[port] = len(b.doc.ReceivePorts)
	b.doc.ReceivePorts = append(b.doc.ReceivePorts, rp)
	b.count()

	return nil
}

func (b *Builder) VisitReceiveLocation(location *binding.ReceiveLocation) error {
	index, ok := b.receivePorts[location.ReceivePort()]
	if !ok {
		return errors.New("receive location visited before its receive port")
	}

	rp := &b.doc.ReceivePorts[index]

	name, err := location.ResolveName()
	if err != nil {
		return err
	}

	transport := &location.Transport

	address, err := transport.Adapter.Address(b.deployment)
	if err != nil {
		return err
	}

	data, err := transport.Adapter.TransportTypeData(b.deployment)
	if err != nil {
		return err
	}

	host, err := transport.ResolveHost(b.deployment)
	if err != nil {
		return err
	}

	protocol := transportType(transport.Adapter)
	schedule := transport.Schedule

	rl := ReceiveLocation{
		Name:                             name,
		Description:                      location.Description,
		Address:                          address,
		Primary:                          len(rp.ReceiveLocations) == 0,
		ReceiveLocationFromTime:          timeOfDay(0),
		ReceiveLocationToTime:            timeOfDay(lastInDay),
		ReceiveLocationStartDateEnabled:  !schedule.StartDate.IsZero(),
		ReceiveLocationStartDate:         dateOr(schedule.StartDate, minDate),
		ReceiveLocationEndDateEnabled:    !schedule.StopDate.IsZero(),
		ReceiveLocationEndDate:           dateOr(schedule.StopDate, maxDate),
		ReceiveLocationTransportType:     protocol,
		ReceiveLocationTransportTypeData: data,
		Enable:                           location.Enabled,
		ReceiveHandler:                   Handler{Name: host, TransportType: protocol},
	}

	if w := schedule.ServiceWindow; w != nil {
		rl.ReceiveLocationServiceWindowEnabled = true
		rl.ReceiveLocationFromTime = timeOfDay(w.Start)
		rl.ReceiveLocationToTime = timeOfDay(w.Stop)
	}

	rl.ReceivePipeline, rl.ReceivePipelineData = pipeline(location.ReceivePipeline)

	if rp.IsTwoWay {
		rl.SendPipeline, rl.SendPipelineData = pipeline(location.SendPipeline)
	}

	rp.ReceiveLocations = append(rp.ReceiveLocations, rl)
	b.count()

	return nil
}

func (b *Builder) VisitSendPort(port *binding.SendPort) error {
	name, err := port.ResolveName()
	if err != nil {
		return err
	}

	primary, err := b.sendTransport(&port.Transport, true, port.OrderedDelivery)
	if err != nil {
		return err
	}

	sp := SendPort{
		Name:                 name,
		IsStatic:             true,
		IsTwoWay:             port.TwoWay,
		Description:          port.Description,
		PrimaryTransport:     primary,
		Tracking:             int(port.Tracking),
		Transforms:           &Empty{},
		OrderedDelivery:      port.OrderedDelivery,
		Priority:             port.Priority,
		StopSendingOnFailure: port.StopSendingOnFailure,
		RouteFailedMessage:   port.RouteFailedMessage,
		ApplicationName:      b.application,
	}

	if port.BackupTransport != nil {
		sp.SecondaryTransport, err = b.sendTransport(port.BackupTransport, false, false)
		if err != nil {
			return err
		}
	}

	sp.TransmitPipeline, sp.SendPipelineData = pipeline(port.SendPipeline)

	if port.TwoWay {
		sp.ReceivePipeline, sp.ReceivePipelineData = pipeline(port.ReceivePipeline)
	}

	if port.Filter != nil {
		sp.Filter, err = filter(port.Filter)
		if err != nil {
			return err
		}
	}

	b.doc.SendPorts = append(b.doc.SendPorts, sp)
	b.count()

	return nil
}

func (b *Builder) sendTransport(t *binding.SendPortTransport, primary, ordered bool) (*SendTransport, error) {
	address, err := t.Adapter.Address(b.deployment)
	if err != nil {
		return nil, err
	}

	data, err := t.Adapter.TransportTypeData(b.deployment)
	if err != nil {
		return nil, err
	}

	host, err := t.ResolveHost(b.deployment)
	if err != nil {
		return nil, err
	}

	protocol := transportType(t.Adapter)

	st := &SendTransport{
		Address:              address,
		TransportType:        protocol,
		TransportTypeData:    data,
		RetryCount:           t.RetryPolicy.Count,
		RetryInterval:        t.RetryPolicy.IntervalMinutes(),
		FromTime:             timeOfDay(0),
		ToTime:               timeOfDay(lastInDay),
		Primary:              primary,
		OrderedDelivery:      ordered,
		DeliveryNotification: 1,
		SendHandler:          Handler{Name: host, TransportType: protocol},
	}

	if w := t.ServiceWindow; w != nil {
		st.ServiceWindowEnabled = true
		st.FromTime = timeOfDay(w.Start)
		st.ToTime = timeOfDay(w.Stop)
	}

	return st, nil
}

func (b *Builder) VisitOrchestration(o *binding.Orchestration) error {
	host, err := o.ResolveHost(b.deployment)
	if err != nil {
		return err
	}

	service := Service{
		Name:  o.Name,
		State: serviceState(o.State),
		Roles: &Empty{},
		Host:  &ServiceHost{Name: host, Type: 1},
	}

	for _, pb := range o.PortBindings {
		port := ServicePort{Name: pb.LogicalPort, BindingOption: 1}

		switch {
		case pb.ReceivePort != nil:
			name, err := pb.ReceivePort.ResolveName()
			if err != nil {
				return err
			}

			port.Modifier = modifierImplements
			port.ReceivePortRef = &PortRef{Name: name}
		case pb.SendPort != nil:
			name, err := pb.SendPort.ResolveName()
			if err != nil {
				return err
			}

			port.Modifier = modifierUses
			port.SendPortRef = &PortRef{Name: name}
		}

		service.Ports = append(service.Ports, port)
	}

	module := b.moduleRef(o.Assembly)
	module.Services = append(module.Services, service)
	b.count()

	return nil
}

// moduleRef returns the module of assembly, adding it on first use.
func (b *Builder) moduleRef(assembly string) *ModuleRef {
	for i := range b.doc.ModuleRefs {
		if b.doc.ModuleRefs[i].FullName == assembly {
			return &b.doc.ModuleRefs[i]
		}
	}

	module := ModuleRef{FullName: assembly, TrackedSchemas: &Empty{}}

	parts := strings.Split(assembly, ",")
	module.Name = strings.TrimSpace(parts[0])

	for _, part := range parts[1:] {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")

		switch key {
		case "Version":
			module.Version = value
		case "Culture":
			module.Culture = value
		case "PublicKeyToken":
			module.PublicKeyToken = value
		}
	}

	b.doc.ModuleRefs = append(b.doc.ModuleRefs, module)

	return &b.doc.ModuleRefs[len(b.doc.ModuleRefs)-1]
}

// count tallies one bound endpoint.
func (b *Builder) count() {
	b.doc.BoundEndpoints++
	b.doc.TotalEndpoints++
}

func pipeline(p binding.PipelineRef) (*Pipeline, string) {
	if p.IsZero() {
		return nil, ""
	}

	return &Pipeline{
		Name:               p.Name,
		FullyQualifiedName: p.FullyQualifiedName(),
		Type:               int(p.Kind),
		TrackingOption:     trackingNone,
	}, p.Data
}

func transportType(a binding.Adapter) TransportType {
	protocol := a.ProtocolType()

	return TransportType{
		Name:               protocol.Name,
		Capabilities:       protocol.Capabilities.String(),
		ConfigurationClsid: protocol.ConfigurationClsid,
	}
}

func filter(f *binding.Filter) (string, error) {
	var fd FilterDocument

	for _, g := range f.Groups {
		var group FilterGroup

		for _, s := range g {
			value, err := s.ResolveValue()
			if err != nil {
				return "", err
			}

			group.Statements = append(group.Statements, FilterStatement{
				Property: s.Property,
				Operator: int(s.Operator),
				Value:    value,
			})
		}

		fd.Groups = append(fd.Groups, group)
	}

	data, err := xml.Marshal(fd)
	if err != nil {
		return "", fmt.Errorf("failed to marshal filter: %w", err)
	}

	return string(data), nil
}

func serviceState(s binding.ServiceState) string {
	switch s {
	case binding.ServiceUnenlisted:
		return "Unenlisted"
	case binding.ServiceEnlisted:
		return "Enlisted"
	default:
		return "Started"
	}
}

func timeOfDay(offset time.Duration) string {
	return minDate.Add(offset).Format(DateTimeLayout)
}

func dateOr(t, fallback time.Time) string {
	if t.IsZero() {
		t = fallback
	}

	return t.Format(DateTimeLayout)
}
