package bindingxml

import "encoding/xml"

// Document is the BindingInfo root of a BizTalk binding file.
type Document struct {
	XMLName        xml.Name `xml:"BindingInfo"`
	XmlnsXsd       string   `xml:"xmlns:xsd,attr"`
	XmlnsXsi       string   `xml:"xmlns:xsi,attr"`
	Assembly       string   `xml:"Assembly,attr"`
	Version        string   `xml:"Version,attr"`
	BindingStatus  string   `xml:"BindingStatus,attr"`
	BoundEndpoints int      `xml:"BoundEndpoints,attr"`
	TotalEndpoints int      `xml:"TotalEndpoints,attr"`

	Timestamp        string        `xml:"Timestamp"`
	ModuleRefs       []ModuleRef   `xml:"ModuleRefCollection>ModuleRef"`
	SendPorts        []SendPort    `xml:"SendPortCollection>SendPort"`
	DistributionList *Empty        `xml:"DistributionListCollection"`
	ReceivePorts     []ReceivePort `xml:"ReceivePortCollection>ReceivePort"`
	PartyCollection  *Nil          `xml:"PartyCollection"`
}

// Empty is an element without content.
type Empty struct{}

// Nil is an element marked xsi:nil.
type Nil struct {
	Nil bool `xml:"xsi:nil,attr"`
}

// ModuleRef groups the services deployed from one assembly. The application
// itself is the module named [Application:<name>].
type ModuleRef struct {
	Name           string    `xml:"Name,attr"`
	Version        string    `xml:"Version,attr"`
	Culture        string    `xml:"Culture,attr"`
	PublicKeyToken string    `xml:"PublicKeyToken,attr"`
	FullName       string    `xml:"FullName,attr"`
	Services       []Service `xml:"Services>Service"`
	TrackedSchemas *Empty    `xml:"TrackedSchemas"`
}

// Service is a bound orchestration.
type Service struct {
	Name        string        `xml:"Name,attr"`
	State       string        `xml:"State,attr"`
	Description string        `xml:"Description,attr"`
	Ports       []ServicePort `xml:"Ports>Port"`
	Roles       *Empty        `xml:"Roles"`
	Host        *ServiceHost  `xml:"Host"`
}

// ServicePort binds a logical orchestration port to a physical port.
type ServicePort struct {
	Name           string   `xml:"Name,attr"`
	Modifier       int      `xml:"Modifier,attr"`
	BindingOption  int      `xml:"BindingOption,attr"`
	SendPortRef    *PortRef `xml:"SendPortRef"`
	ReceivePortRef *PortRef `xml:"ReceivePortRef"`
}

// PortRef references a physical port by name.
type PortRef struct {
	Name string `xml:"Name,attr"`
}

// ServiceHost is the host running an orchestration.
type ServiceHost struct {
	Name        string `xml:"Name,attr"`
	NTGroupName string `xml:"NTGroupName,attr"`
	Type        int    `xml:"Type,attr"`
	Trusted     bool   `xml:"Trusted,attr"`
}

// Pipeline references a pipeline type.
type Pipeline struct {
	Name               string `xml:"Name,attr"`
	FullyQualifiedName string `xml:"FullyQualifiedName,attr"`
	Type               int    `xml:"Type,attr"`
	TrackingOption     string `xml:"TrackingOption,attr"`
	Description        string `xml:"Description,attr"`
}

// TransportType identifies an adapter protocol.
type TransportType struct {
	Name               string `xml:"Name,attr"`
	Capabilities       string `xml:"Capabilities,attr"`
	ConfigurationClsid string `xml:"ConfigurationClsid,attr"`
}

// Handler is the adapter handler of a transport, hosted by Name.
type Handler struct {
	Name          string        `xml:"Name,attr"`
	HostTrusted   bool          `xml:"HostTrusted,attr"`
	TransportType TransportType `xml:"TransportType"`
}

// SendPort is a physical send port.
type SendPort struct {
	Name                 string         `xml:"Name,attr"`
	IsStatic             bool           `xml:"IsStatic,attr"`
	IsTwoWay             bool           `xml:"IsTwoWay,attr"`
	BindingOption        int            `xml:"BindingOption,attr"`
	Description          string         `xml:"Description"`
	TransmitPipeline     *Pipeline      `xml:"TransmitPipeline"`
	SendPipelineData     string         `xml:"SendPipelineData"`
	PrimaryTransport     *SendTransport `xml:"PrimaryTransport"`
	SecondaryTransport   *SendTransport `xml:"SecondaryTransport"`
	ReceivePipeline      *Pipeline      `xml:"ReceivePipeline"`
	ReceivePipelineData  string         `xml:"ReceivePipelineData"`
	Tracking             int            `xml:"Tracking"`
	Filter               string         `xml:"Filter"`
	Transforms           *Empty         `xml:"Transforms"`
	OrderedDelivery      bool           `xml:"OrderedDelivery"`
	Priority             int            `xml:"Priority"`
	StopSendingOnFailure bool           `xml:"StopSendingOnFailure"`
	RouteFailedMessage   bool           `xml:"RouteFailedMessage"`
	ApplicationName      string         `xml:"ApplicationName"`
}

// SendTransport is the primary or secondary transport of a send port.
type SendTransport struct {
	Address              string        `xml:"Address"`
	TransportType        TransportType `xml:"TransportType"`
	TransportTypeData    string        `xml:"TransportTypeData"`
	RetryCount           int           `xml:"RetryCount"`
	RetryInterval        int           `xml:"RetryInterval"`
	ServiceWindowEnabled bool          `xml:"ServiceWindowEnabled"`
	FromTime             string        `xml:"FromTime"`
	ToTime               string        `xml:"ToTime"`
	Primary              bool          `xml:"Primary"`
	OrderedDelivery      bool          `xml:"OrderedDelivery"`
	DeliveryNotification int           `xml:"DeliveryNotification"`
	SendHandler          Handler       `xml:"SendHandler"`
}

// ReceivePort is a physical receive port.
type ReceivePort struct {
	Name               string            `xml:"Name,attr"`
	IsTwoWay           bool              `xml:"IsTwoWay,attr"`
	BindingOption      int               `xml:"BindingOption,attr"`
	Description        string            `xml:"Description"`
	ReceiveLocations   []ReceiveLocation `xml:"ReceiveLocations>ReceiveLocation"`
	SendPipeline       *Pipeline         `xml:"SendPipeline"`
	SendPipelineData   string            `xml:"SendPipelineData"`
	Authentication     int               `xml:"Authentication"`
	Tracking           int               `xml:"Tracking"`
	Transforms         *Empty            `xml:"Transforms"`
	RouteFailedMessage bool              `xml:"RouteFailedMessage"`
	ApplicationName    string            `xml:"ApplicationName"`
}

// ReceiveLocation is an inbound endpoint.
type ReceiveLocation struct {
	Name                                string        `xml:"Name,attr"`
	Description                         string        `xml:"Description"`
	Address                             string        `xml:"Address"`
	PublicAddress                       string        `xml:"PublicAddress"`
	Primary                             bool          `xml:"Primary"`
	ReceiveLocationServiceWindowEnabled bool          `xml:"ReceiveLocationServiceWindowEnabled"`
	ReceiveLocationFromTime             string        `xml:"ReceiveLocationFromTime"`
	ReceiveLocationToTime               string        `xml:"ReceiveLocationToTime"`
	ReceiveLocationStartDateEnabled     bool          `xml:"ReceiveLocationStartDateEnabled"`
	ReceiveLocationStartDate            string        `xml:"ReceiveLocationStartDate"`
	ReceiveLocationEndDateEnabled       bool          `xml:"ReceiveLocationEndDateEnabled"`
	ReceiveLocationEndDate              string        `xml:"ReceiveLocationEndDate"`
	ReceiveLocationTransportType        TransportType `xml:"ReceiveLocationTransportType"`
	ReceiveLocationTransportTypeData    string        `xml:"ReceiveLocationTransportTypeData"`
	ReceivePipeline                     *Pipeline     `xml:"ReceivePipeline"`
	ReceivePipelineData                 string        `xml:"ReceivePipelineData"`
	SendPipeline                        *Pipeline     `xml:"SendPipeline"`
	SendPipelineData                    string        `xml:"SendPipelineData"`
	Enable                              bool          `xml:"Enable"`
	ReceiveHandler                      Handler       `xml:"ReceiveHandler"`
}

// FilterDocument is the subscription filter, stored escaped in SendPort.Filter.
type FilterDocument struct {
	XMLName xml.Name      `xml:"Filter"`
	Groups  []FilterGroup `xml:"Group"`
}

// FilterGroup is a conjunction of statements.
type FilterGroup struct {
	Statements []FilterStatement `xml:"Statement"`
}

// FilterStatement is a single property comparison.
type FilterStatement struct {
	Property string `xml:"Property,attr"`
	Operator int    `xml:"Operator,attr"`
	Value    string `xml:"Value,attr,omitempty"`
}

// SendPort returns the send port named name, or nil.
func (d *Document) SendPort(name string) *SendPort {
	for i := range d.SendPorts {
		if d.SendPorts[i].Name == name {
			return &d.SendPorts[i]
		}
	}

	return nil
}

// ReceivePort returns the receive port named name, or nil.
func (d *Document) ReceivePort(name string) *ReceivePort {
	for i := range d.ReceivePorts {
		if d.ReceivePorts[i].Name == name {
			return &d.ReceivePorts[i]
		}
	}

	return nil
}
