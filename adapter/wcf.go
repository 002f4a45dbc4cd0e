package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"binding-generator/binding"
	"binding-generator/environment"
)

// WcfBasicHttpProtocol is the WCF-BasicHttp adapter protocol. Its receive
// handler runs in an isolated host.
var WcfBasicHttpProtocol = binding.ProtocolType{
	Name: "WCF-BasicHttp",
	Capabilities: binding.CapabilitySupportsReceive | binding.CapabilitySupportsSend |
		binding.CapabilityRequestResponse | binding.CapabilityReceiveIsolated | binding.CapabilitySupportsSoap,
	ConfigurationClsid: "467c1a52-373f-4f09-9008-27af6b985f14",
}

// SecurityMode is the basicHttpBinding security mode.
type SecurityMode string

const (
	SecurityNone                    SecurityMode = "None"
	SecurityTransport               SecurityMode = "Transport"
	SecurityMessage                 SecurityMode = "Message"
	SecurityTransportWithMessage    SecurityMode = "TransportWithMessageCredential"
	SecurityTransportCredentialOnly SecurityMode = "TransportCredentialOnly"
)

// WcfTimeouts are the binding timeouts shared by WCF adapters.
type WcfTimeouts struct {
	Open  time.Duration
	Send  time.Duration
	Close time.Duration
}

// DefaultWcfTimeouts are the WCF defaults.
var DefaultWcfTimeouts = WcfTimeouts{Open: time.Minute, Send: time.Minute, Close: time.Minute}

func (t WcfTimeouts) write(p *customProps) {
	p.str("OpenTimeout", timeSpan(t.Open)).
		str("SendTimeout", timeSpan(t.Send)).
		str("CloseTimeout", timeSpan(t.Close))
}

func (t WcfTimeouts) validate() error {
	if t.Open <= 0 || t.Send <= 0 || t.Close <= 0 {
		return errors.New("timeouts must be positive")
	}

	return nil
}

// WcfBasicHttpInbound exposes a receive location as a basicHttpBinding
// service hosted in IIS.
type WcfBasicHttpInbound struct {
	Overrides

	// Path is the virtual path of the service, e.g. "/Orders/Service.svc".
	Path                   string
	SecurityMode           SecurityMode
	MaxReceivedMessageSize int
	Timeouts               WcfTimeouts
	UseSSO                 bool
}

// NewWcfBasicHttpInbound returns a WCF-BasicHttp receive configuration.
func NewWcfBasicHttpInbound(path string) *WcfBasicHttpInbound {
	return &WcfBasicHttpInbound{
		Path:                   path,
		SecurityMode:           SecurityNone,
		MaxReceivedMessageSize: 65536,
		Timeouts:               DefaultWcfTimeouts,
	}
}

func (a *WcfBasicHttpInbound) ProtocolType() binding.ProtocolType {
	return WcfBasicHttpProtocol
}

func (a *WcfBasicHttpInbound) Address(environment.Deployment) (string, error) {
	return a.Path, nil
}

func (a *WcfBasicHttpInbound) TransportTypeData(environment.Deployment) (string, error) {
	p := &customProps{}
	p.int32("MaxReceivedMessageSize", a.MaxReceivedMessageSize).
		str("MessageEncoding", "Text").
		str("SecurityMode", string(a.SecurityMode))
	a.Timeouts.write(p)
	p.boolean("UseSSO", a.UseSSO).
		str("InboundBodyLocation", "UseBodyElement")

	return p.String(), nil
}

func (a *WcfBasicHttpInbound) Validate() error {
	if !strings.HasPrefix(a.Path, "/") {
		return fmt.Errorf("service path %q must start with '/'", a.Path)
	}

	if a.MaxReceivedMessageSize < 1 {
		return errors.New("max received message size must be positive")
	}

	return a.Timeouts.validate()
}

// WcfBasicHttpOutbound calls a basicHttpBinding service.
type WcfBasicHttpOutbound struct {
	Overrides

	URL                    string
	Action                 string
	SecurityMode           SecurityMode
	MaxReceivedMessageSize int
	Timeouts               WcfTimeouts
}

// NewWcfBasicHttpOutbound returns a WCF-BasicHttp send configuration.
func NewWcfBasicHttpOutbound(serviceURL, action string) *WcfBasicHttpOutbound {
	return &WcfBasicHttpOutbound{
		URL:                    serviceURL,
		Action:                 action,
		SecurityMode:           SecurityNone,
		MaxReceivedMessageSize: 65536,
		Timeouts:               DefaultWcfTimeouts,
	}
}

func (a *WcfBasicHttpOutbound) ProtocolType() binding.ProtocolType {
	return WcfBasicHttpProtocol
}

func (a *WcfBasicHttpOutbound) Address(environment.Deployment) (string, error) {
	return a.URL, nil
}

func (a *WcfBasicHttpOutbound) TransportTypeData(environment.Deployment) (string, error) {
	p := &customProps{}
	p.int32("MaxReceivedMessageSize", a.MaxReceivedMessageSize).
		str("MessageEncoding", "Text").
		str("SecurityMode", string(a.SecurityMode)).
		str("StaticAction", a.Action)
	a.Timeouts.write(p)
	p.str("OutboundBodyLocation", "UseBodyElement")

	return p.String(), nil
}

func (a *WcfBasicHttpOutbound) Validate() error {
	u, err := url.Parse(a.URL)
	if err != nil {
		return fmt.Errorf("service url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("service url %q must use http or https", a.URL)
	}

	if a.SecurityMode == SecurityTransport && u.Scheme != "https" {
		return errors.New("transport security requires an https url")
	}

	return a.Timeouts.validate()
}
