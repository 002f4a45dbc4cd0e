package binding

import (
	"binding-generator/environment"
)

const (
	hostNamesProviderName  = "binding.HostNamesProvider"
	hostPolicyProviderName = "binding.HostResolutionPolicyProvider"
)

// HostResolutionPolicy selects the host running a transport. Policies are
// consulted every time a host is read; a stateful implementation is
// responsible for its own sharing hazards.
type HostResolutionPolicy interface {
	ResolveOrchestrationHost(d environment.Deployment, orchestration *Orchestration) (string, error)
	ResolveReceiveLocationHost(d environment.Deployment, transport *ReceiveLocationTransport) (string, error)
	ResolveSendPortHost(d environment.Deployment, transport *SendPortTransport) (string, error)
}

// Host is a HostResolutionPolicy always resolving to the same host name.
type Host string

func (h Host) ResolveOrchestrationHost(environment.Deployment, *Orchestration) (string, error) {
	return string(h), nil
}

func (h Host) ResolveReceiveLocationHost(environment.Deployment, *ReceiveLocationTransport) (string, error) {
	return string(h), nil
}

func (h Host) ResolveSendPortHost(environment.Deployment, *SendPortTransport) (string, error) {
	return string(h), nil
}

// HostNamesProvider is implemented by platform overrides providing four fixed
// host names.
type HostNamesProvider interface {
	IsolatedHost() string
	ProcessingHost() string
	ReceivingHost() string
	TransmittingHost() string
}

// HostResolutionPolicyProvider is implemented by platform overrides providing
// their own host resolution policy.
type HostResolutionPolicyProvider interface {
	HostResolutionPolicy() HostResolutionPolicy
}

// HostNames groups the four hosts of a BizTalk group.
type HostNames struct {
	Isolated     string
	Processing   string
	Receiving    string
	Transmitting string
}

// DefaultHostNames are the hosts created by a default BizTalk installation.
var DefaultHostNames = HostNames{
	Isolated:     "BizTalkServerIsolatedHost",
	Processing:   "BizTalkServerApplication",
	Receiving:    "BizTalkServerApplication",
	Transmitting: "BizTalkServerApplication",
}

func hostNamesOf(p HostNamesProvider) HostNames {
	return HostNames{
		Isolated:     p.IsolatedHost(),
		Processing:   p.ProcessingHost(),
		Receiving:    p.ReceivingHost(),
		Transmitting: p.TransmittingHost(),
	}
}

// DefaultHostResolutionPolicy runs receive handlers of isolated adapters in
// the isolated host and every other receive handler in the receiving host,
// send handlers in the transmitting host and orchestrations in the processing
// host.
type DefaultHostResolutionPolicy struct {
	Names HostNames
}

func (p DefaultHostResolutionPolicy) ResolveOrchestrationHost(environment.Deployment, *Orchestration) (string, error) {
	return p.Names.Processing, nil
}

func (p DefaultHostResolutionPolicy) ResolveReceiveLocationHost(_ environment.Deployment, t *ReceiveLocationTransport) (string, error) {
	if t.Adapter != nil && t.Adapter.ProtocolType().Capabilities.Has(CapabilityReceiveIsolated) {
		return p.Names.Isolated, nil
	}

	return p.Names.Receiving, nil
}

func (p DefaultHostResolutionPolicy) ResolveSendPortHost(environment.Deployment, *SendPortTransport) (string, error) {
	return p.Names.Transmitting, nil
}

// PlatformHostResolutionPolicy returns the policy applying to transports
// without an explicit one, as dictated by d.Overrides:
//
//   - both HostNamesProvider and HostResolutionPolicyProvider: *AmbiguousOverrideError
//   - HostResolutionPolicyProvider: the provided policy
//   - HostNamesProvider: DefaultHostResolutionPolicy over the provided names
//   - otherwise: DefaultHostResolutionPolicy over DefaultHostNames
//
// The decision is taken on every call and never cached.
func PlatformHostResolutionPolicy(d environment.Deployment) (HostResolutionPolicy, error) {
	names, hasNames := d.Overrides.(HostNamesProvider)
	provider, hasPolicy := d.Overrides.(HostResolutionPolicyProvider)

	switch {
	case hasNames && hasPolicy:
		return nil, &AmbiguousOverrideError{Type: typeName(d.Overrides)}
	case hasPolicy:
		if policy := provider.HostResolutionPolicy(); policy != nil {
			return policy, nil
		}

		return DefaultHostResolutionPolicy{Names: DefaultHostNames}, nil
	case hasNames:
		return DefaultHostResolutionPolicy{Names: hostNamesOf(names)}, nil
	default:
		return DefaultHostResolutionPolicy{Names: DefaultHostNames}, nil
	}
}

func policyOrPlatform(policy HostResolutionPolicy, d environment.Deployment) (HostResolutionPolicy, error) {
	if policy != nil {
		return policy, nil
	}

	return PlatformHostResolutionPolicy(d)
}
