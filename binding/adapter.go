package binding

import (
	"strconv"

	"binding-generator/environment"
)

// Capabilities describes what an adapter protocol supports.
type Capabilities uint32

const (
	CapabilitySupportsReceive    Capabilities = 1 << 0
	CapabilitySupportsSend       Capabilities = 1 << 1
	CapabilityReceiveIsCreatable Capabilities = 1 << 3
	CapabilityRequestResponse    Capabilities = 1 << 7
	// CapabilityReceiveIsolated marks adapters whose receive handler runs in an
	// isolated host.
	CapabilityReceiveIsolated Capabilities = 1 << 8
	CapabilitySupportsSoap    Capabilities = 1 << 9
)

// Has reports whether all of flags are set.
func (c Capabilities) Has(flags Capabilities) bool {
	return c&flags == flags
}

// String returns the decimal form BizTalk writes in binding files.
func (c Capabilities) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// ProtocolType identifies an adapter protocol.
type ProtocolType struct {
	Name               string
	Capabilities       Capabilities
	ConfigurationClsid string
}

// Adapter is the transport-specific configuration of a receive location or
// send port.
type Adapter interface {
	ProtocolType() ProtocolType
	// Address returns the transport address.
	Address(d environment.Deployment) (string, error)
	// TransportTypeData returns the adapter's CustomProps XML.
	TransportTypeData(d environment.Deployment) (string, error)
	// Validate checks the adapter configuration.
	Validate() error
}

// EnvironmentOverrider is implemented by adapters adjusting their
// configuration to the target environment.
type EnvironmentOverrider interface {
	ApplyEnvironmentOverrides(d environment.Deployment) error
}
