// Package adapter provides the transport configurations of the adapters
// supported in binding graphs: FILE, WCF-BasicHttp and WCF-SQL.
//
// Each adapter is a property bag implementing binding.Adapter. Its
// TransportTypeData is the CustomProps document BizTalk stores for the
// adapter, where every property carries a variant type code:
//
//	<CustomProps><FileMask vt="8">*.xml</FileMask><BatchSize vt="19">20</BatchSize></CustomProps>
//
// Adapters embed Overrides, so environment-specific adjustments can be
// registered on the adapter itself with OnEnvironment.
package adapter
