// Package binding provides the object graph describing a BizTalk application
// binding and the visitor pipeline that walks it.
//
// An Application owns receive ports (each with receive locations), send ports
// and orchestrations, and may reference other applications. Ports and
// locations carry transports made of an Adapter, a host resolution policy and
// scheduling or retry settings.
//
// # Visitor pipeline
//
// Every walk of the graph goes through a VisitorPipeline, a two-state machine:
//
//   - Preprocessing (initial and terminal): switches to Processing, applies
//     environment overrides, validates the graph, then runs the requested
//     visitor unless it is the validator itself, and finally switches back.
//   - Processing (transient): walks referenced applications, the application,
//     receive ports and their locations, send ports, then orchestrations.
//
// Nested Accept calls made while overrides or validation run are routed to
// Processing, so each external call applies overrides and validates exactly
// once.
//
// # Names
//
// A node Name is either a literal string or a Convention computing the name
// from the node. Convention names are resolved lazily, memoized per node, and
// any convention failure is wrapped into a NamingConventionError.
//
// # Hosts
//
// Transports resolve their host through a HostResolutionPolicy at read time.
// Without an explicit policy the platform policy derived from the deployment
// overrides applies; see PlatformHostResolutionPolicy.
package binding
