// Package environment provides deployment environment selection and
// environment-dependent value resolution.
//
// A binding generation pass targets exactly one deployment environment.
// Environments are identified by short codes and are totally ordered:
//
//	DEV < BLD < INT < ACC < PRE = PRD
//
// The ordering drives the monotonic "upwards" predicates: a value authored
// ForAcceptanceUpwards applies to ACC, PRE and PRD alike.
//
// The active environment is never read from a global. It travels inside a
// Deployment value handed to the generation entry point and down into every
// resolver call, so passes targeting different environments may run side by
// side in one process.
//
// # Environment-dependent values
//
// Value[T] lets one conceptual setting be authored with several literals:
//
//	func (Settings) ReceiveHost(env environment.Environment) (string, error) {
//		return environment.ValueFor[string](env).
//			ForDevelopmentOrBuild("BizTalkServerApplication").
//			ForAcceptanceUpwards("RxHost").
//			Value()
//	}
//
// Every For* call evaluates its predicate immediately; the last matching call
// wins. Reading a value no predicate matched fails with a NotSupportedError
// naming the setting (the calling function's name) and the environment.
package environment
