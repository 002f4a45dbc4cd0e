// Package naming provides the conventional artifact names used by binding
// graphs.
//
// A Convention is assigned as the Name of a binding node with
// binding.Conventional; the name is computed when first read:
//
//	app.AddReceivePorts(binding.NewReceivePort(binding.Conventional(&naming.Convention[Party, Subject]{
//		Party:   "Partner",
//		Subject: "Invoice",
//	})))
//
// Names follow the pattern
//
//	<Application>.<RP|RL|SP><1|2>.<Party>.<Subject>[.<Adapter>][.<Format>]
//
// where 1 and 2 denote one-way and two-way ports. Receive locations inherit
// the party and subject of their port when they leave them empty.
package naming
