package binding

//go:generate go tool stringer -type=NodeKind -trimprefix=Kind -output=nodekind_string.go

// NodeKind identifies the kind of a binding node.
type NodeKind int

const (
	_ NodeKind = iota // zero value is invalid

	KindApplication
	KindReceivePort
	KindReceiveLocation
	KindSendPort
	KindOrchestration
)

// Node is implemented by every binding node.
type Node interface {
	Kind() NodeKind
	// ResolveName returns the node's resolved display name.
	ResolveName() (string, error)
}
