package editor

// Snapshot is the flat, order-preserving import/export payload: the
// store's nodes and connections at a point in time, in collection order.
// There is no cross-referencing beyond the identifiers each connection
// already embeds, so the structure encodes directly to self-describing
// formats. Versioning is a collaborator concern.
type Snapshot[T Entity, C Entity] struct {
	Nodes       []T `json:"nodes"`
	Connections []C `json:"connections"`
}
