package editor

// Kind tags the variant of an Event flowing through the editor's scope.
// Bare verbs are vetoable pre-events; past-tense forms are informational
// post-events; KindClearCancelled fires only when the clear pre-event was
// vetoed.
type Kind string

const (
	KindNodeCreate  Kind = "nodecreate"
	KindNodeCreated Kind = "nodecreated"
	KindNodeRemove  Kind = "noderemove"
	KindNodeRemoved Kind = "noderemoved"

	KindConnectionCreate  Kind = "connectioncreate"
	KindConnectionCreated Kind = "connectioncreated"
	KindConnectionRemove  Kind = "connectionremove"
	KindConnectionRemoved Kind = "connectionremoved"

	KindClear          Kind = "clear"
	KindClearCancelled Kind = "clearcancelled"
	KindCleared        Kind = "cleared"

	KindImport   Kind = "import"
	KindImported Kind = "imported"

	KindExport   Kind = "export"
	KindExported Kind = "exported"
)

// Pre reports whether k is a vetoable pre-event.
func (k Kind) Pre() bool {
	switch k {
	case KindNodeCreate, KindNodeRemove, KindConnectionCreate,
		KindConnectionRemove, KindClear, KindImport, KindExport:
		return true
	}
	return false
}

// Event is the tagged variant dispatched for every store operation. Only
// the payload field matching the Kind is populated: Node for node events,
// Connection for connection events, Snapshot for import/export events, and
// none of them for the clear family.
type Event[T Entity, C Entity] struct {
	Kind       Kind
	Node       T
	Connection C
	Snapshot   *Snapshot[T, C]
}
