package model

// Socket is a named endpoint type descriptor. Its identity is the name
// string; extensions use it to judge connection compatibility. The core
// never enforces compatibility itself.
type Socket struct {
	Name string `json:"name"`
}

// NewSocket creates a socket with the given type name. Sockets are
// immutable after construction and may be shared between ports.
func NewSocket(name string) *Socket {
	return &Socket{Name: name}
}

// CompatibleWith reports whether the sockets carry the same type name.
// This is the default policy shipped extensions use; the core never calls
// it.
func (s *Socket) CompatibleWith(other *Socket) bool {
	return other != nil && s.Name == other.Name
}
