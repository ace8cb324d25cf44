// Package endpoints builds backend-specific request paths. Every
// builder is a pure function from structured inputs to a Request;
// nothing here touches the network or the session.
package endpoints

type Backend int

const (
	Legacy Backend = iota
	Telescope
)

func (b Backend) String() string {
	if b == Telescope {
		return "telescope"
	}
	return "legacy"
}

// Request is the transient wire shape handed to the dispatcher. Body
// is only set for POST operations.
type Request struct {
	Backend Backend
	Method  string
	Path    string
	Body    string
}

func get(b Backend, path string) Request {
	return Request{Backend: b, Method: "GET", Path: path}
}
