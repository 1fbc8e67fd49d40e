package modkit

// Module is the common surface for stage modules that expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// Ports returns a module specific port set for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps
// modules expose New(deps Deps) (*Module, error) and satisfy this through a closure
type Builder func(Deps) (Module, error)
