package namespace

import (
	"cinder/environment"
	"cinder/internals"
)

// Scope is the guard handed out by EnterScope. Exit must run exactly
// once on every path out of the lexical block it covers, in practice:
//
//	scope := ns.EnterScope()
//	defer scope.Exit()
//
// The guard never swallows errors raised inside the block, it only
// guarantees the names declared there are unbound before control
// leaves it.
type Scope struct {
	ns       *Namespace
	released bool
}

// EnterScope opens a new lexical nesting level. The first scope opened
// on a fresh namespace also pulls in the mutable environment (`self`),
// those names live exactly as long as the outermost scope does.
func (ns *Namespace) EnterScope() *Scope {
	ns.scopes = append(ns.scopes, make(map[string]struct{}))
	if len(ns.scopes) == 1 {
		ns.mustInsertAll(environment.MutableVars())
	}
	return &Scope{ns: ns}
}

// Exit closes the innermost scope and unbinds every name recorded in
// it, nothing else. Exiting with no scope open, or releasing the same
// guard twice, means the caller's enter/exit calls went out of sync
// with the source nesting. That is a compiler bug, not user input, so
// it panics instead of returning an error.
func (s *Scope) Exit() {
	if s.released {
		panic(&internals.InternalError{Msg: "scope guard released twice"})
	}
	s.released = true

	ns := s.ns
	if len(ns.scopes) == 0 {
		panic(&internals.InternalError{Msg: "scope exit with no open scope"})
	}
	last := len(ns.scopes) - 1
	for name := range ns.scopes[last] {
		delete(ns.defs, name)
	}
	ns.scopes = ns.scopes[:last]
}
