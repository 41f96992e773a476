package namespace

import (
	"fmt"
	"regexp"
	"strings"

	"cinder/environment"
	"cinder/internals"
	"cinder/object"
	"cinder/stdlib"
	"cinder/types"
	"cinder/vm"
)

// Namespace is the scoped symbol table for one compilation unit. Keys
// are unique at all times, inserting an existing key is rejected and
// never overwrites. One instance per unit, built with New and threaded
// through the analysis passes explicitly.
//
// Instances compare by identity only: other passes key caches on the
// pointer, so two namespaces are never "equal" no matter what they
// contain.
type Namespace struct {
	defs   map[string]object.Definition
	scopes []map[string]struct{}
}

var identRegex = regexp.MustCompile(`^[_a-zA-Z][a-zA-Z0-9_]*$`)

func New() *Namespace {
	ns := &Namespace{
		defs: make(map[string]object.Definition),
	}
	ns.bootstrap()
	return ns
}

// bootstrap installs the depth-0 bindings from the type registry, the
// constant environment and the builtin registry. The scope stack is
// empty here, so nothing gets recorded in a scope set and the keyword
// check is suspended, which is what lets builtins like `send` register
// under names user code can never take.
func (ns *Namespace) bootstrap() {
	ns.mustInsertAll(types.All())
	ns.mustInsertAll(environment.ConstantVars())
	ns.mustInsertAll(stdlib.BuiltinFunctions())
}

func (ns *Namespace) mustInsertAll(defs map[string]object.Definition) {
	for name, def := range defs {
		if err := ns.Insert(name, def); err != nil {
			// the registries are static, a rejection here means two
			// providers claim the same name
			panic(&internals.InternalError{Msg: "bootstrap: " + err.Error()})
		}
	}
}

// Insert binds name to def after running the validation pipeline. When
// a scope is open the binding is recorded against the innermost one
// and dies with it, otherwise it is permanent for this instance. The
// table is left untouched when any rule rejects the name.
func (ns *Namespace) Insert(name string, def object.Definition) error {
	if err := ns.validate(name); err != nil {
		return err
	}
	if len(ns.scopes) > 0 {
		ns.scopes[len(ns.scopes)-1][name] = struct{}{}
	}
	ns.defs[name] = def
	return nil
}

// Lookup resolves name to its live binding.
func (ns *Namespace) Lookup(name string) (object.Definition, error) {
	def, ok := ns.defs[name]
	if !ok {
		return nil, &internals.UndeclaredError{Name: name}
	}
	return def, nil
}

// Has reports whether name is currently bound.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.defs[name]
	return ok
}

// Depth is the number of currently open scopes, 0 means bootstrap.
func (ns *Namespace) Depth() int {
	return len(ns.scopes)
}

// Bindings copies out the current name -> definition view, mostly for
// diagnostics and tests.
func (ns *Namespace) Bindings() map[string]object.Definition {
	out := make(map[string]object.Definition, len(ns.defs))
	for name, def := range ns.defs {
		out[name] = def
	}
	return out
}

// Reset clears everything, open scopes included, and reruns the
// bootstrap population. Same effect as building a fresh instance in
// place, used between independent compilation units.
func (ns *Namespace) Reset() {
	ns.defs = make(map[string]object.Definition)
	ns.scopes = nil
	ns.bootstrap()
}

func (ns *Namespace) validate(name string) error {
	if !identRegex.MatchString(name) {
		return &internals.StructureError{
			Msg: fmt.Sprintf("'%s' contains invalid character(s)", name),
		}
	}
	if prev, ok := ns.defs[name]; ok {
		if !ns.inOpenScope(name) {
			return &internals.CollisionError{Name: name, Builtin: true}
		}
		return &internals.CollisionError{Name: name, Prev: prev}
	}
	if len(ns.scopes) == 0 {
		// bootstrap phase, registries may claim reserved names
		return nil
	}
	if _, ok := ReservedKeywords[strings.ToLower(name)]; ok {
		return &internals.StructureError{
			Msg: fmt.Sprintf("'%s' is a reserved keyword", name),
		}
	}
	if vm.IsOpcode(strings.ToUpper(name)) {
		return &internals.StructureError{
			Msg: fmt.Sprintf("'%s' is a reserved keyword", name),
		}
	}
	return nil
}

// inOpenScope reports whether name was recorded by any currently open
// scope. A bound name that is in no scope set is a depth-0 builtin.
func (ns *Namespace) inOpenScope(name string) bool {
	for _, scope := range ns.scopes {
		if _, ok := scope[name]; ok {
			return true
		}
	}
	return false
}
