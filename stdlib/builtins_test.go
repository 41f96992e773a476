package stdlib

import (
	"testing"

	"cinder/object"
)

func TestBuiltinFunctions(t *testing.T) {
	defs := BuiltinFunctions()

	for _, name := range []string{"len", "floor", "ceil", "concat", "sha256", "send", "range"} {
		def, ok := defs[name]
		if !ok {
			t.Errorf("builtin %q missing from registry", name)
			continue
		}
		if def.Kind() != object.KindBuiltin {
			t.Errorf("%q: Kind()=%q, want %q", name, def.Kind(), object.KindBuiltin)
		}
	}
}

func TestRegistryHandsOutFreshMaps(t *testing.T) {
	a := BuiltinFunctions()
	delete(a, "len")

	if _, ok := BuiltinFunctions()["len"]; !ok {
		t.Error("mutating a returned map must not affect the registry")
	}
}
