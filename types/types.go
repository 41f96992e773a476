package types

import "cinder/object"

// value types the language ships with, the namespace pulls the whole
// map in once at bootstrap
var valueTypes = []string{
	"bool",
	"int128",
	"uint256",
	"decimal",
	"address",
	"bytes32",
	"bytes",
	"string",
	"map",
	"event",
}

// All returns the built-in type registry as name -> definition. A
// fresh map is handed out on every call so a reset can repopulate
// without anyone having aliased the previous one.
func All() map[string]object.Definition {
	defs := make(map[string]object.Definition, len(valueTypes))
	for _, name := range valueTypes {
		defs[name] = &object.Type{Name: name}
	}
	return defs
}
