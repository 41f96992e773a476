package stdlib

import "cinder/object"

// every builtin callable needs an entry here, the namespace pulls the
// whole map in at bootstrap. Names are allowed to overlap reserved
// keywords ("send", "range") because registration happens before any
// scope opens, user code never gets the same pass.
var builtinFunctions = map[string]*object.Builtin{
	"len":          {Name: "len", Params: []string{"any"}, Returns: "int128"},
	"floor":        {Name: "floor", Params: []string{"decimal"}, Returns: "int128"},
	"ceil":         {Name: "ceil", Params: []string{"decimal"}, Returns: "int128"},
	"min":          {Name: "min", Params: []string{"int128", "int128"}, Returns: "int128"},
	"max":          {Name: "max", Params: []string{"int128", "int128"}, Returns: "int128"},
	"sqrt":         {Name: "sqrt", Params: []string{"decimal"}, Returns: "decimal"},
	"concat":       {Name: "concat", Params: []string{"bytes", "bytes"}, Returns: "bytes"},
	"slice":        {Name: "slice", Params: []string{"bytes", "int128", "int128"}, Returns: "bytes"},
	"sha256":       {Name: "sha256", Params: []string{"bytes"}, Returns: "bytes32"},
	"keccak256":    {Name: "keccak256", Params: []string{"bytes"}, Returns: "bytes32"},
	"method_id":    {Name: "method_id", Params: []string{"string"}, Returns: "bytes32"},
	"as_wei_value": {Name: "as_wei_value", Params: []string{"uint256", "string"}, Returns: "uint256"},
	"convert":      {Name: "convert", Params: []string{"any", "type"}, Returns: "any"},
	"empty":        {Name: "empty", Params: []string{"type"}, Returns: "any"},
	"send":         {Name: "send", Params: []string{"address", "uint256"}},
	"range":        {Name: "range", Params: []string{"int128", "int128"}},
}

// BuiltinFunctions returns the registry as name -> definition, fresh
// map per call for the same reason as types.All.
func BuiltinFunctions() map[string]object.Definition {
	defs := make(map[string]object.Definition, len(builtinFunctions))
	for name, fn := range builtinFunctions {
		defs[name] = fn
	}
	return defs
}
