package environment

import "cinder/object"

// pseudo-variables describing the call context. The constant ones are
// readable from bootstrap on, the mutable ones (contract state behind
// `self`) only exist inside the top-level scope of a contract body.

func ConstantVars() map[string]object.Definition {
	return map[string]object.Definition{
		"block": &object.Variable{Name: "block", Type: "block"},
		"msg":   &object.Variable{Name: "msg", Type: "message"},
		"tx":    &object.Variable{Name: "tx", Type: "transaction"},
		"chain": &object.Variable{Name: "chain", Type: "chain"},
	}
}

func MutableVars() map[string]object.Definition {
	return map[string]object.Definition{
		"self": &object.Variable{Name: "self", Type: "contract", IsMutable: true},
	}
}
