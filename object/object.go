package object

import (
	"fmt"
	"strings"
)

type DefinitionKind = string

const (
	KindType     DefinitionKind = "type"
	KindConstant DefinitionKind = "constant"
	KindBuiltin  DefinitionKind = "builtin function"
	KindVariable DefinitionKind = "variable"
)

// Definition is a single meaning bound to a name in the namespace:
// a type, a constant, a builtin function or a variable. The namespace
// never looks inside one, it only stores them and prints them back in
// diagnostics.
type Definition interface {
	Kind() DefinitionKind
	Inspect() string
}

type Type struct {
	Name string
}

func (t *Type) Kind() DefinitionKind { return KindType }
func (t *Type) Inspect() string      { return fmt.Sprintf("type %s", t.Name) }

type Constant struct {
	Name  string
	Type  string
	Value string
}

func (c *Constant) Kind() DefinitionKind { return KindConstant }
func (c *Constant) Inspect() string {
	return fmt.Sprintf("const %s: %s = %s", c.Name, c.Type, c.Value)
}

type Builtin struct {
	Name    string
	Params  []string
	Returns string
}

func (b *Builtin) Kind() DefinitionKind { return KindBuiltin }
func (b *Builtin) Inspect() string {
	sig := fmt.Sprintf("%s(%s)", b.Name, strings.Join(b.Params, ", "))
	if b.Returns != "" {
		sig += " -> " + b.Returns
	}
	return sig
}

type Variable struct {
	Name      string
	Type      string
	IsMutable bool
}

func (v *Variable) Kind() DefinitionKind { return KindVariable }
func (v *Variable) Inspect() string {
	if v.IsMutable {
		return fmt.Sprintf("var %s: %s", v.Name, v.Type)
	}
	return fmt.Sprintf("let %s: %s", v.Name, v.Type)
}
