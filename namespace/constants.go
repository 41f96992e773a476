package namespace

// names that can never be used for user declarations while a scope is
// open. Checked lowercased, so `If` and `IF` are caught too. The
// bootstrap providers are exempt, some builtins ("send", "range")
// deliberately reuse entries from this set.
var ReservedKeywords = map[string]struct{}{
	// decorators
	"public":       {},
	"external":     {},
	"internal":     {},
	"payable":      {},
	"nonpayable":   {},
	"constant":     {},
	"nonreentrant": {},
	// control flow
	"if":       {},
	"else":     {},
	"for":      {},
	"while":    {},
	"pass":     {},
	"def":      {},
	"return":   {},
	"continue": {},
	"break":    {},
	"range":    {},
	// special operations
	"send":         {},
	"selfdestruct": {},
	"assert":       {},
	"raise":        {},
	"throw":        {},
	// function names with no mangling
	"init":    {},
	"default": {},
	// environment members
	"chainid":   {},
	"blockhash": {},
	"timestamp": {},
	"balance":   {},
	"codesize":  {},
	// literals
	"true":  {},
	"false": {},
	"none":  {},
	"this":  {},
	// denominations
	"wei":    {},
	"kwei":   {},
	"mwei":   {},
	"gwei":   {},
	"szabo":  {},
	"finney": {},
	"ether":  {},
	// sentinel constants
	"zero_address":  {},
	"empty_bytes32": {},
	"max_int128":    {},
	"min_int128":    {},
	"max_uint256":   {},
	"max_decimal":   {},
	"min_decimal":   {},
	// misc
	"indexed": {},
	"units":   {},
}
