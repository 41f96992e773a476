package vm

// instruction table for the target vm, mnemonics are always uppercase.
// gas numbers are the base costs, dynamic parts are charged by codegen.

type OpcodeInfo struct {
	Code byte
	Gas  int
}

var Opcodes = map[string]OpcodeInfo{
	"STOP":           {0x00, 0},
	"ADD":            {0x01, 3},
	"MUL":            {0x02, 5},
	"SUB":            {0x03, 3},
	"DIV":            {0x04, 5},
	"SDIV":           {0x05, 5},
	"MOD":            {0x06, 5},
	"SMOD":           {0x07, 5},
	"ADDMOD":         {0x08, 8},
	"MULMOD":         {0x09, 8},
	"EXP":            {0x0a, 10},
	"SIGNEXTEND":     {0x0b, 5},
	"LT":             {0x10, 3},
	"GT":             {0x11, 3},
	"SLT":            {0x12, 3},
	"SGT":            {0x13, 3},
	"EQ":             {0x14, 3},
	"ISZERO":         {0x15, 3},
	"AND":            {0x16, 3},
	"OR":             {0x17, 3},
	"XOR":            {0x18, 3},
	"NOT":            {0x19, 3},
	"BYTE":           {0x1a, 3},
	"SHL":            {0x1b, 3},
	"SHR":            {0x1c, 3},
	"SAR":            {0x1d, 3},
	"SHA3":           {0x20, 30},
	"ADDRESS":        {0x30, 2},
	"BALANCE":        {0x31, 400},
	"ORIGIN":         {0x32, 2},
	"CALLER":         {0x33, 2},
	"CALLVALUE":      {0x34, 2},
	"CALLDATALOAD":   {0x35, 3},
	"CALLDATASIZE":   {0x36, 2},
	"CALLDATACOPY":   {0x37, 3},
	"CODESIZE":       {0x38, 2},
	"CODECOPY":       {0x39, 3},
	"GASPRICE":       {0x3a, 2},
	"EXTCODESIZE":    {0x3b, 700},
	"EXTCODECOPY":    {0x3c, 700},
	"RETURNDATASIZE": {0x3d, 2},
	"RETURNDATACOPY": {0x3e, 3},
	"BLOCKHASH":      {0x40, 20},
	"COINBASE":       {0x41, 2},
	"TIMESTAMP":      {0x42, 2},
	"NUMBER":         {0x43, 2},
	"DIFFICULTY":     {0x44, 2},
	"GASLIMIT":       {0x45, 2},
	"POP":            {0x50, 2},
	"MLOAD":          {0x51, 3},
	"MSTORE":         {0x52, 3},
	"MSTORE8":        {0x53, 3},
	"SLOAD":          {0x54, 200},
	"SSTORE":         {0x55, 20000},
	"JUMP":           {0x56, 8},
	"JUMPI":          {0x57, 10},
	"PC":             {0x58, 2},
	"MSIZE":          {0x59, 2},
	"GAS":            {0x5a, 2},
	"JUMPDEST":       {0x5b, 1},
	"LOG0":           {0xa0, 375},
	"LOG1":           {0xa1, 750},
	"LOG2":           {0xa2, 1125},
	"LOG3":           {0xa3, 1500},
	"LOG4":           {0xa4, 1875},
	"CREATE":         {0xf0, 32000},
	"CALL":           {0xf1, 700},
	"CALLCODE":       {0xf2, 700},
	"RETURN":         {0xf3, 0},
	"DELEGATECALL":   {0xf4, 700},
	"STATICCALL":     {0xfa, 700},
	"REVERT":         {0xfd, 0},
	"SELFDESTRUCT":   {0xff, 5000},
}

// IsOpcode reports whether name is a known mnemonic, the caller is
// expected to uppercase first.
func IsOpcode(name string) bool {
	_, ok := Opcodes[name]
	return ok
}
