package contract

// Contract is a compiled IR contract's callable surface. Functions maps
// qualified names ("Token.transfer") to definitions. Iteration order of
// the map is not deterministic; consumers that need reproducible output
// must sort the keys.
type Contract struct {
	Name      string
	Functions map[string]*FuncDef
}

// FuncDef is one entry in the function table: an ordered parameter type
// list and a return type. A nil or Void return means the function returns
// nothing.
type FuncDef struct {
	Params []Type
	Ret    Type
}

// Type is an IR type as seen at the ABI boundary. String returns the
// textual representation consumed by the abi descriptor grammar.
type Type interface {
	String() string
	IsVoid() bool
}

// Scalar is a primitive IR type named by its ABI keyword: "bool", "str",
// "parampack", "u8" through "u128", "i8" through "i128".
type Scalar string

func (s Scalar) String() string { return string(s) }
func (s Scalar) IsVoid() bool   { return false }

// Common scalar types.
const (
	Bool      Scalar = "bool"
	Str       Scalar = "str"
	Parampack Scalar = "parampack"
	U8        Scalar = "u8"
	I8        Scalar = "i8"
	U16       Scalar = "u16"
	I16       Scalar = "i16"
	U32       Scalar = "u32"
	I32       Scalar = "i32"
	U64       Scalar = "u64"
	I64       Scalar = "i64"
	U128      Scalar = "u128"
	I128      Scalar = "i128"
)

// Array is a homogeneous IR array type.
type Array struct {
	Elem Type
}

func (a Array) String() string { return "[" + a.Elem.String() + "]" }
func (a Array) IsVoid() bool   { return false }

// Map is a string-keyed IR map type. Key is carried for the textual form
// but the ABI only ever uses string keys.
type Map struct {
	Key   Type
	Value Type
}

func (m Map) String() string { return "{" + m.Key.String() + ":" + m.Value.String() + "}" }
func (m Map) IsVoid() bool   { return false }

// Void is the unit return type.
type Void struct{}

func (Void) String() string { return "void" }
func (Void) IsVoid() bool   { return true }

// Returns reports whether the definition produces a value.
func (f *FuncDef) Returns() bool {
	return f.Ret != nil && !f.Ret.IsVoid()
}
