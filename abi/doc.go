// Package abi converts human-supplied text arguments into canonical call
// payloads for compiled IR contracts, and builds the ABI metadata that
// describes a contract's callable methods.
//
// # Type Grammar
//
// Parameter and return types are named by a small textual grammar:
//
//	Scalar       bool, str (alias string), parampack,
//	             u8 i8 u16 i16 u32 i32 u64 i64 u128 i128
//	Array        [T]      homogeneous array over a scalar T
//	Map          {K:V}    string-keyed map with scalar value type V
//
// Composites do not nest: the element of an array and the value of a map
// must be scalars. The map key type between '{' and the first ':' is
// carried in the textual form but never validated; ABI map keys are
// always strings.
//
// ParseDescriptor turns a type name into a Descriptor, a closed tagged
// variant that downstream code switches over exhaustively. Unknown type
// names fail with errors.KindUnsupportedType.
//
// # Value Parsing
//
// ParseValue parses one text token against a Descriptor:
//
//	bool         "true" is true; any other token is false
//	str          copied verbatim, no escaping
//	parampack    hex text, decoded to raw bytes
//	integers     base-10 only, exact-width range checked
//	[T]          token split on ',', each piece parsed as T
//	{K:V}        "k1:v1,k2:v2,..." pairs; last write wins on duplicates
//
// Parsing fails fast: the first invalid element aborts the call and no
// partial value is returned.
//
// # Encoding Flow
//
//  1. Metadata.GetMethod(name) -> *MethodMeta
//  2. MethodMeta.EncodeParams(tokens, enc) -> payload bytes
//
// The payload is one FormatVersion byte followed by each parameter's
// encoding in declaration order. The byte layout of individual values is
// delegated to a ValueEncoder; the codec package provides the standard
// implementation.
//
// # Metadata
//
// FromContract walks a contract's function table in sorted qualified-name
// order (the table itself has no deterministic order) and produces one
// MethodMeta per function. The method name is the unqualified suffix after
// the last '.'; a method named "init" is classified as the constructor.
//
// Metadata serializes to pretty-printed JSON (ToJSON/FromJSON) and to
// canonical CBOR (MarshalWire/UnmarshalWire). Method lookup is a linear
// scan returning the first match; if two methods share a name the later
// one is unreachable through GetMethod.
//
// # Thread Safety
//
// All functions are pure: no shared mutable state, no I/O. Values and
// metadata may be used from multiple goroutines as long as each call owns
// its inputs.
package abi
