package abi

import (
	"strings"

	"github.com/smartir/irabi/errors"
)

// Kind discriminates the variants of a parsed type descriptor.
type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindU128
	KindI128
	KindStr
	KindParampack
	KindArray
	KindMap
)

var kindNames = [...]string{
	KindBool:      "bool",
	KindU8:        "u8",
	KindI8:        "i8",
	KindU16:       "u16",
	KindI16:       "i16",
	KindU32:       "u32",
	KindI32:       "i32",
	KindU64:       "u64",
	KindI64:       "i64",
	KindU128:      "u128",
	KindI128:      "i128",
	KindStr:       "str",
	KindParampack: "parampack",
	KindArray:     "array",
	KindMap:       "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether k is a non-composite kind.
func (k Kind) IsScalar() bool {
	return k < KindArray
}

// IsInteger reports whether k is a fixed-width integer kind.
func (k Kind) IsInteger() bool {
	return k >= KindU8 && k <= KindI128
}

// Signed reports whether k is a signed integer kind.
func (k Kind) Signed() bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64, KindI128:
		return true
	default:
		return false
	}
}

// Bits returns the width of an integer kind, or 0 for non-integers.
func (k Kind) Bits() int {
	switch k {
	case KindU8, KindI8:
		return 8
	case KindU16, KindI16:
		return 16
	case KindU32, KindI32:
		return 32
	case KindU64, KindI64:
		return 64
	case KindU128, KindI128:
		return 128
	default:
		return 0
	}
}

// scalarKinds maps type-name keywords to their kinds. Keywords are
// case-sensitive; "string" is an accepted alias for "str".
var scalarKinds = map[string]Kind{
	"bool":      KindBool,
	"str":       KindStr,
	"string":    KindStr,
	"parampack": KindParampack,
	"u8":        KindU8,
	"i8":        KindI8,
	"u16":       KindU16,
	"i16":       KindI16,
	"u32":       KindU32,
	"i32":       KindI32,
	"u64":       KindU64,
	"i64":       KindI64,
	"u128":      KindU128,
	"i128":      KindI128,
}

// Descriptor is the parsed, structural form of a parameter type name.
// Elem is the element type for arrays and the value type for maps; it is
// nil for scalars. Map keys are always strings and carry no descriptor.
type Descriptor struct {
	Elem *Descriptor
	Kind Kind
}

// ParseDescriptor parses a textual type name into a Descriptor.
//
// The grammar recurses exactly one level: array elements and map values
// must be scalars. The key part of a map type name is located by the
// first ':' and is never itself parsed.
func ParseDescriptor(typeName string) (*Descriptor, error) {
	if k, ok := scalarKinds[typeName]; ok {
		return &Descriptor{Kind: k}, nil
	}

	if strings.HasPrefix(typeName, "[") {
		if !strings.HasSuffix(typeName, "]") {
			return nil, errors.UnsupportedType(typeName)
		}
		elem, ok := scalarKinds[typeName[1:len(typeName)-1]]
		if !ok {
			return nil, errors.UnsupportedType(typeName)
		}
		return &Descriptor{Kind: KindArray, Elem: &Descriptor{Kind: elem}}, nil
	}

	if strings.HasPrefix(typeName, "{") {
		if !strings.HasSuffix(typeName, "}") {
			return nil, errors.UnsupportedType(typeName)
		}
		sep := strings.IndexByte(typeName, ':')
		if sep < 0 {
			return nil, errors.UnsupportedType(typeName)
		}
		elem, ok := scalarKinds[typeName[sep+1:len(typeName)-1]]
		if !ok {
			return nil, errors.UnsupportedType(typeName)
		}
		return &Descriptor{Kind: KindMap, Elem: &Descriptor{Kind: elem}}, nil
	}

	return nil, errors.UnsupportedType(typeName)
}
