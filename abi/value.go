package abi

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/smartir/irabi/errors"
)

// 128-bit integer bounds.
var (
	maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Value is a parsed, typed parameter value. Exactly the fields implied by
// Kind are meaningful: Bool for bool, Str for strings, Bytes for
// parampack, U64/I64 for integers up to 64 bits, Big for 128-bit
// integers, Elems for arrays, Map for maps.
//
// Values are transient: they exist only between parsing and encoding and
// are never persisted.
type Value struct {
	Big   *big.Int
	Map   map[string]Value
	Str   string
	Bytes []byte
	Elems []Value
	U64   uint64
	I64   int64
	Bool  bool
	Kind  Kind
}

// ParseValue parses a text token against a descriptor.
//
// The first invalid element or pair aborts the whole call; no partial
// value is ever returned.
func ParseValue(d *Descriptor, token string) (*Value, error) {
	switch d.Kind {
	case KindBool:
		// Anything other than "true" is false, malformed tokens included.
		return &Value{Kind: KindBool, Bool: token == "true"}, nil

	case KindStr:
		return &Value{Kind: KindStr, Str: token}, nil

	case KindParampack:
		bs, err := hex.DecodeString(token)
		if err != nil {
			return nil, errors.HexDecode(token, err)
		}
		return &Value{Kind: KindParampack, Bytes: bs}, nil

	case KindU8, KindU16, KindU32, KindU64:
		n, err := strconv.ParseUint(token, 10, d.Kind.Bits())
		if err != nil {
			return nil, errors.NumberFormat(d.Kind.String(), token, err)
		}
		return &Value{Kind: d.Kind, U64: n}, nil

	case KindI8, KindI16, KindI32, KindI64:
		n, err := strconv.ParseInt(token, 10, d.Kind.Bits())
		if err != nil {
			return nil, errors.NumberFormat(d.Kind.String(), token, err)
		}
		return &Value{Kind: d.Kind, I64: n}, nil

	case KindU128, KindI128:
		n, err := parseBig(d.Kind, token)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: d.Kind, Big: n}, nil

	case KindArray:
		// Splitting "" on ',' yields one empty piece, so an empty token
		// parses as a single-element array, not an empty one.
		pieces := strings.Split(token, ",")
		elems := make([]Value, 0, len(pieces))
		for _, piece := range pieces {
			v, err := ParseValue(d.Elem, piece)
			if err != nil {
				return nil, err
			}
			elems = append(elems, *v)
		}
		return &Value{Kind: KindArray, Elems: elems}, nil

	case KindMap:
		pairs := strings.Split(token, ",")
		m := make(map[string]Value, len(pairs))
		for _, pair := range pairs {
			parts := strings.Split(pair, ":")
			if len(parts) < 2 {
				return nil, errors.InvalidMapEntry(pair)
			}
			// Pieces beyond key and value are ignored; duplicate keys
			// overwrite earlier entries.
			v, err := ParseValue(d.Elem, parts[1])
			if err != nil {
				return nil, err
			}
			m[parts[0]] = *v
		}
		return &Value{Kind: KindMap, Map: m}, nil

	default:
		return nil, errors.UnsupportedType(d.Kind.String())
	}
}

// parseBig parses a base-10 token into a range-checked 128-bit integer.
func parseBig(kind Kind, token string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return nil, errors.NumberFormat(kind.String(), token, nil)
	}
	if kind == KindU128 {
		if n.Sign() < 0 || n.Cmp(maxU128) > 0 {
			return nil, errors.New(errors.PhaseParse, errors.KindNumberFormat).
				TypeName(kind.String()).
				Token(token).
				Detail("value out of range").
				Build()
		}
		return n, nil
	}
	if n.Cmp(minI128) < 0 || n.Cmp(maxI128) > 0 {
		return nil, errors.New(errors.PhaseParse, errors.KindNumberFormat).
			TypeName(kind.String()).
			Token(token).
			Detail("value out of range").
			Build()
	}
	return n, nil
}
