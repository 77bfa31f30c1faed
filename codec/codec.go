package codec

import (
	"math/big"
	"sort"

	"github.com/smartir/irabi/abi"
	"github.com/smartir/irabi/errors"
)

// Tag identifies the runtime type of an encoded value.
type Tag byte

const (
	TagBool      Tag = 0
	TagU8        Tag = 1
	TagI8        Tag = 2
	TagU16       Tag = 3
	TagI16       Tag = 4
	TagU32       Tag = 5
	TagI32       Tag = 6
	TagU64       Tag = 7
	TagI64       Tag = 8
	TagU128      Tag = 9
	TagI128      Tag = 10
	TagStr       Tag = 11
	TagParampack Tag = 12
	TagArray     Tag = 13
	TagMap       Tag = 14
)

var kindTags = map[abi.Kind]Tag{
	abi.KindBool:      TagBool,
	abi.KindU8:        TagU8,
	abi.KindI8:        TagI8,
	abi.KindU16:       TagU16,
	abi.KindI16:       TagI16,
	abi.KindU32:       TagU32,
	abi.KindI32:       TagI32,
	abi.KindU64:       TagU64,
	abi.KindI64:       TagI64,
	abi.KindU128:      TagU128,
	abi.KindI128:      TagI128,
	abi.KindStr:       TagStr,
	abi.KindParampack: TagParampack,
	abi.KindArray:     TagArray,
	abi.KindMap:       TagMap,
}

var tagKinds = map[Tag]abi.Kind{}

func init() {
	for k, t := range kindTags {
		tagKinds[t] = k
	}
}

// two128 is 1<<128, used for two's complement conversion.
var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// Codec implements abi.ValueEncoder with the tagged binary layout
// described in the package documentation. It is stateless and safe for
// concurrent use.
type Codec struct{}

// New returns the standard value codec.
func New() *Codec {
	return &Codec{}
}

// EncodeValue returns the canonical byte representation of a parsed
// parameter value.
func (c *Codec) EncodeValue(v *abi.Value) ([]byte, error) {
	w := &writer{}
	if err := encodeValue(w, v); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

func encodeValue(w *writer, v *abi.Value) error {
	tag, ok := kindTags[v.Kind]
	if !ok {
		return errors.UnsupportedType(v.Kind.String())
	}
	w.byte(byte(tag))

	switch v.Kind {
	case abi.KindBool:
		if v.Bool {
			w.byte(1)
		} else {
			w.byte(0)
		}

	case abi.KindU8:
		w.byte(byte(v.U64))
	case abi.KindU16:
		w.u16le(uint16(v.U64))
	case abi.KindU32:
		w.u32le(uint32(v.U64))
	case abi.KindU64:
		w.u64le(v.U64)

	case abi.KindI8:
		w.byte(byte(int8(v.I64)))
	case abi.KindI16:
		w.u16le(uint16(int16(v.I64)))
	case abi.KindI32:
		w.u32le(uint32(int32(v.I64)))
	case abi.KindI64:
		w.u64le(uint64(v.I64))

	case abi.KindU128, abi.KindI128:
		if v.Big == nil {
			return errors.InvalidData(errors.PhaseEncode, "128-bit value missing magnitude")
		}
		put128(w, v.Big)

	case abi.KindStr:
		w.name(v.Str)

	case abi.KindParampack:
		w.uleb(uint64(len(v.Bytes)))
		w.raw(v.Bytes)

	case abi.KindArray:
		w.uleb(uint64(len(v.Elems)))
		for i := range v.Elems {
			if err := encodeValue(w, &v.Elems[i]); err != nil {
				return err
			}
		}

	case abi.KindMap:
		keys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		w.uleb(uint64(len(keys)))
		for _, k := range keys {
			entry := v.Map[k]
			w.name(k)
			if err := encodeValue(w, &entry); err != nil {
				return err
			}
		}
	}

	return nil
}

// put128 writes a 16-byte little-endian two's complement integer.
func put128(w *writer, n *big.Int) {
	v := n
	if n.Sign() < 0 {
		v = new(big.Int).Add(n, two128)
	}
	be := v.Bytes()
	var out [16]byte
	for i := 0; i < len(be); i++ {
		out[i] = be[len(be)-1-i]
	}
	w.raw(out[:])
}

// get128 reads a 16-byte little-endian integer, interpreting the high
// bit as a sign when signed is set.
func get128(bs []byte, signed bool) *big.Int {
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[i] = bs[15-i]
	}
	n := new(big.Int).SetBytes(be)
	if signed && bs[15]&0x80 != 0 {
		n.Sub(n, two128)
	}
	return n
}
