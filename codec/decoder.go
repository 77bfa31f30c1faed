package codec

import (
	"github.com/smartir/irabi/abi"
	"github.com/smartir/irabi/errors"
)

// DecodeValue decodes one tagged value from the front of data, returning
// the value and the number of bytes consumed.
func (c *Codec) DecodeValue(data []byte) (*abi.Value, int, error) {
	r := &reader{data: data}
	v, err := readValue(r)
	if err != nil {
		return nil, 0, err
	}
	return v, r.pos, nil
}

// DecodePayload decodes a full call payload: the format version byte
// followed by tagged parameter values until the buffer is exhausted.
func (c *Codec) DecodePayload(payload []byte) ([]abi.Value, error) {
	if len(payload) == 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, "empty payload")
	}
	if payload[0] != abi.FormatVersion {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("unsupported payload format version 0x%02x", payload[0]).
			Build()
	}

	r := &reader{data: payload, pos: 1}
	var values []abi.Value
	for r.remaining() > 0 {
		v, err := readValue(r)
		if err != nil {
			return nil, err
		}
		values = append(values, *v)
	}
	return values, nil
}

func readValue(r *reader) (*abi.Value, error) {
	tagByte, err := r.byte()
	if err != nil {
		return nil, err
	}
	kind, ok := tagKinds[Tag(tagByte)]
	if !ok {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("unknown value tag 0x%02x", tagByte).
			Build()
	}

	switch kind {
	case abi.KindBool:
		b, err := r.byte()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, Bool: b != 0}, nil

	case abi.KindU8:
		b, err := r.byte()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, U64: uint64(b)}, nil
	case abi.KindU16:
		n, err := r.u16le()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, U64: uint64(n)}, nil
	case abi.KindU32:
		n, err := r.u32le()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, U64: uint64(n)}, nil
	case abi.KindU64:
		n, err := r.u64le()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, U64: n}, nil

	case abi.KindI8:
		b, err := r.byte()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, I64: int64(int8(b))}, nil
	case abi.KindI16:
		n, err := r.u16le()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, I64: int64(int16(n))}, nil
	case abi.KindI32:
		n, err := r.u32le()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, I64: int64(int32(n))}, nil
	case abi.KindI64:
		n, err := r.u64le()
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, I64: int64(n)}, nil

	case abi.KindU128, abi.KindI128:
		bs, err := r.take(16)
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, Big: get128(bs, kind == abi.KindI128)}, nil

	case abi.KindStr:
		n, err := r.uleb()
		if err != nil {
			return nil, err
		}
		bs, err := r.take(int(n))
		if err != nil {
			return nil, err
		}
		return &abi.Value{Kind: kind, Str: string(bs)}, nil

	case abi.KindParampack:
		n, err := r.uleb()
		if err != nil {
			return nil, err
		}
		bs, err := r.take(int(n))
		if err != nil {
			return nil, err
		}
		out := make([]byte, n)
		copy(out, bs)
		return &abi.Value{Kind: kind, Bytes: out}, nil

	case abi.KindArray:
		n, err := r.uleb()
		if err != nil {
			return nil, err
		}
		// Every element occupies at least its tag byte, so the bytes
		// left bound any honest count; a lying count fails below
		// without a huge preallocation here.
		elems := make([]abi.Value, 0, capHint(n, r.remaining()))
		for i := uint64(0); i < n; i++ {
			v, err := readValue(r)
			if err != nil {
				return nil, err
			}
			elems = append(elems, *v)
		}
		return &abi.Value{Kind: kind, Elems: elems}, nil

	case abi.KindMap:
		n, err := r.uleb()
		if err != nil {
			return nil, err
		}
		m := make(map[string]abi.Value, capHint(n, r.remaining()))
		for i := uint64(0); i < n; i++ {
			klen, err := r.uleb()
			if err != nil {
				return nil, err
			}
			kbs, err := r.take(int(klen))
			if err != nil {
				return nil, err
			}
			v, err := readValue(r)
			if err != nil {
				return nil, err
			}
			m[string(kbs)] = *v
		}
		return &abi.Value{Kind: kind, Map: m}, nil

	default:
		return nil, errors.UnsupportedType(kind.String())
	}
}

// capHint clamps an untrusted declared element count to the bytes left
// in the payload.
func capHint(n uint64, remaining int) int {
	if n > uint64(remaining) {
		return remaining
	}
	return int(n)
}
