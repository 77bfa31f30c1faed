package codec

import (
	"encoding/binary"

	"github.com/smartir/irabi/errors"
)

// reader tracks a position in an encoded payload.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) byte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.OutOfBounds(errors.PhaseDecode, 1, 0)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) take(n int) ([]byte, error) {
	// n comes from untrusted ULEB128 lengths and can be negative after
	// an int conversion.
	if n < 0 || r.remaining() < n {
		return nil, errors.OutOfBounds(errors.PhaseDecode, n, r.remaining())
	}
	bs := r.data[r.pos : r.pos+n]
	r.pos += n
	return bs, nil
}

// uleb reads an unsigned LEB128 encoded uint64.
func (r *reader) uleb() (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.byte()
		if err != nil {
			return 0, err
		}
		if shift == 63 && b > 1 {
			return 0, errors.InvalidData(errors.PhaseDecode, "uleb128 value overflows 64 bits")
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift > 63 {
			return 0, errors.InvalidData(errors.PhaseDecode, "uleb128 value overflows 64 bits")
		}
	}
}

func (r *reader) u16le() (uint16, error) {
	bs, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (r *reader) u32le() (uint32, error) {
	bs, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (r *reader) u64le() (uint64, error) {
	bs, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(bs), nil
}
