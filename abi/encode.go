package abi

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/smartir/irabi/errors"
)

// FormatVersion is the leading byte of every call payload. It versions
// the payload line format, independently of the metadata schema's
// ABIVersion.
const FormatVersion byte = 0x00

// ValueEncoder turns a parsed parameter value into its canonical byte
// representation. The byte layout of each variant is the encoder's
// contract; this package treats it as opaque. The codec package provides
// the standard implementation.
type ValueEncoder interface {
	EncodeValue(v *Value) ([]byte, error)
}

// EncodeParams encodes one text token per declared input into a call
// payload: the format version byte followed by each parameter's encoding
// in declaration order.
//
// The token count must match the declared input count exactly; on any
// failure no bytes are returned.
func (m *MethodMeta) EncodeParams(tokens []string, enc ValueEncoder) ([]byte, error) {
	if len(tokens) != len(m.Inputs) {
		return nil, errors.ArityMismatch(m.Name, len(m.Inputs), len(tokens))
	}

	buf := []byte{FormatVersion}
	for i, token := range tokens {
		input := m.Inputs[i]

		desc, err := ParseDescriptor(input.Type)
		if err != nil {
			return nil, atParam(err, i)
		}

		val, err := ParseValue(desc, token)
		if err != nil {
			return nil, atParam(err, i)
		}

		encoded, err := enc.EncodeValue(val)
		if err != nil {
			return nil, atParam(err, i)
		}
		buf = append(buf, encoded...)
	}

	Logger().Debug("encoded call payload",
		zap.String("method", m.Name),
		zap.Int("params", len(tokens)),
		zap.Int("bytes", len(buf)))

	return buf, nil
}

// atParam stamps the failing parameter's position onto a structured
// error. The error itself surfaces verbatim otherwise.
func atParam(err error, i int) error {
	if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 {
		e.Path = []string{"param[" + strconv.Itoa(i) + "]"}
	}
	return err
}
