package abi

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/smartir/irabi/errors"
)

// CurrentABIVersion is the schema version stamped into metadata built by
// this package. It versions the metadata shape, not the call payload
// format (see FormatVersion).
const CurrentABIVersion uint16 = 1

// MethodKind distinguishes the contract constructor from ordinary
// callable functions.
type MethodKind string

const (
	MethodFunction    MethodKind = "function"
	MethodConstructor MethodKind = "constructor"
)

// Metadata describes a contract's callable methods. It is constructed
// once, from a function table or a serialized form, and read-only
// thereafter.
type Metadata struct {
	ABIVersion uint16       `json:"abi_version" cbor:"abi_version"`
	Methods    []MethodMeta `json:"methods" cbor:"methods"`
}

// MethodMeta is one callable method: its unqualified name, its kind, and
// its declared input and output types. A method has at most one output.
type MethodMeta struct {
	Name    string       `json:"name" cbor:"name"`
	Kind    MethodKind   `json:"type" cbor:"type"`
	Inputs  []InputMeta  `json:"inputs" cbor:"inputs"`
	Outputs []OutputMeta `json:"outputs" cbor:"outputs"`
}

// InputMeta is one declared parameter. Name is empty for now: the
// function table does not carry parameter names at this layer.
type InputMeta struct {
	Name string `json:"name" cbor:"name"`
	Type string `json:"type" cbor:"type"`
}

// OutputMeta is a method's declared return type.
type OutputMeta struct {
	Type string `json:"type" cbor:"type"`
}

// ConstantMeta describes a named compile-time constant: its ABI type, the
// hex encoding of its value bytes, and a formatted readable form. It is
// not consumed by the encode path.
type ConstantMeta struct {
	Type     string `json:"type" cbor:"type"`
	Data     string `json:"data" cbor:"data"`
	Readable string `json:"readable" cbor:"readable"`
}

// GetMethod returns the first method with the given name, or nil. If
// multiple methods share a name, later ones are unreachable here; the
// container does not enforce uniqueness.
func (m *Metadata) GetMethod(name string) *MethodMeta {
	for i := range m.Methods {
		if m.Methods[i].Name == name {
			return &m.Methods[i]
		}
	}
	return nil
}

// ToJSON renders the metadata as stable, pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "serialize metadata to json")
	}
	return data, nil
}

// FromJSON parses serialized metadata. Malformed input fails the whole
// call; there is no partial recovery.
func FromJSON(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "parse metadata json")
	}
	return &m, nil
}

// cborEncMode uses canonical options so the wire form is deterministic.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("abi: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalWire serializes the metadata to canonical CBOR, the compact
// counterpart of the JSON text form.
func (m *Metadata) MarshalWire() ([]byte, error) {
	data, err := cborEncMode.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "serialize metadata to cbor")
	}
	return data, nil
}

// UnmarshalWire deserializes metadata from its CBOR wire form.
func UnmarshalWire(data []byte) (*Metadata, error) {
	var m Metadata
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "parse metadata cbor")
	}
	return &m, nil
}
