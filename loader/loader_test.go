package loader

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/smartir/irabi/abi"
	irerrors "github.com/smartir/irabi/errors"
)

func uleb(n int) []byte {
	v := uint64(n)
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

// section builds a wasm section: id byte, ULEB128 size, body.
func section(id byte, body []byte) []byte {
	out := append([]byte{id}, uleb(len(body))...)
	return append(out, body...)
}

func customSection(name string, data []byte) []byte {
	body := append(uleb(len(name)), name...)
	body = append(body, data...)
	return section(0, body)
}

// wasmModule assembles a binary from the wasm magic, version, and the
// given sections.
func wasmModule(sections ...[]byte) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}

func TestExtractMetadata(t *testing.T) {
	meta := &abi.Metadata{
		ABIVersion: abi.CurrentABIVersion,
		Methods: []abi.MethodMeta{
			{Name: "init", Kind: abi.MethodConstructor},
			{
				Name:    "transfer",
				Kind:    abi.MethodFunction,
				Inputs:  []abi.InputMeta{{Type: "str"}, {Type: "u64"}},
				Outputs: []abi.OutputMeta{{Type: "bool"}},
			},
		},
	}
	data, err := meta.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	bin := wasmModule(customSection(ABISectionName, data))
	got, err := ExtractMetadata(context.Background(), bin)
	if err != nil {
		t.Fatalf("ExtractMetadata: %v", err)
	}
	if !reflect.DeepEqual(got, meta) {
		t.Errorf("metadata mismatch:\n got %+v\nwant %+v", got, meta)
	}
}

func TestExtractMetadata_MissingSection(t *testing.T) {
	tests := []struct {
		name string
		bin  []byte
	}{
		{"no custom sections", wasmModule()},
		{"other custom section", wasmModule(customSection("name", []byte("x")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractMetadata(context.Background(), tt.bin)
			if !errors.Is(err, &irerrors.Error{Phase: irerrors.PhaseLoad, Kind: irerrors.KindNotFound}) {
				t.Errorf("error = %v, want not_found", err)
			}
		})
	}
}

func TestExtractMetadata_MalformedSection(t *testing.T) {
	bin := wasmModule(customSection(ABISectionName, []byte("not json")))
	_, err := ExtractMetadata(context.Background(), bin)
	if !errors.Is(err, &irerrors.Error{Phase: irerrors.PhaseLoad, Kind: irerrors.KindInvalidData}) {
		t.Errorf("error = %v, want invalid_data", err)
	}
}

func TestExtractMetadata_NotWasm(t *testing.T) {
	_, err := ExtractMetadata(context.Background(), []byte("definitely not wasm"))
	if !errors.Is(err, &irerrors.Error{Phase: irerrors.PhaseLoad, Kind: irerrors.KindInvalidData}) {
		t.Errorf("error = %v, want invalid_data", err)
	}
}

func TestExports(t *testing.T) {
	// One nullary function exported under two names.
	typeSec := section(1, []byte{0x01, 0x60, 0x00, 0x00})
	funcSec := section(3, []byte{0x01, 0x00})
	exportBody := []byte{0x02}
	exportBody = append(exportBody, uleb(1)...)
	exportBody = append(exportBody, 'z', 0x00, 0x00)
	exportBody = append(exportBody, uleb(1)...)
	exportBody = append(exportBody, 'a', 0x00, 0x00)
	exportSec := section(7, exportBody)
	codeSec := section(10, []byte{0x01, 0x02, 0x00, 0x0b})

	bin := wasmModule(typeSec, funcSec, exportSec, codeSec)
	names, err := Exports(context.Background(), bin)
	if err != nil {
		t.Fatalf("Exports: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"a", "z"}) {
		t.Errorf("exports = %v, want [a z]", names)
	}
}

func TestExports_None(t *testing.T) {
	names, err := Exports(context.Background(), wasmModule())
	if err != nil {
		t.Fatalf("Exports: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("exports = %v, want none", names)
	}
}
