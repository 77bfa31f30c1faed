package loader

import (
	"context"
	"sort"

	"github.com/tetratelabs/wazero"

	"github.com/smartir/irabi/abi"
	"github.com/smartir/irabi/errors"
)

// ABISectionName is the wasm custom section carrying a contract's ABI
// metadata as JSON.
const ABISectionName = "ir-abi"

// ExtractMetadata compiles a contract wasm binary and returns the ABI
// metadata embedded in its custom section.
func ExtractMetadata(ctx context.Context, wasmBytes []byte) (*abi.Metadata, error) {
	runtimeCfg := wazero.NewRuntimeConfig().WithCustomSections(true)
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "compile contract module")
	}
	defer compiled.Close(ctx)

	for _, sec := range compiled.CustomSections() {
		if sec.Name() == ABISectionName {
			meta, err := abi.FromJSON(sec.Data())
			if err != nil {
				return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "parse embedded abi metadata")
			}
			return meta, nil
		}
	}

	return nil, errors.NotFound(errors.PhaseLoad, "custom section", ABISectionName)
}

// Exports returns the sorted names of functions exported by a contract
// wasm binary.
func Exports(ctx context.Context, wasmBytes []byte) ([]string, error) {
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "compile contract module")
	}
	defer compiled.Close(ctx)

	var names []string
	for name := range compiled.ExportedFunctions() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
