package abi

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/smartir/irabi/contract"
)

// ConstructorName is the source-level name of the distinguished method
// invoked once at contract instantiation.
const ConstructorName = "init"

// FromContract builds ABI metadata from a compiled contract's function
// table.
//
// The table's iteration order is not deterministic, so functions are
// visited in sorted qualified-name order to keep the output reproducible
// and diffable across builds.
func FromContract(c *contract.Contract) *Metadata {
	names := make([]string, 0, len(c.Functions))
	for name := range c.Functions {
		names = append(names, name)
	}
	sort.Strings(names)

	methods := make([]MethodMeta, 0, len(names))
	for _, qualified := range names {
		def := c.Functions[qualified]

		var inputs []InputMeta
		for _, p := range def.Params {
			inputs = append(inputs, InputMeta{Name: "", Type: p.String()})
		}

		var outputs []OutputMeta
		if def.Returns() {
			outputs = append(outputs, OutputMeta{Type: def.Ret.String()})
		}

		// Strip module qualification: "Token.transfer" -> "transfer".
		name := qualified
		if i := strings.LastIndex(qualified, "."); i >= 0 {
			name = qualified[i+1:]
		}

		kind := MethodFunction
		if name == ConstructorName {
			kind = MethodConstructor
		}

		Logger().Debug("built method metadata",
			zap.String("qualified", qualified),
			zap.String("name", name),
			zap.String("kind", string(kind)),
			zap.Int("inputs", len(inputs)),
			zap.Int("outputs", len(outputs)))

		methods = append(methods, MethodMeta{
			Name:    name,
			Kind:    kind,
			Inputs:  inputs,
			Outputs: outputs,
		})
	}

	return &Metadata{
		ABIVersion: CurrentABIVersion,
		Methods:    methods,
	}
}
