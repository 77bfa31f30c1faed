// Package loader extracts ABI metadata embedded in compiled contract
// wasm binaries.
//
// The IR toolchain ships a contract's metadata as pretty-printed JSON in
// a custom section named "ir-abi". ExtractMetadata compiles the binary
// with custom sections retained and returns the embedded abi.Metadata;
// Exports lists the binary's exported functions for diagnostics.
package loader
