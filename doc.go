// Package irabi provides tooling for invoking compiled IR contracts
// without a native binding: it derives machine-readable ABI metadata from
// a contract's function table and encodes human-supplied text arguments
// into canonical call payloads.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	irabi/           Root package with the library overview
//	├── abi/         Type descriptor grammar, value parsing, call payload
//	│                encoding, and the ABI metadata container/builder
//	├── codec/       Tagged binary encoding of parsed parameter values
//	├── contract/    Compiled-contract function table and IR type model
//	├── loader/      Extraction of embedded ABI metadata from contract
//	│                wasm binaries
//	├── errors/      Structured error types for debugging
//	└── cmd/ircall/  CLI for listing methods and encoding call payloads
//
// # Quick Start
//
// Build metadata from a contract and encode a call:
//
//	meta := abi.FromContract(c)
//
//	m := meta.GetMethod("transfer")
//	if m == nil {
//	    log.Fatal("no such method")
//	}
//
//	payload, err := m.EncodeParams([]string{"alice", "100"}, codec.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// payload = [version byte] ++ encoded params, ready for the
//	// invocation transport.
//
// # Call Payload Format
//
// A payload is one format version byte (currently 0x00) followed by each
// parameter's tagged binary encoding in declaration order. There is no
// padding between parameters; every encoded value is self-delimiting.
//
// # Metadata Format
//
// abi.Metadata serializes to pretty-printed JSON for human-diffable
// storage and to canonical CBOR for compact wire transfer. Compiled
// contracts carry the JSON form in a wasm custom section that the loader
// package extracts.
//
// # Thread Safety
//
// Every operation is a pure function over its inputs. Descriptors, parsed
// values, and metadata are freshly constructed per call; separate
// goroutines may parse, build, and encode concurrently without
// coordination as long as each call owns its inputs.
package irabi
