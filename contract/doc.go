// Package contract models the callable surface of a compiled IR contract:
// a function table mapping qualified names to definitions, and the IR type
// values those definitions carry.
//
// The package is read-only input for metadata construction. Types expose a
// stable textual representation via String(); those strings are what the
// abi package's descriptor grammar parses back on the encode path.
package contract
