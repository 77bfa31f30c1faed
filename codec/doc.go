// Package codec defines the canonical byte representation of parsed
// parameter values.
//
// # Wire Layout
//
// Every encoded value is a tag byte followed by its payload:
//
//	Tag             Payload
//	─────────────────────────────────────────────
//	bool            1 byte, 0 or 1
//	u8/i8 .. u64/i64  little-endian, fixed width
//	u128/i128       16 bytes little-endian, two's complement
//	str, parampack  ULEB128 length + raw bytes
//	array           ULEB128 count + tagged elements
//	map             ULEB128 count + (ULEB128 key length, key bytes,
//	                tagged value) per entry, keys sorted bytewise
//
// Sorting map keys makes the encoding deterministic: two logically equal
// maps always produce identical bytes.
//
// Every value is self-delimiting, so the abi package can concatenate
// encoded parameters without separators. DecodeValue and DecodePayload invert
// the encoding; they exist chiefly so callers and tests can verify
// round-trips without a live contract.
package codec
