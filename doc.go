// Package wirepack provides a schema-compiled binary serialization engine.
//
// Values are encoded by category: primitives are written as fixed-width
// little-endian bytes, while strings, sequences, maps and objects carry
// self-describing length prefixes produced by the tiered integer codec.
// Types are compiled once and cached, so the per-value path does no schema
// lookup.
//
// # Architecture Overview
//
//	wirepack/         Root package with Sink, Buffer, Format and Opts
//	├── varint/       Tiered variable-width integer codec
//	├── fingerprint/  Type identity hashing for compatibility checks
//	├── schema/       Reflected object schemas (member index -> accessor)
//	├── transcoder/   Type compiler, binary Encoder and Decoder
//	├── codec/        Format dispatch (binary, CBOR, MessagePack)
//	├── errors/       Structured error types
//	└── cmd/wirepack/ Command line tool
//
// # Quick Start
//
//	type Point struct {
//	    X, Y int32
//	    Tag  string
//	}
//
//	data, err := codec.Marshal(wirepack.Opts{}, Point{X: 1, Y: 2, Tag: "a"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var p Point
//	if _, err := transcoder.NewDecoder().Decode(data, &p); err != nil {
//	    log.Fatal(err)
//	}
//
// # Wire Format
//
//	bool        [1 byte: 0 or 1]
//	scalar      [raw little-endian bytes]
//	string      [len: varint][bytes]
//	slice       [count: varint][elem*]
//	array       [elem*]
//	map         [count: varint][(key, value)*]
//	pointer     [presence: 1 byte][value if present]
//	object      [count: varint][(index: varint, value)*]
//	func        nothing
//
// # Compatibility
//
// Fingerprints summarize a type's name, size, declared version and
// structural properties. Peers exchange them out of band before trusting
// the wire format; they are never embedded into encoded payloads.
//
// # Thread Safety
//
// Compilers and registries are safe for concurrent use. Encoder and Decoder
// instances are NOT thread-safe; use one per goroutine. Writing to the same
// Sink from several goroutines must be serialized by the caller.
package wirepack
