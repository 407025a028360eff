// Package transcoder provides binary encoding and decoding of Go values.
//
// # Overview
//
// Values are written by value category. Each Go type is compiled once into a
// CompiledType that fixes its category, element types and object members;
// the per-value path then only switches on the compiled Kind:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│ Go Value → [Compiler] → CompiledType → [Encoder] → Sink     │
//	└─────────────────────────────────────────────────────────────┘
//
// # Wire Format
//
//	Go type                 Kind     Encoding
//	────────────────────────────────────────────────────────────
//	bool                    bool     1 byte, 0 or 1
//	int8..int64, int        s8..s64  little-endian, int is 8 bytes
//	uint8..uint64, uint     u8..u64  little-endian, uint is 8 bytes
//	float32/64              f32/f64  IEEE 754 bits, little-endian
//	complex64/128           c64/c128 real then imaginary part
//	string                  string   [len][bytes]
//	func                    func     nothing
//	[N]T                    array    N elements, no count
//	[]T                     list     [count][elements]
//	map[K]V                 map      [count][(key, value)...] by ascending key
//	*T                      option   [0] or [1][value]
//	struct / registered     object   [count][(index, value)...]
//	interface               dynamic  encoded as the concrete value
//
// Lengths, counts and member indexes use the varint package.
//
// # Key Types
//
//	Compiler      - Compiles and caches Go type shapes
//	CompiledType  - Kind, element types and object members of a Go type
//	Encoder       - Writes Go values to a Sink
//	Decoder       - Reads encoded bytes back into Go values
//
// # Objects
//
// Struct members come from the schema package: either a schema registered
// for the type or one derived from its exported fields. The member index is
// the wire tag, so decoders match members by position rather than by name.
//
// # Thread Safety
//
// Compiler and CompiledType are safe for concurrent use.
// Encoder maintains internal scratch state and is NOT thread-safe.
// Use separate instances per goroutine, or the package-level Encode and
// Marshal functions which pool them.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[compile] unsupported at Jobs.[elem]: Go type chan int - no value category for type
//	[encode] size_not_supported: size 4611686018427387904 not supported (max 4611686018427387903)
//	[decode] out_of_bounds at Name: need 5 bytes, have 2
//
// Nesting deeper than MaxDepth, as produced by cyclic values, is an
// overflow error on both encode and decode.
//
// Encoding failures leave already written bytes in the sink. Marshal buffers
// the output and only returns it when encoding succeeds.
package transcoder
