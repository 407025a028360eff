// Package codec selects an output format for a value.
//
// The binary format is the module's own wire format and goes through the
// transcoder package. CBOR and MessagePack are forwarded to established
// encoders configured for deterministic output:
//
//	FormatBinary   transcoder, members tagged by declaration index
//	FormatCBOR     fxamacker/cbor, core deterministic encoding (RFC 8949 4.2)
//	FormatMsgpack  vmihailenco/msgpack, map keys sorted
//
// Write streams into a sink and may leave partial output on failure.
// Marshal buffers the encoding and returns bytes only on success.
package codec
