// Package types defines the compiled type structures for fast transcoding.
//
// CompiledType holds the precomputed wire shape of a Go type: its Kind,
// scalar width, element and key types, and object members. By compiling
// type metadata once, the transcoder avoids repeated reflection walks and
// schema lookups during hot paths.
//
// # Key Types
//
//   - CompiledType: Cached type metadata
//   - Kind: Wire type discriminator (scalar, string, list, object, etc.)
//   - Category: The value category a Kind belongs to
//
// This package is internal to the transcoder.
package types
