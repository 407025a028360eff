// Package fingerprint derives fixed-length identity hashes from a type's
// name, size, declared version and structural properties.
//
// Every input is hashed to a 128-bit hex representative before the inputs
// are joined, so variable-length fields cannot alias each other ("AB"+"C"
// and "A"+"BC" hash differently). The join is hashed once more to produce
// the Fingerprint.
//
// Fingerprints match across builds by the same compiler when the type's
// shape and declarations are unchanged. They are not required to match
// across compilers or architectures.
package fingerprint

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/wippyai/wirepack/errors"
)

// Size is the fingerprint length in bytes.
const Size = 16

// Fingerprint is an opaque compatibility token.
type Fingerprint [Size]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns a 64-bit digest of the fingerprint for log correlation.
func (f Fingerprint) Short() uint64 {
	return xxhash.Sum64(f[:])
}

// Parse decodes a hex fingerprint as produced by String.
func Parse(s string) (Fingerprint, error) {
	var f Fingerprint
	b, err := hex.DecodeString(s)
	if err != nil {
		return f, errors.Wrap(errors.PhaseHandshake, errors.KindInvalidInput, err, "parse fingerprint")
	}
	if len(b) != Size {
		return f, errors.InvalidInput(errors.PhaseHandshake, "fingerprint must be "+strconv.Itoa(Size)+" bytes")
	}
	copy(f[:], b)
	return f, nil
}

// Version is a declared semantic version.
type Version struct {
	Major    uint32 `yaml:"major"`
	Minor    uint32 `yaml:"minor"`
	Revision uint32 `yaml:"revision"`
}

// String renders the version as "v{major},{minor},{revision}".
func (v Version) String() string {
	return "v" + strconv.FormatUint(uint64(v.Major), 10) +
		"," + strconv.FormatUint(uint64(v.Minor), 10) +
		"," + strconv.FormatUint(uint64(v.Revision), 10)
}

// Properties are the structural booleans folded into a fingerprint, in
// hashing order.
type Properties struct {
	Trivial                       bool `yaml:"trivial"`
	StandardLayout                bool `yaml:"standard_layout"`
	DefaultConstructible          bool `yaml:"default_constructible"`
	TriviallyDefaultConstructible bool `yaml:"trivially_default_constructible"`
	NothrowDefaultConstructible   bool `yaml:"nothrow_default_constructible"`
	TriviallyCopyable             bool `yaml:"trivially_copyable"`
	MoveConstructible             bool `yaml:"move_constructible"`
	TriviallyMoveConstructible    bool `yaml:"trivially_move_constructible"`
	NothrowMoveConstructible      bool `yaml:"nothrow_move_constructible"`
	Destructible                  bool `yaml:"destructible"`
	TriviallyDestructible         bool `yaml:"trivially_destructible"`
	NothrowDestructible           bool `yaml:"nothrow_destructible"`
	UniqueObjectRepresentations   bool `yaml:"unique_object_representations"`
	Polymorphic                   bool `yaml:"polymorphic"`
	VirtualDestructor             bool `yaml:"virtual_destructor"`
	Aggregate                     bool `yaml:"aggregate"`
}

// List returns the properties in hashing order.
func (p Properties) List() []bool {
	return []bool{
		p.Trivial,
		p.StandardLayout,
		p.DefaultConstructible,
		p.TriviallyDefaultConstructible,
		p.NothrowDefaultConstructible,
		p.TriviallyCopyable,
		p.MoveConstructible,
		p.TriviallyMoveConstructible,
		p.NothrowMoveConstructible,
		p.Destructible,
		p.TriviallyDestructible,
		p.NothrowDestructible,
		p.UniqueObjectRepresentations,
		p.Polymorphic,
		p.VirtualDestructor,
		p.Aggregate,
	}
}

// Descriptor is the static metadata a fingerprint is computed from.
type Descriptor struct {
	Name       string     `yaml:"name"`
	Size       uint64     `yaml:"size"`
	Version    Version    `yaml:"version"`
	Properties Properties `yaml:"properties"`
	Compiler   string     `yaml:"compiler"`
}

// VersionString renders the descriptor's version for diagnostics.
func (d Descriptor) VersionString() string {
	return d.Version.String()
}

// Compute hashes d into a Fingerprint. Equal descriptors always produce
// equal fingerprints.
func Compute(d Descriptor) Fingerprint {
	props := d.Properties.List()

	var b strings.Builder
	b.Grow((5+len(props))*2*Size + len(d.Compiler))

	b.WriteString(hash128(d.Name))
	b.WriteString(hash128(strconv.FormatUint(d.Size, 10)))
	b.WriteString(hash128(strconv.FormatUint(uint64(d.Version.Major), 10)))
	b.WriteString(hash128(strconv.FormatUint(uint64(d.Version.Minor), 10)))
	b.WriteString(hash128(strconv.FormatUint(uint64(d.Version.Revision), 10)))
	for _, p := range props {
		b.WriteString(hash128(strconv.FormatBool(p)))
	}
	// The compiler tag is joined raw and closes the input.
	b.WriteString(d.Compiler)

	return sum128(b.String())
}

// Check returns an incompatible error when remote differs from local.
func Check(local, remote Fingerprint) error {
	if local != remote {
		return errors.Incompatible(local.String(), remote.String())
	}
	return nil
}

func sum128(s string) Fingerprint {
	full := blake3.Sum256([]byte(s))
	var f Fingerprint
	copy(f[:], full[:Size])
	return f
}

func hash128(s string) string {
	f := sum128(s)
	return hex.EncodeToString(f[:])
}
