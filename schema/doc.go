// Package schema describes reflected objects: the ordered list of members
// an object type exposes to the encoder.
//
// A member's index is its position in the list and doubles as its wire tag,
// so reordering members is a wire-breaking change while renaming is not.
//
// Struct types get a schema derived from their exported fields in
// declaration order. The `wire` struct tag renames a member or, with "-",
// removes it:
//
//	type User struct {
//	    ID    uint64
//	    Name  string `wire:"name"`
//	    cache []byte // unexported: skipped
//	    Temp  int    `wire:"-"`
//	}
//
// Types can instead register an explicit schema built from accessors, which
// also reaches unexported fields:
//
//	schema.Register[account](
//	    schema.Field("id", func(a *account) *uint64 { return &a.id }),
//	    schema.Field("owner", func(a *account) *string { return &a.owner }),
//	)
//
// Registration happens at startup. The first lookup seals a Registry and
// later registrations fail.
package schema
