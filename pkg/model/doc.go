// Package model is the data-driven engine behind every survey entity. A Type
// is a flattened, ordered field table assembled by composition: NewType
// declares a root and Extend derives a variant whose declarations either
// append a slot or replace an inherited slot in place, so the most-derived
// default wins while the ancestor's position is kept.
//
// Entities are built from Go values (New) or wire documents (Decode) and are
// validated against the constraint tables of a Registry. Each failing field
// is reported as a typed error (MissingFieldError, ConstraintError,
// TypeMismatchError, RangeError) matched with errors.Is against the exported
// sentinels; nested failures carry their wire path, e.g.
// "pages[0].elements[2]". Keys that match no declared field are kept
// verbatim and in arrival order, and Encode writes them back after the
// declared fields.
package model
