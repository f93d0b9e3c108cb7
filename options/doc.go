// Package options implements the per-index configuration record: a single
// contiguous binary block combining fixed-width scalar fields with
// NUL-terminated string fields referenced by byte offset, plus the
// derivation of stable external identifiers when fields are left unset.
//
// The block life cycle is:
//
//  1. A raw option list is resolved against the Registry (Parse), which
//     type-checks names and values, enforces bounds, embeds int/bool
//     defaults and runs validators when requested.
//  2. The Encoder lays the resolved set out as one self-contained block:
//     a fixed 52-byte header followed by every supplied string value,
//     NUL-terminated, addressed by absolute byte offsets recorded in the
//     header. Unset string slots hold the sentinel offset 0.
//  3. The block is attached to the index relation in the catalog and
//     persisted verbatim. Blocks are immutable: changing options encodes
//     a brand-new block.
//  4. FromRelation wraps the stored block without copying (or synthesizes
//     a fully-defaulted instance when none is attached) and exposes typed
//     accessors. String reads are bounds-checked and UTF-8 validated;
//     scalar reads are infallible.
//
// Derived identity: the alias and uuid accessors return the stored value
// verbatim when set, and otherwise derive a deterministic name from the
// relation identity, so external systems can treat the result as a stable
// key for idempotent resource creation.
package options
