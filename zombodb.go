// Package zombodb implements the per-index configuration record for
// Elasticsearch-backed indexes: the binary options block attached to an
// index relation, and the derivation of the index's externally-visible
// names from it.
//
// An options block is one contiguous buffer combining a fixed 52-byte
// header of scalar fields with NUL-terminated string fields addressed by
// absolute byte offsets. The layout is preserved bit-for-bit across
// versions; a block persisted by one version decodes under any other.
//
// # Basic Usage
//
// Declaring options for an index and reading them back:
//
//	import "github.com/timClicks/zombodb"
//
//	store, _ := catalog.NewStore()
//	// ... register the heap and index relations ...
//
//	// Encode the WITH (...) clause of CREATE INDEX into a block and
//	// attach it to the index relation.
//	err := zombodb.SetIndexOptions(store, indexOid, map[string]string{
//	    "url":    "http://localhost:9200/",
//	    "shards": "3",
//	})
//
//	// Decode on read. Omitted options resolve to their defaults.
//	opts, _ := zombodb.IndexOptions(store, indexOid)
//	shards := opts.Shards()
//
//	// Derived identity: the canonical external index name.
//	id, _ := store.Identity(heapOid, indexOid)
//	name, _ := opts.IndexName(id)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the options
// and catalog packages, simplifying the most common use cases. For
// fine-grained control (alternate defaults, direct block decoding), use
// those packages directly.
package zombodb

import (
	"github.com/timClicks/zombodb/catalog"
	"github.com/timClicks/zombodb/options"
)

// stockRegistry is the recognized option set with stock defaults. The
// registry is immutable after construction, safe for concurrent use.
var stockRegistry = options.NewRegistry(options.DefaultSettings())

// Registry returns the recognized option set with stock defaults.
func Registry() *options.Registry {
	return stockRegistry
}

// SetIndexOptions resolves raw (name, value) pairs from a DDL WITH clause,
// validates them, encodes them into a brand-new options block, and
// attaches the block to the index relation.
//
// On any validation failure nothing is stored; the relation keeps its
// previous block.
//
// Parameters:
//   - store: Catalog store holding the index relation
//   - indexID: Oid of the index relation
//   - raw: Option names and values as written in the DDL
//
// Returns:
//   - error: Parse or validation error naming the offending option, or a
//     catalog error if the relation does not exist
func SetIndexOptions(store *catalog.Store, indexID catalog.Oid, raw map[string]string) error {
	block, err := options.EncodeOptions(stockRegistry, raw)
	if err != nil {
		return err
	}

	return store.PutOptions(indexID, block)
}

// IndexOptions loads and decodes the options for an index relation.
//
// An index without a stored block yields the fully-defaulted instance.
//
// Returns:
//   - *options.IndexOptions: Typed accessors over the block or defaults
//   - error: errs.ErrInvalidRelationKind if the relation is not an index,
//     catalog lookup errors, or block validation errors
func IndexOptions(store *catalog.Store, indexID catalog.Oid) (*options.IndexOptions, error) {
	rel, err := store.Relation(indexID)
	if err != nil {
		return nil, err
	}

	return options.FromRelation(rel)
}

// IndexIdentity performs the catalog lookups that feed alias and uuid
// derivation for the given index over its heap relation.
func IndexIdentity(store *catalog.Store, heapID, indexID catalog.Oid) (catalog.Identity, error) {
	return store.Identity(heapID, indexID)
}
