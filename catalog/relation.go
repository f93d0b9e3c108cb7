// Package catalog models the slice of the host catalog this module needs:
// relations (tables and the indexes built over them), the identity fields
// derived names are computed from, and a store that attaches options
// blocks to relations and replaces them atomically.
package catalog

import "fmt"

// Oid is a relation, namespace or database numeric identifier. Oids are
// never reused for live objects, which is what makes derived names stable
// keys.
type Oid uint32

// RelationKind distinguishes heap relations from the indexes built on them.
type RelationKind uint8

const (
	KindTable RelationKind = iota + 1
	KindIndex
)

func (k RelationKind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindIndex:
		return "index"
	default:
		return "unknown"
	}
}

// Relation is a catalog snapshot of one relation. Snapshots are
// value-copied out of the store; mutating a snapshot never affects the
// catalog.
type Relation struct {
	ID            Oid
	Kind          RelationKind
	Name          string
	NamespaceID   Oid
	NamespaceName string
	DatabaseID    Oid
	DatabaseName  string

	// options is the attached options block, nil when the relation was
	// created without one. Never mutated in place; replacement goes
	// through Store.PutOptions.
	options []byte
}

// IsIndex reports whether the relation is an index.
func (r *Relation) IsIndex() bool {
	return r.Kind == KindIndex
}

// Options returns the attached options block, or nil when none is set.
func (r *Relation) Options() []byte {
	return r.options
}

// HasOptions reports whether an options block is attached.
func (r *Relation) HasOptions() bool {
	return len(r.options) > 0
}

// Identity carries the catalog fields derived names are computed from.
// It is ephemeral: assembled at decode time, never persisted.
type Identity struct {
	DatabaseName  string
	NamespaceName string
	TableName     string
	IndexName     string

	DatabaseID  Oid
	NamespaceID Oid
	TableID     Oid
	IndexID     Oid
}

// ResolveIdentity assembles the Identity for an index over its heap
// relation. Namespace and database fields come from the index relation.
func ResolveIdentity(heap, index *Relation) (Identity, error) {
	if !index.IsIndex() {
		return Identity{}, fmt.Errorf("relation %q is %s, not an index", index.Name, index.Kind)
	}

	return Identity{
		DatabaseName:  index.DatabaseName,
		NamespaceName: index.NamespaceName,
		TableName:     heap.Name,
		IndexName:     index.Name,
		DatabaseID:    index.DatabaseID,
		NamespaceID:   index.NamespaceID,
		TableID:       heap.ID,
		IndexID:       index.ID,
	}, nil
}
