package options

import (
	"fmt"

	"github.com/timClicks/zombodb/catalog"
)

// Derived identity.
//
// Alias and UUID are pure functions of the stored field and the relation
// identity: identical inputs always yield byte-identical output. External
// systems rely on that determinism to treat the derived name as a stable
// key for idempotent resource creation.

// Alias returns the stored alias verbatim when set. Otherwise it derives
// "{database}.{namespace}.{table}.{index}-{index_id}" from the relation
// identity.
func (o *IndexOptions) Alias(id catalog.Identity) (string, error) {
	s, ok, err := o.getString("alias", o.header.AliasOffset)
	if err != nil {
		return "", err
	}
	if ok {
		return s, nil
	}

	return fmt.Sprintf("%s.%s.%s.%s-%d",
		id.DatabaseName, id.NamespaceName, id.TableName, id.IndexName, id.IndexID), nil
}

// UUID returns the stored uuid verbatim when set. Otherwise it derives
// "{database_id}.{namespace_id}.{table_id}.{index_id}", a purely numeric
// name that is unique per index instance within one cluster as long as
// numeric ids are never reused for live objects.
func (o *IndexOptions) UUID(id catalog.Identity) (string, error) {
	s, ok, err := o.getString("uuid", o.header.UUIDOffset)
	if err != nil {
		return "", err
	}
	if ok {
		return s, nil
	}

	return fmt.Sprintf("%d.%d.%d.%d",
		id.DatabaseID, id.NamespaceID, id.TableID, id.IndexID), nil
}

// IndexName returns the canonical external index name, which is the uuid.
func (o *IndexOptions) IndexName(id catalog.Identity) (string, error) {
	return o.UUID(id)
}
