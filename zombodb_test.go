package zombodb

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timClicks/zombodb/catalog"
	"github.com/timClicks/zombodb/errs"
)

const (
	dbOid    = catalog.Oid(16384)
	nsOid    = catalog.Oid(2200)
	heapOid  = catalog.Oid(16385)
	indexOid = catalog.Oid(16386)
)

// newTestCatalog mirrors "CREATE TABLE test; CREATE INDEX idxtest ON test".
func newTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()

	store, err := catalog.NewStore()
	require.NoError(t, err)

	heap := catalog.Relation{
		ID:            heapOid,
		Kind:          catalog.KindTable,
		Name:          "test",
		NamespaceID:   nsOid,
		NamespaceName: "public",
		DatabaseID:    dbOid,
		DatabaseName:  "pgx_tests",
	}
	index := heap
	index.ID = indexOid
	index.Kind = catalog.KindIndex
	index.Name = "idxtest"

	require.NoError(t, store.Add(heap))
	require.NoError(t, store.Add(index))

	return store
}

func TestIndexOptions(t *testing.T) {
	store := newTestCatalog(t)

	err := SetIndexOptions(store, indexOid, map[string]string{
		"url":              "http://localhost:9200/",
		"type_name":        "test_type_name",
		"alias":            "test_alias",
		"uuid":             "test_uuid",
		"refresh_interval": "5s",
	})
	require.NoError(t, err)

	opts, err := IndexOptions(store, indexOid)
	require.NoError(t, err)

	identity, err := IndexIdentity(store, heapOid, indexOid)
	require.NoError(t, err)

	url, err := opts.URL()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9200/", url)

	typeName, err := opts.TypeName()
	require.NoError(t, err)
	require.Equal(t, "test_type_name", typeName)

	alias, err := opts.Alias(identity)
	require.NoError(t, err)
	require.Equal(t, "test_alias", alias)

	uuid, err := opts.UUID(identity)
	require.NoError(t, err)
	require.Equal(t, "test_uuid", uuid)

	refresh, err := opts.RefreshInterval()
	require.NoError(t, err)
	require.Equal(t, "5s", refresh)

	require.Equal(t, int32(1), opts.CompressionLevel())
	require.Equal(t, int32(5), opts.Shards())
	require.Equal(t, int32(0), opts.Replicas())
	require.Equal(t, int32(runtime.NumCPU()), opts.BulkConcurrency())
	require.Equal(t, int32(8*1024*1024), opts.BatchSize())
	require.Equal(t, int32(0), opts.OptimizeAfter())
	require.False(t, opts.LLAPI())
}

func TestIndexOptionsDefaults(t *testing.T) {
	store := newTestCatalog(t)

	opts, err := IndexOptions(store, indexOid)
	require.NoError(t, err)

	identity, err := IndexIdentity(store, heapOid, indexOid)
	require.NoError(t, err)

	url, err := opts.URL()
	require.NoError(t, err)
	require.Equal(t, "default", url)

	typeName, err := opts.TypeName()
	require.NoError(t, err)
	require.Equal(t, "doc", typeName)

	alias, err := opts.Alias(identity)
	require.NoError(t, err)
	require.Equal(t, "pgx_tests.public.test.idxtest-16386", alias)

	uuid, err := opts.UUID(identity)
	require.NoError(t, err)
	require.Equal(t, "16384.2200.16385.16386", uuid)

	refresh, err := opts.RefreshInterval()
	require.NoError(t, err)
	require.Equal(t, "-1", refresh)

	require.Equal(t, int32(1), opts.CompressionLevel())
	require.Equal(t, int32(5), opts.Shards())
	require.Equal(t, int32(0), opts.Replicas())
	require.Equal(t, int32(runtime.NumCPU()), opts.BulkConcurrency())
	require.Equal(t, int32(8*1024*1024), opts.BatchSize())
	require.Equal(t, int32(0), opts.OptimizeAfter())
	require.False(t, opts.LLAPI())
}

func TestSetIndexOptions(t *testing.T) {
	t.Run("Validation failure stores nothing", func(t *testing.T) {
		store := newTestCatalog(t)

		require.NoError(t, SetIndexOptions(store, indexOid, map[string]string{
			"alias": "keep_me",
		}))

		err := SetIndexOptions(store, indexOid, map[string]string{
			"url": "http://localhost:9200",
		})
		require.ErrorIs(t, err, errs.ErrMissingTrailingSlash)

		// The previous block survives the failed statement.
		opts, err := IndexOptions(store, indexOid)
		require.NoError(t, err)
		identity, err := IndexIdentity(store, heapOid, indexOid)
		require.NoError(t, err)

		alias, err := opts.Alias(identity)
		require.NoError(t, err)
		require.Equal(t, "keep_me", alias)
	})

	t.Run("Options on a table are rejected at read", func(t *testing.T) {
		store := newTestCatalog(t)

		_, err := IndexOptions(store, heapOid)
		require.ErrorIs(t, err, errs.ErrInvalidRelationKind)
	})

	t.Run("Altering options replaces the block", func(t *testing.T) {
		store := newTestCatalog(t)

		require.NoError(t, SetIndexOptions(store, indexOid, map[string]string{"shards": "3"}))
		require.NoError(t, SetIndexOptions(store, indexOid, map[string]string{"shards": "7"}))

		opts, err := IndexOptions(store, indexOid)
		require.NoError(t, err)
		require.Equal(t, int32(7), opts.Shards())

		// Unmentioned options revert to defaults: the new block is built
		// from scratch, not patched.
		url, err := opts.URL()
		require.NoError(t, err)
		require.Equal(t, "default", url)
	})
}

func TestRegistry(t *testing.T) {
	require.Len(t, Registry().Definitions(), 12)
	require.Same(t, Registry(), Registry())
}
