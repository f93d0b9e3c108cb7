package options

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timClicks/zombodb/errs"
)

func TestRegistry_Parse(t *testing.T) {
	registry := NewRegistry(DefaultSettings())

	t.Run("Unknown option", func(t *testing.T) {
		_, err := registry.Parse(map[string]string{"sharrds": "5"}, true)
		require.ErrorIs(t, err, errs.ErrUnknownOption)
		require.Contains(t, err.Error(), "sharrds")
	})

	t.Run("Int type mismatch", func(t *testing.T) {
		_, err := registry.Parse(map[string]string{"shards": "five"}, true)
		require.ErrorIs(t, err, errs.ErrInvalidOptionType)
		require.Contains(t, err.Error(), "shards")
	})

	t.Run("Int bounds", func(t *testing.T) {
		for raw, wantErr := range map[string]bool{
			"0":     true,
			"1":     false,
			"32768": false,
			"32769": true,
		} {
			_, err := registry.Parse(map[string]string{"shards": raw}, true)
			if wantErr {
				require.ErrorIs(t, err, errs.ErrOptionOutOfRange, "shards=%s", raw)
			} else {
				require.NoError(t, err, "shards=%s", raw)
			}
		}
	})

	t.Run("Compression level bounds", func(t *testing.T) {
		_, err := registry.Parse(map[string]string{"compression_level": "10"}, true)
		require.ErrorIs(t, err, errs.ErrOptionOutOfRange)

		_, err = registry.Parse(map[string]string{"compression_level": "-1"}, true)
		require.ErrorIs(t, err, errs.ErrOptionOutOfRange)
	})

	t.Run("Bulk concurrency capped at cores", func(t *testing.T) {
		set, err := registry.Parse(nil, true)
		require.NoError(t, err)
		require.Equal(t, MaxBulkConcurrency(), set.Int("bulk_concurrency"))

		_, err = registry.Parse(map[string]string{
			"bulk_concurrency": "1000000",
		}, true)
		require.ErrorIs(t, err, errs.ErrOptionOutOfRange)
	})

	t.Run("Bool spellings", func(t *testing.T) {
		for raw, want := range map[string]bool{
			"true": true, "false": false,
			"on": true, "off": false,
			"1": true, "0": false,
		} {
			set, err := registry.Parse(map[string]string{"llapi": raw}, true)
			require.NoError(t, err, "llapi=%s", raw)
			require.Equal(t, want, set.Bool("llapi"), "llapi=%s", raw)
		}

		_, err := registry.Parse(map[string]string{"llapi": "maybe"}, true)
		require.ErrorIs(t, err, errs.ErrInvalidOptionType)
	})

	t.Run("Embedded NUL rejected", func(t *testing.T) {
		_, err := registry.Parse(map[string]string{"alias": "bad\x00alias"}, true)
		require.ErrorIs(t, err, errs.ErrInvalidOptionType)
	})

	t.Run("Int and bool defaults embedded", func(t *testing.T) {
		set, err := registry.Parse(map[string]string{"shards": "9"}, true)
		require.NoError(t, err)

		require.Equal(t, int32(9), set.Int("shards"))
		require.Equal(t, int32(DefaultReplicas), set.Int("replicas"))
		require.Equal(t, int32(DefaultBatchSize), set.Int("batch_size"))
		require.Equal(t, int32(DefaultCompressionLevel), set.Int("compression_level"))
		require.Equal(t, int32(DefaultOptimizeAfter), set.Int("optimize_after"))
		require.False(t, set.Bool("llapi"))
	})

	t.Run("String defaults not embedded", func(t *testing.T) {
		set, err := registry.Parse(nil, true)
		require.NoError(t, err)

		_, supplied := set.String("url")
		require.False(t, supplied)
		_, supplied = set.String("alias")
		require.False(t, supplied)
	})

	t.Run("Validator runs only when requested", func(t *testing.T) {
		raw := map[string]string{"url": "http://localhost:9200"}

		_, err := registry.Parse(raw, true)
		require.ErrorIs(t, err, errs.ErrMissingTrailingSlash)
		require.Contains(t, err.Error(), "url")

		// Replay of a previously stored value skips validation.
		set, err := registry.Parse(raw, false)
		require.NoError(t, err)
		got, supplied := set.String("url")
		require.True(t, supplied)
		require.Equal(t, "http://localhost:9200", got)
	})
}

func TestRegistry_Definitions(t *testing.T) {
	registry := NewRegistry(DefaultSettings())

	defs := registry.Definitions()
	require.Len(t, defs, 12)

	// Registration order is the order the host would list the options in.
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	require.Equal(t, []string{
		"url", "type_name", "refresh_interval", "shards", "replicas",
		"bulk_concurrency", "batch_size", "compression_level", "alias",
		"optimize_after", "llapi", "uuid",
	}, names)

	url, ok := registry.Lookup("url")
	require.True(t, ok)
	require.NotNil(t, url.Validate)
	require.Equal(t, "default", url.StringDefault)
}
