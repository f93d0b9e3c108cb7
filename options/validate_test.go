package options

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timClicks/zombodb/errs"
)

func TestValidateURL(t *testing.T) {
	t.Run("Sentinel default passes", func(t *testing.T) {
		require.NoError(t, ValidateURL("default"))
	})

	t.Run("Absolute url with trailing slash passes", func(t *testing.T) {
		require.NoError(t, ValidateURL("http://localhost:9200/"))
	})

	t.Run("Missing trailing slash", func(t *testing.T) {
		err := ValidateURL("http://localhost:9200")
		require.ErrorIs(t, err, errs.ErrMissingTrailingSlash)
	})

	t.Run("Not a url", func(t *testing.T) {
		err := ValidateURL("not a url/")
		require.ErrorIs(t, err, errs.ErrMalformedURL)
	})

	t.Run("Https with path", func(t *testing.T) {
		require.NoError(t, ValidateURL("https://es.example.com:9200/cluster/"))
	})

	t.Run("Value stored verbatim", func(t *testing.T) {
		// No normalization: validation must not rewrite the value, so a
		// url that passes encodes back out byte-identical.
		raw := "http://LOCALHOST:9200/a%20b/"
		require.NoError(t, ValidateURL(raw))

		registry := NewRegistry(DefaultSettings())
		set, err := registry.Parse(map[string]string{"url": raw}, true)
		require.NoError(t, err)

		opts, err := FromBlock(NewEncoder().Encode(set))
		require.NoError(t, err)

		got, err := opts.URL()
		require.NoError(t, err)
		require.Equal(t, raw, got)
	})
}
