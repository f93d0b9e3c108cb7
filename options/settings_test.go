package options

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func TestIndexOptions_IndexSettings(t *testing.T) {
	block := encodeBlock(t, map[string]string{
		"shards":           "3",
		"replicas":         "1",
		"refresh_interval": "5s",
	})

	opts, err := FromBlock(block)
	require.NoError(t, err)

	settings, err := opts.IndexSettings()
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"number_of_shards":   int32(3),
		"number_of_replicas": int32(1),
		"refresh_interval":   "5s",
	}, settings)
}

func TestIndexOptions_NewCompressedWriter(t *testing.T) {
	t.Run("Level zero is passthrough", func(t *testing.T) {
		block := encodeBlock(t, map[string]string{"compression_level": "0"})
		opts, err := FromBlock(block)
		require.NoError(t, err)

		var buf bytes.Buffer
		w, err := opts.NewCompressedWriter(&buf)
		require.NoError(t, err)

		_, err = w.Write([]byte("bulk request body"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		require.Equal(t, "bulk request body", buf.String())
	})

	t.Run("Gzip round trip at configured level", func(t *testing.T) {
		block := encodeBlock(t, map[string]string{"compression_level": "9"})
		opts, err := FromBlock(block)
		require.NoError(t, err)

		var buf bytes.Buffer
		w, err := opts.NewCompressedWriter(&buf)
		require.NoError(t, err)

		payload := bytes.Repeat([]byte("doc body "), 512)
		_, err = w.Write(payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.Less(t, buf.Len(), len(payload))

		r, err := gzip.NewReader(&buf)
		require.NoError(t, err)
		restored, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, payload, restored)
	})
}
