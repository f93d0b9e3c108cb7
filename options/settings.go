package options

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// IndexSettings returns the settings document used when creating the
// external Elasticsearch index from the decoded options.
func (o *IndexOptions) IndexSettings() (map[string]any, error) {
	refresh, err := o.RefreshInterval()
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"number_of_shards":   o.Shards(),
		"number_of_replicas": o.Replicas(),
		"refresh_interval":   refresh,
	}, nil
}

// NewCompressedWriter wraps w with gzip at the configured
// compression_level, the way the _bulk transport compresses request
// bodies. Level 0 disables compression and returns a passthrough writer.
func (o *IndexOptions) NewCompressedWriter(w io.Writer) (io.WriteCloser, error) {
	level := int(o.CompressionLevel())
	if level == 0 {
		return nopWriteCloser{w}, nil
	}

	return gzip.NewWriterLevel(w, level)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
