package options

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/timClicks/zombodb/catalog"
	"github.com/timClicks/zombodb/errs"
	ioptions "github.com/timClicks/zombodb/internal/options"
	"github.com/timClicks/zombodb/section"
)

// IndexOptions exposes typed accessors over one decoded options block, or
// over synthesized defaults when the index has no block attached.
//
// The wrapped buffer is never copied and never mutated; decoding is safe
// from many goroutines concurrently.
type IndexOptions struct {
	// data is the full options block. nil when the instance was
	// synthesized from defaults (no buffer exists at all).
	data     []byte
	header   section.OptionsHeader
	defaults Defaults
}

// resolverConfig collects the knobs FromRelation and FromBlock accept.
type resolverConfig struct {
	defaults Defaults
}

// ResolverOption configures the decoding resolver.
type ResolverOption = ioptions.Option[*resolverConfig]

// WithDefaults supplies alternate defaults to the resolver in place of the
// stock ones. Mainly for tests, which should never need to mutate shared
// state to observe defaulting behavior.
func WithDefaults(d Defaults) ResolverOption {
	return ioptions.NoError(func(c *resolverConfig) {
		c.defaults = d
	})
}

// FromRelation loads the options for an index relation.
//
// If the relation is not an index it fails with
// errs.ErrInvalidRelationKind. If the relation has no options block
// attached, a fully-defaulted in-memory instance is synthesized without
// allocating a buffer. Otherwise the existing block is wrapped without
// copying, after structural validation of its header.
func FromRelation(rel *catalog.Relation, opts ...ResolverOption) (*IndexOptions, error) {
	if !rel.IsIndex() {
		return nil, fmt.Errorf("%w: relation %q is a %s", errs.ErrInvalidRelationKind, rel.Name, rel.Kind)
	}

	if !rel.HasOptions() {
		cfg := resolverConfig{defaults: DefaultSettings()}
		if err := ioptions.Apply(&cfg, opts...); err != nil {
			return nil, err
		}

		return defaulted(cfg.defaults), nil
	}

	return FromBlock(rel.Options(), opts...)
}

// FromBlock wraps an existing options block without copying it.
func FromBlock(block []byte, opts ...ResolverOption) (*IndexOptions, error) {
	cfg := resolverConfig{defaults: DefaultSettings()}
	if err := ioptions.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseOptionsHeader(block)
	if err != nil {
		return nil, err
	}

	return &IndexOptions{
		data:     block,
		header:   header,
		defaults: cfg.defaults,
	}, nil
}

// defaulted synthesizes the all-defaults instance used when an index has
// no stored block.
func defaulted(d Defaults) *IndexOptions {
	return &IndexOptions{
		defaults: d,
		header: section.OptionsHeader{
			OptimizeAfter:    d.OptimizeAfter,
			CompressionLevel: d.CompressionLevel,
			Shards:           d.Shards,
			Replicas:         d.Replicas,
			BulkConcurrency:  d.BulkConcurrency,
			BatchSize:        d.BatchSize,
			LLAPI:            d.LLAPI,
		},
	}
}

// Scalar accessors are direct header reads, total over any instance.

func (o *IndexOptions) OptimizeAfter() int32    { return o.header.OptimizeAfter }
func (o *IndexOptions) CompressionLevel() int32 { return o.header.CompressionLevel }
func (o *IndexOptions) Shards() int32           { return o.header.Shards }
func (o *IndexOptions) Replicas() int32         { return o.header.Replicas }
func (o *IndexOptions) BulkConcurrency() int32  { return o.header.BulkConcurrency }
func (o *IndexOptions) BatchSize() int32        { return o.header.BatchSize }
func (o *IndexOptions) LLAPI() bool             { return o.header.LLAPI }

// URL returns the configured server URL, or the url default when unset.
// The stored value is returned verbatim; it was validated when the block
// was constructed and is trusted on read.
func (o *IndexOptions) URL() (string, error) {
	s, ok, err := o.getString("url", o.header.URLOffset)
	if err != nil {
		return "", err
	}
	if !ok {
		return o.defaults.URL, nil
	}

	return s, nil
}

// TypeName returns the configured type name, or the type_name default.
func (o *IndexOptions) TypeName() (string, error) {
	s, ok, err := o.getString("type_name", o.header.TypeNameOffset)
	if err != nil {
		return "", err
	}
	if !ok {
		return o.defaults.TypeName, nil
	}

	return s, nil
}

// RefreshInterval returns the configured refresh interval, or the
// refresh_interval default.
func (o *IndexOptions) RefreshInterval() (string, error) {
	s, ok, err := o.getString("refresh_interval", o.header.RefreshIntervalOffset)
	if err != nil {
		return "", err
	}
	if !ok {
		return o.defaults.RefreshInterval, nil
	}

	return s, nil
}

// getString reads the NUL-terminated string addressed by offset.
//
// A sentinel offset reports (_, false, nil): the field is unset. The read
// never proceeds past the allocated block length, and the bytes must be
// valid UTF-8.
func (o *IndexOptions) getString(field string, offset int32) (string, bool, error) {
	if offset == section.SentinelOffset {
		return "", false, nil
	}

	// Header validation already rejected offsets outside the block; this
	// guards the synthesized-defaults instance, which has no data at all.
	if o.data == nil || offset < section.HeaderSize || int(offset) >= len(o.data) {
		return "", false, fmt.Errorf("%w: %s offset %d in block of length %d",
			errs.ErrOffsetOutOfRange, field, offset, len(o.data))
	}

	span := o.data[offset:]
	end := bytes.IndexByte(span, 0)
	if end < 0 {
		return "", false, fmt.Errorf("%w: %s", errs.ErrMissingTerminator, field)
	}

	value := span[:end]
	if !utf8.Valid(value) {
		return "", false, fmt.Errorf("%w: %s", errs.ErrInvalidEncoding, field)
	}

	return string(value), true, nil
}
