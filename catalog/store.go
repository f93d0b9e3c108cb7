package catalog

import (
	"fmt"
	"sync"

	"github.com/timClicks/zombodb/compress"
	"github.com/timClicks/zombodb/errs"
	"github.com/timClicks/zombodb/format"
	"github.com/timClicks/zombodb/internal/hash"
	"github.com/timClicks/zombodb/internal/options"
)

// Store holds relation metadata and their attached options blocks.
//
// Reads are safe from many goroutines concurrently; writes are serialized
// by the store. An attached block is never mutated in place: PutOptions
// always installs a brand-new block, so a decoder holding a previously
// returned snapshot keeps seeing the bytes it was given.
type Store struct {
	mu        sync.RWMutex
	relations map[Oid]*storedRelation

	compression format.CompressionType
	codec       compress.Codec
}

// storedRelation pairs the relation metadata with its at-rest block.
type storedRelation struct {
	rel Relation

	// checksum is the xxHash64 of the uncompressed block, verified on
	// every read.
	checksum    uint64
	compression format.CompressionType
	payload     []byte
}

// StoreOption configures a Store.
type StoreOption = options.Option[*Store]

// WithCompression selects the at-rest compression for stored blocks.
// Blocks handed back out of the store are always decompressed, so the
// block layout stays bit-exact regardless of this setting.
func WithCompression(ct format.CompressionType) StoreOption {
	return options.New(func(s *Store) error {
		codec, err := compress.GetCodec(ct)
		if err != nil {
			return err
		}
		s.compression = ct
		s.codec = codec

		return nil
	})
}

// NewStore creates an empty catalog store. Without options, blocks are
// stored uncompressed.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{
		relations:   make(map[Oid]*storedRelation),
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Add registers a relation. Any options already attached to rel are
// stored through the same path PutOptions uses.
func (s *Store) Add(rel Relation) error {
	block := rel.options
	rel.options = nil

	s.mu.Lock()
	if _, ok := s.relations[rel.ID]; ok {
		s.mu.Unlock()
		return fmt.Errorf("relation %d already exists", rel.ID)
	}
	s.relations[rel.ID] = &storedRelation{rel: rel}
	s.mu.Unlock()

	if len(block) > 0 {
		return s.PutOptions(rel.ID, block)
	}

	return nil
}

// PutOptions attaches a new options block to the relation, replacing any
// existing one. The block is copied, so the caller's buffer stays owned by
// the caller; replacement is atomic with respect to concurrent readers.
func (s *Store) PutOptions(id Oid, block []byte) error {
	owned := make([]byte, len(block))
	copy(owned, block)

	payload, err := s.codec.Compress(owned)
	if err != nil {
		return fmt.Errorf("failed to compress options block for relation %d: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.relations[id]
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrRelationNotFound, id)
	}

	stored.checksum = hash.Checksum(owned)
	stored.compression = s.compression
	stored.payload = payload

	return nil
}

// DropOptions detaches the options block from the relation, if any.
func (s *Store) DropOptions(id Oid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.relations[id]
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrRelationNotFound, id)
	}

	stored.checksum = 0
	stored.payload = nil

	return nil
}

// Relation returns a snapshot of the relation with its options block
// attached. The block is verified against its stored checksum; a mismatch
// means the at-rest copy is corrupt.
func (s *Store) Relation(id Oid) (*Relation, error) {
	s.mu.RLock()
	stored, ok := s.relations[id]
	if !ok {
		s.mu.RUnlock()
		return nil, fmt.Errorf("%w: %d", errs.ErrRelationNotFound, id)
	}

	rel := stored.rel
	checksum := stored.checksum
	compression := stored.compression
	payload := stored.payload
	s.mu.RUnlock()

	if len(payload) == 0 {
		return &rel, nil
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	block, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress options block for relation %d: %w", id, err)
	}

	if hash.Checksum(block) != checksum {
		return nil, fmt.Errorf("%w: relation %d", errs.ErrChecksumMismatch, id)
	}

	rel.options = block

	return &rel, nil
}

// Identity performs the catalog lookups needed to derive external names
// for the given index over its heap relation.
func (s *Store) Identity(heapID, indexID Oid) (Identity, error) {
	heap, err := s.Relation(heapID)
	if err != nil {
		return Identity{}, err
	}

	index, err := s.Relation(indexID)
	if err != nil {
		return Identity{}, err
	}

	return ResolveIdentity(heap, index)
}
