package section

import (
	"fmt"

	"github.com/timClicks/zombodb/endian"
	"github.com/timClicks/zombodb/errs"
)

// OptionsHeader is the fixed-size header at the start of an options block.
//
// The five *Offset fields address NUL-terminated UTF-8 strings in the
// trailing region of the block, as absolute byte offsets from block start.
// An offset of SentinelOffset (0) means the field is unset and the
// documented default applies.
type OptionsHeader struct {
	// Length is the declared total block length: HeaderSize plus the sum
	// of all trailing string spans.
	Length int32 // byte offset 0-3

	URLOffset             int32 // byte offset 4-7
	TypeNameOffset        int32 // byte offset 8-11
	RefreshIntervalOffset int32 // byte offset 12-15
	AliasOffset           int32 // byte offset 16-19
	UUIDOffset            int32 // byte offset 20-23

	OptimizeAfter    int32 // byte offset 24-27
	CompressionLevel int32 // byte offset 28-31
	Shards           int32 // byte offset 32-35
	Replicas         int32 // byte offset 36-39
	BulkConcurrency  int32 // byte offset 40-43
	BatchSize        int32 // byte offset 44-47
	LLAPI            bool  // byte offset 48
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is not HeaderSize bytes
func (h *OptionsHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Length = int32(engine.Uint32(data[LengthOffset:]))
	h.URLOffset = int32(engine.Uint32(data[URLOffsetSlot:]))
	h.TypeNameOffset = int32(engine.Uint32(data[TypeNameOffsetSlot:]))
	h.RefreshIntervalOffset = int32(engine.Uint32(data[RefreshIntervalOffsetSlot:]))
	h.AliasOffset = int32(engine.Uint32(data[AliasOffsetSlot:]))
	h.UUIDOffset = int32(engine.Uint32(data[UUIDOffsetSlot:]))
	h.OptimizeAfter = int32(engine.Uint32(data[OptimizeAfterOffset:]))
	h.CompressionLevel = int32(engine.Uint32(data[CompressionLevelOffset:]))
	h.Shards = int32(engine.Uint32(data[ShardsOffset:]))
	h.Replicas = int32(engine.Uint32(data[ReplicasOffset:]))
	h.BulkConcurrency = int32(engine.Uint32(data[BulkConcurrencyOffset:]))
	h.BatchSize = int32(engine.Uint32(data[BatchSizeOffset:]))
	h.LLAPI = data[LLAPIOffset] != 0

	return nil
}

// Bytes serializes the OptionsHeader into a HeaderSize byte slice.
// The three padding bytes after the llapi byte are always zero.
func (h *OptionsHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(b[LengthOffset:], uint32(h.Length))
	engine.PutUint32(b[URLOffsetSlot:], uint32(h.URLOffset))
	engine.PutUint32(b[TypeNameOffsetSlot:], uint32(h.TypeNameOffset))
	engine.PutUint32(b[RefreshIntervalOffsetSlot:], uint32(h.RefreshIntervalOffset))
	engine.PutUint32(b[AliasOffsetSlot:], uint32(h.AliasOffset))
	engine.PutUint32(b[UUIDOffsetSlot:], uint32(h.UUIDOffset))
	engine.PutUint32(b[OptimizeAfterOffset:], uint32(h.OptimizeAfter))
	engine.PutUint32(b[CompressionLevelOffset:], uint32(h.CompressionLevel))
	engine.PutUint32(b[ShardsOffset:], uint32(h.Shards))
	engine.PutUint32(b[ReplicasOffset:], uint32(h.Replicas))
	engine.PutUint32(b[BulkConcurrencyOffset:], uint32(h.BulkConcurrency))
	engine.PutUint32(b[BatchSizeOffset:], uint32(h.BatchSize))
	if h.LLAPI {
		b[LLAPIOffset] = 1
	}

	return b
}

// StringOffsets returns the five string-offset slots with their field
// names, in header order.
func (h *OptionsHeader) StringOffsets() []StringOffset {
	return []StringOffset{
		{Field: "url", Offset: h.URLOffset},
		{Field: "type_name", Offset: h.TypeNameOffset},
		{Field: "refresh_interval", Offset: h.RefreshIntervalOffset},
		{Field: "alias", Offset: h.AliasOffset},
		{Field: "uuid", Offset: h.UUIDOffset},
	}
}

// StringOffset pairs a string field name with its recorded block offset.
type StringOffset struct {
	Field  string
	Offset int32
}

// Validate checks the structural invariants of a parsed header against the
// length of the buffer it was read from.
//
// Every non-zero string offset must point strictly inside the block, past
// the header, and no two offsets may alias the same start byte. Negative
// offsets are rejected outright.
//
// Returns:
//   - error: errs.ErrInvalidBlockLength or errs.ErrOffsetOutOfRange with
//     the offending field named
func (h *OptionsHeader) Validate(blockLen int) error {
	if h.Length < HeaderSize {
		return fmt.Errorf("%w: declared length %d is smaller than header size %d",
			errs.ErrInvalidBlockLength, h.Length, HeaderSize)
	}
	if int(h.Length) != blockLen {
		return fmt.Errorf("%w: declared length %d does not match buffer length %d",
			errs.ErrInvalidBlockLength, h.Length, blockLen)
	}

	seen := make(map[int32]string, 5)
	for _, so := range h.StringOffsets() {
		if so.Offset == SentinelOffset {
			continue
		}
		if so.Offset < HeaderSize || so.Offset >= h.Length {
			return fmt.Errorf("%w: %s offset %d outside block of length %d",
				errs.ErrOffsetOutOfRange, so.Field, so.Offset, h.Length)
		}
		if prev, ok := seen[so.Offset]; ok {
			return fmt.Errorf("%w: %s offset %d aliases %s",
				errs.ErrOffsetOutOfRange, so.Field, so.Offset, prev)
		}
		seen[so.Offset] = so.Field
	}

	return nil
}

// ParseOptionsHeader parses and validates an OptionsHeader from a full
// options block.
//
// Parameters:
//   - data: Byte slice containing the entire block (header plus strings)
//
// Returns:
//   - OptionsHeader: Parsed header struct
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidBlockLength or
//     errs.ErrOffsetOutOfRange
func ParseOptionsHeader(data []byte) (OptionsHeader, error) {
	if len(data) < HeaderSize {
		return OptionsHeader{}, errs.ErrInvalidHeaderSize
	}

	h := OptionsHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return OptionsHeader{}, err
	}

	if err := h.Validate(len(data)); err != nil {
		return OptionsHeader{}, err
	}

	return h, nil
}
