package options

import (
	"github.com/timClicks/zombodb/endian"
	"github.com/timClicks/zombodb/internal/pool"
	"github.com/timClicks/zombodb/section"
)

// Encoder assembles one self-contained options block from a resolved
// option set.
//
// The block is the fixed header followed by every supplied string value,
// NUL-terminated, appended in the order their slots appear in the header.
// String offsets are absolute from block start; unset string slots hold
// section.SentinelOffset. The declared length always equals the header
// size plus the sum of the string spans, so the block decodes without any
// external data.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be
// used by a single goroutine at a time.
type Encoder struct {
	engine endian.EndianEngine
}

// NewEncoder creates an Encoder. The block layout is fixed little-endian.
func NewEncoder() *Encoder {
	return &Encoder{engine: endian.GetLittleEndianEngine()}
}

// Encode lays out the resolved set as a new options block.
//
// The parsing pass has already validated values and embedded int/bool
// defaults, so encoding itself cannot fail; the returned block is owned by
// the caller and immutable from this package's perspective.
//
// Returns:
//   - []byte: The encoded block (header plus trailing strings)
func (e *Encoder) Encode(set *Set) []byte {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	// Total size is known up front: header plus every supplied string
	// span including its NUL terminator.
	size := section.HeaderSize
	for _, elt := range section.ParseTable {
		if elt.Kind != section.FieldString {
			continue
		}
		if s, ok := set.String(elt.Name); ok {
			size += len(s) + 1
		}
	}

	// Grow reserves the full block up front, so the appends below never
	// reallocate and the header slice stays valid throughout.
	buf.Grow(size)
	header := buf.Extend(section.HeaderSize)

	for _, elt := range section.ParseTable {
		switch elt.Kind {
		case section.FieldString:
			s, ok := set.String(elt.Name)
			if !ok {
				// Slot stays at the sentinel offset 0.
				continue
			}
			e.engine.PutUint32(header[elt.Offset:], uint32(buf.Len()))
			buf.MustWrite([]byte(s))
			_ = buf.WriteByte(0)

		case section.FieldInt:
			e.engine.PutUint32(header[elt.Offset:], uint32(set.Int(elt.Name)))

		case section.FieldBool:
			if set.Bool(elt.Name) {
				header[elt.Offset] = 1
			}
		}
	}

	e.engine.PutUint32(header[section.LengthOffset:], uint32(buf.Len()))

	block := make([]byte, buf.Len())
	copy(block, buf.Bytes())

	return block
}

// EncodeOptions is a convenience that runs the parsing pass and the
// encoder in one step, the way index creation does: raw DDL pairs in,
// finished block out. Validation is always requested.
func EncodeOptions(registry *Registry, raw map[string]string) ([]byte, error) {
	set, err := registry.Parse(raw, true)
	if err != nil {
		return nil, err
	}

	return NewEncoder().Encode(set), nil
}
