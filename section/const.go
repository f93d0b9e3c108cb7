package section

import "math"

// Byte offsets of every header field in the options block. The layout is
// fixed and little-endian on the wire; it must be preserved bit-for-bit
// across versions so blocks written by one version decode under any other.
const (
	LengthOffset              = 0  // i32 total block length
	URLOffsetSlot             = 4  // i32 offset of the url string
	TypeNameOffsetSlot        = 8  // i32 offset of the type_name string
	RefreshIntervalOffsetSlot = 12 // i32 offset of the refresh_interval string
	AliasOffsetSlot           = 16 // i32 offset of the alias string
	UUIDOffsetSlot            = 20 // i32 offset of the uuid string
	OptimizeAfterOffset       = 24 // i32 optimize_after
	CompressionLevelOffset    = 28 // i32 compression_level
	ShardsOffset              = 32 // i32 shards
	ReplicasOffset            = 36 // i32 replicas
	BulkConcurrencyOffset     = 40 // i32 bulk_concurrency
	BatchSizeOffset           = 44 // i32 batch_size
	LLAPIOffset               = 48 // bool llapi (1 byte)

	// HeaderSize is the fixed header size in bytes: the llapi byte plus
	// three bytes of padding to keep the header at natural i32 alignment.
	HeaderSize = 52
)

// SentinelOffset is the reserved string-offset value meaning "field not
// set, use the default".
const SentinelOffset = 0

// MaxBlockLength bounds the declared block length. Offsets are signed
// 32-bit values, so a block can never exceed this.
const MaxBlockLength = math.MaxInt32

// FieldKind is the type of a header field as seen by the option parser.
type FieldKind uint8

const (
	FieldString FieldKind = iota + 1 // NUL-terminated string addressed by offset
	FieldInt                         // i32 scalar
	FieldBool                        // 1-byte bool scalar
)

func (k FieldKind) String() string {
	switch k {
	case FieldString:
		return "string"
	case FieldInt:
		return "int"
	case FieldBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseElt maps one recognized option name to its kind and the byte offset
// of its header slot. For string options the slot holds the string offset,
// not the string itself.
type ParseElt struct {
	Name   string
	Kind   FieldKind
	Offset int
}

// ParseTable is the single source of truth shared by the option registry
// and the block encoder. Entry order matches the header layout, which is
// also the order trailing strings are appended in.
var ParseTable = [...]ParseElt{
	{Name: "url", Kind: FieldString, Offset: URLOffsetSlot},
	{Name: "type_name", Kind: FieldString, Offset: TypeNameOffsetSlot},
	{Name: "refresh_interval", Kind: FieldString, Offset: RefreshIntervalOffsetSlot},
	{Name: "alias", Kind: FieldString, Offset: AliasOffsetSlot},
	{Name: "uuid", Kind: FieldString, Offset: UUIDOffsetSlot},
	{Name: "optimize_after", Kind: FieldInt, Offset: OptimizeAfterOffset},
	{Name: "compression_level", Kind: FieldInt, Offset: CompressionLevelOffset},
	{Name: "shards", Kind: FieldInt, Offset: ShardsOffset},
	{Name: "replicas", Kind: FieldInt, Offset: ReplicasOffset},
	{Name: "bulk_concurrency", Kind: FieldInt, Offset: BulkConcurrencyOffset},
	{Name: "batch_size", Kind: FieldInt, Offset: BatchSizeOffset},
	{Name: "llapi", Kind: FieldBool, Offset: LLAPIOffset},
}
