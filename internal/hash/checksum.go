package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given block bytes. It is the
// integrity checksum the catalog store records alongside each options
// block.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
