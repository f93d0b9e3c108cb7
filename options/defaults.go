package options

import (
	"math"
	"runtime"
)

// Default values for every recognized option. String defaults are applied
// at read time by the resolver; int and bool defaults are embedded by the
// parsing pass at block construction time.
const (
	DefaultURL             = "default"
	DefaultTypeName        = "doc"
	DefaultRefreshInterval = "-1"

	DefaultBatchSize        = 8 * 1024 * 1024
	DefaultCompressionLevel = 1
	DefaultShards           = 5
	DefaultReplicas         = 0
	DefaultOptimizeAfter    = 0
)

// Bounds for the integer options.
const (
	MinShards = 1
	MaxShards = 32768

	MinReplicas = 0
	MaxReplicas = 32768

	MinCompressionLevel = 0
	MaxCompressionLevel = 9

	MinBulkConcurrency = 1

	MinBatchSize = 1
	MaxBatchSize = math.MaxInt32/2 - 1

	MinOptimizeAfter = 0
	MaxOptimizeAfter = math.MaxInt32
)

// defaultBulkConcurrency is the number of parallel execution units
// available to the process, captured once at start.
var defaultBulkConcurrency = int32(runtime.NumCPU())

// MaxBulkConcurrency returns the upper bound for bulk_concurrency.
func MaxBulkConcurrency() int32 {
	return defaultBulkConcurrency
}

// Defaults carries the default value for every option. It is an explicit
// value threaded into the Registry and the resolver rather than mutable
// process-wide state, so tests can supply alternates.
type Defaults struct {
	URL             string
	TypeName        string
	RefreshInterval string

	OptimizeAfter    int32
	CompressionLevel int32
	Shards           int32
	Replicas         int32
	BulkConcurrency  int32
	BatchSize        int32
	LLAPI            bool
}

// DefaultSettings returns the stock defaults: the documented constants,
// with bulk_concurrency set to the process's available execution units.
func DefaultSettings() Defaults {
	return Defaults{
		URL:              DefaultURL,
		TypeName:         DefaultTypeName,
		RefreshInterval:  DefaultRefreshInterval,
		OptimizeAfter:    DefaultOptimizeAfter,
		CompressionLevel: DefaultCompressionLevel,
		Shards:           DefaultShards,
		Replicas:         DefaultReplicas,
		BulkConcurrency:  defaultBulkConcurrency,
		BatchSize:        DefaultBatchSize,
		LLAPI:            false,
	}
}
