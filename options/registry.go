package options

import (
	"fmt"

	"github.com/timClicks/zombodb/section"
)

// Validator checks a string option value at block-construction time.
type Validator func(value string) error

// Definition describes one recognized option: its kind, header slot,
// default and bounds. Definitions are derived from section.ParseTable, the
// single source of truth for the header layout.
type Definition struct {
	Name        string
	Kind        section.FieldKind
	Description string

	// Slot is the byte offset of the option's header slot. For string
	// options the slot holds the string offset, not the string itself.
	Slot int

	// StringDefault applies to string options. Empty means unset: the
	// accessor falls back to derivation (alias, uuid).
	StringDefault string

	// IntDefault, Min and Max apply to int options.
	IntDefault int32
	Min        int32
	Max        int32

	// BoolDefault applies to bool options.
	BoolDefault bool

	// Validate runs only when the parsing pass is invoked with validation
	// requested, never on replay of previously stored blocks.
	Validate Validator
}

// Registry is the recognized option set. It is consulted by the parsing
// pass for names, types, bounds and defaults, and by the encoder for
// header slot placement.
type Registry struct {
	defs  map[string]Definition
	order []string
}

// NewRegistry builds the registry of all recognized options with the given
// defaults.
func NewRegistry(d Defaults) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(section.ParseTable))}

	r.addString("url", "Server URL and port", d.URL, ValidateURL)
	r.addString("type_name", "What Elasticsearch index type name should ZDB use?  Default is 'doc'", d.TypeName, nil)
	r.addString("refresh_interval",
		"Frequency in which Elasticsearch indexes are refreshed.  Related to ES' index.refresh_interval setting",
		d.RefreshInterval, nil)
	r.addInt("shards", "The number of shards for the index", d.Shards, MinShards, MaxShards)
	r.addInt("replicas", "The number of replicas for the index", d.Replicas, MinReplicas, MaxReplicas)
	r.addInt("bulk_concurrency", "The maximum number of concurrent _bulk API requests",
		d.BulkConcurrency, MinBulkConcurrency, MaxBulkConcurrency())
	r.addInt("batch_size", "The size in bytes of batch calls to the _bulk API",
		d.BatchSize, MinBatchSize, MaxBatchSize)
	r.addInt("compression_level", "0-9 value to indicate the level of HTTP compression",
		d.CompressionLevel, MinCompressionLevel, MaxCompressionLevel)
	r.addString("alias", "The Elasticsearch Alias to which this index should belong", "", nil)
	r.addInt("optimize_after", "After how many deleted docs should ZDB _optimize the ES index during VACUUM?",
		d.OptimizeAfter, MinOptimizeAfter, MaxOptimizeAfter)
	r.addBool("llapi", "Will this index be used by ZomboDB's low-level API?", d.LLAPI)
	r.addString("uuid", "The Elasticsearch index name, as a UUID", "", nil)

	return r
}

// Lookup returns the definition for the given option name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Definitions returns all definitions in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.defs[name])
	}

	return defs
}

func (r *Registry) addString(name, desc, def string, validate Validator) {
	r.add(Definition{
		Name:          name,
		Kind:          section.FieldString,
		Description:   desc,
		Slot:          slotFor(name, section.FieldString),
		StringDefault: def,
		Validate:      validate,
	})
}

func (r *Registry) addInt(name, desc string, def, minVal, maxVal int32) {
	r.add(Definition{
		Name:        name,
		Kind:        section.FieldInt,
		Description: desc,
		Slot:        slotFor(name, section.FieldInt),
		IntDefault:  def,
		Min:         minVal,
		Max:         maxVal,
	})
}

func (r *Registry) addBool(name, desc string, def bool) {
	r.add(Definition{
		Name:        name,
		Kind:        section.FieldBool,
		Description: desc,
		Slot:        slotFor(name, section.FieldBool),
		BoolDefault: def,
	})
}

func (r *Registry) add(def Definition) {
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
}

// slotFor resolves an option name to its header slot via the layout table.
// A name or kind that disagrees with the table is a programming defect in
// the registry itself, not a runtime condition.
func slotFor(name string, kind section.FieldKind) int {
	for _, elt := range section.ParseTable {
		if elt.Name == name {
			if elt.Kind != kind {
				panic(fmt.Sprintf("option %q registered as %s but laid out as %s", name, kind, elt.Kind))
			}

			return elt.Offset
		}
	}

	panic(fmt.Sprintf("option %q has no header slot", name))
}
