package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timClicks/zombodb/errs"
	"github.com/timClicks/zombodb/section"
)

// Value is one resolved option: the definition it resolved against plus
// the typed value. Exactly one of Str, Int or Bool is meaningful,
// according to Def.Kind.
type Value struct {
	Def  Definition
	Str  string
	Int  int32
	Bool bool
}

// Set is the output of the parsing pass: the fully resolved option set the
// Encoder consumes. Every int and bool option is present (supplied or
// defaulted); string options are present only when supplied.
type Set struct {
	values map[string]Value
}

// String returns the supplied string value for the named option, and
// whether one was supplied.
func (s *Set) String(name string) (string, bool) {
	v, ok := s.values[name]
	if !ok || v.Def.Kind != section.FieldString {
		return "", false
	}

	return v.Str, true
}

// Int returns the resolved int value for the named option.
func (s *Set) Int(name string) int32 {
	return s.values[name].Int
}

// Bool returns the resolved bool value for the named option.
func (s *Set) Bool(name string) bool {
	return s.values[name].Bool
}

// Len returns the number of resolved values in the set.
func (s *Set) Len() int {
	return len(s.values)
}

// Parse resolves raw (name, value) pairs from a DDL WITH clause against
// the registry.
//
// Unknown names, unconvertible values and out-of-bounds integers fail with
// the offending option named. String values may not contain NUL, since the
// block stores them NUL-terminated. Option validators (the url validator)
// run only when validate is true: block construction validates, replay of
// previously stored values does not.
//
// Ints and bools not present in raw get their declared defaults embedded,
// so the encoder copies scalars verbatim without consulting defaults.
// String options are never defaulted here; their defaults are resolved at
// read time.
//
// A failed parse returns no Set: nothing partially constructed survives.
func (r *Registry) Parse(raw map[string]string, validate bool) (*Set, error) {
	set := &Set{values: make(map[string]Value, len(section.ParseTable))}

	for name, rawValue := range raw {
		def, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownOption, name)
		}

		value := Value{Def: def}
		switch def.Kind {
		case section.FieldString:
			if strings.ContainsRune(rawValue, 0) {
				return nil, fmt.Errorf("%w: option %q contains a NUL byte", errs.ErrInvalidOptionType, name)
			}
			if validate && def.Validate != nil {
				if err := def.Validate(rawValue); err != nil {
					return nil, fmt.Errorf("option %q: %w", name, err)
				}
			}
			value.Str = rawValue

		case section.FieldInt:
			parsed, err := strconv.ParseInt(rawValue, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: option %q value %q is not an integer",
					errs.ErrInvalidOptionType, name, rawValue)
			}
			n := int32(parsed)
			if n < def.Min || n > def.Max {
				return nil, fmt.Errorf("%w: option %q value %d not in [%d, %d]",
					errs.ErrOptionOutOfRange, name, n, def.Min, def.Max)
			}
			value.Int = n

		case section.FieldBool:
			b, err := parseBool(rawValue)
			if err != nil {
				return nil, fmt.Errorf("%w: option %q value %q is not a boolean",
					errs.ErrInvalidOptionType, name, rawValue)
			}
			value.Bool = b
		}

		set.values[name] = value
	}

	// Embed declared defaults for every int/bool left unset.
	for _, def := range r.Definitions() {
		if _, ok := set.values[def.Name]; ok {
			continue
		}
		switch def.Kind {
		case section.FieldInt:
			set.values[def.Name] = Value{Def: def, Int: def.IntDefault}
		case section.FieldBool:
			set.values[def.Name] = Value{Def: def, Bool: def.BoolDefault}
		case section.FieldString:
			// String defaults are resolved at read time.
		}
	}

	return set, nil
}

// parseBool accepts Go bool literals plus the on/off spellings DDL allows.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return strconv.ParseBool(raw)
	}
}
