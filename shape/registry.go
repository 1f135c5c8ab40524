package shape

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/namecast/namecast/errors"
)

// Entry is a single (type, descriptor) association in a registry snapshot.
type Entry struct {
	Type       reflect.Type
	Descriptor Descriptor
}

type variantRef struct {
	enum  *Enum
	index int
}

type registry struct {
	mu       sync.RWMutex
	types    map[reflect.Type]Descriptor
	variants map[reflect.Type]variantRef
}

var global = &registry{
	types:    make(map[reflect.Type]Descriptor),
	variants: make(map[reflect.Type]variantRef),
}

// Register associates a descriptor with a Go type. Registration is expected
// at init time; conflicting re-registrations fail. Registering the same
// descriptor for the same type again is a no-op.
func Register(t reflect.Type, d Descriptor) error {
	if t == nil {
		return errors.Message(errors.Serialization, "cannot register a nil type")
	}
	if err := validate(t, d); err != nil {
		return err
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	if existing, ok := global.types[t]; ok {
		if existing == d {
			return nil
		}
		return errors.Message(errors.Serialization,
			"conflicting registration for type %s: already registered as %q", t, existing.TypeName())
	}

	if e, ok := d.(*Enum); ok {
		for i := range e.Variants {
			vt := e.Variants[i].Type
			if vt == nil {
				continue
			}
			if ref, ok := global.variants[vt]; ok {
				return errors.Message(errors.Serialization,
					"type %s is already a variant of enum %q", vt, ref.enum.Name)
			}
		}
		for i := range e.Variants {
			if vt := e.Variants[i].Type; vt != nil {
				global.variants[vt] = variantRef{enum: e, index: i}
			}
		}
	}

	global.types[t] = d
	Logger().Debug("registered shape descriptor",
		zap.String("name", d.TypeName()),
		zap.String("type", t.String()))
	return nil
}

func validate(t reflect.Type, d Descriptor) error {
	if d == nil || d.TypeName() == "" {
		return errors.Message(errors.Serialization, "descriptor for type %s has no name", t)
	}

	switch desc := d.(type) {
	case *Enum:
		return validateEnum(t, desc)
	case Unit:
		if t.Kind() != reflect.Struct || t.NumField() != 0 {
			return errors.Message(errors.Serialization,
				"unit descriptor %q requires a fieldless struct, got %s", desc.Name, t)
		}
	case Newtype:
		if t.Kind() != reflect.Struct || t.NumField() != 1 {
			return errors.Message(errors.Serialization,
				"newtype descriptor %q requires a single-field struct, got %s", desc.Name, t)
		}
	}
	return nil
}

func validateEnum(t reflect.Type, e *Enum) error {
	seen := make(map[string]struct{}, len(e.Variants))
	for i := range e.Variants {
		v := &e.Variants[i]
		if v.Name == "" {
			return errors.Message(errors.Serialization, "enum %q: variant %d has no name", e.Name, i)
		}
		if _, dup := seen[v.Name]; dup {
			return errors.Message(errors.Serialization, "enum %q: duplicate variant name %q", e.Name, v.Name)
		}
		seen[v.Name] = struct{}{}
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// Integer-backed enums carry no payload, so every variant is a unit.
		for i := range e.Variants {
			v := &e.Variants[i]
			if v.Kind != KindUnit || v.Type != nil {
				return errors.Message(errors.Serialization,
					"enum %q: integer-backed variant %q must be a unit variant", e.Name, v.Name)
			}
		}
	case reflect.Interface:
		for i := range e.Variants {
			v := &e.Variants[i]
			if v.Type == nil {
				return errors.Message(errors.Serialization,
					"enum %q: variant %q of a sum type needs a backing struct", e.Name, v.Name)
			}
			if v.Type.Kind() != reflect.Struct {
				return errors.Message(errors.Serialization,
					"enum %q: variant %q must be backed by a struct, got %s", e.Name, v.Name, v.Type)
			}
			if !v.Type.Implements(t) {
				return errors.Message(errors.Serialization,
					"enum %q: variant type %s does not implement %s", e.Name, v.Type, t)
			}
		}
	default:
		return errors.Message(errors.Serialization,
			"enum %q must be registered for an integer or interface type, got %s", e.Name, t)
	}
	return nil
}

// MustRegister is Register, panicking on error. Intended for init-time use.
func MustRegister(t reflect.Type, d Descriptor) {
	if err := Register(t, d); err != nil {
		panic(err)
	}
}

// RegisterFor associates a descriptor with the type T.
func RegisterFor[T any](d Descriptor) error {
	return Register(reflect.TypeOf((*T)(nil)).Elem(), d)
}

// MustRegisterFor is RegisterFor, panicking on error.
func MustRegisterFor[T any](d Descriptor) {
	MustRegister(reflect.TypeOf((*T)(nil)).Elem(), d)
}

// Lookup returns the descriptor registered for a type, if any.
func Lookup(t reflect.Type) (Descriptor, bool) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	d, ok := global.types[t]
	return d, ok
}

// lookupVariant resolves a concrete type to the enum case it backs.
func lookupVariant(t reflect.Type) (*Enum, int, *Variant, bool) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	ref, ok := global.variants[t]
	if !ok {
		return nil, 0, nil, false
	}
	return ref.enum, ref.index, &ref.enum.Variants[ref.index], true
}

// Entries returns a snapshot of all registrations for diagnostics.
func Entries() []Entry {
	global.mu.RLock()
	defer global.mu.RUnlock()
	entries := make([]Entry, 0, len(global.types))
	for t, d := range global.types {
		entries = append(entries, Entry{Type: t, Descriptor: d})
	}
	return entries
}

// Count returns the number of registered types.
func Count() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return len(global.types)
}

// Reset clears all registrations. Intended for tests.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.types = make(map[reflect.Type]Descriptor)
	global.variants = make(map[reflect.Type]variantRef)
}
