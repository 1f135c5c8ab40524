package shape

import "reflect"

// Descriptor carries the shape metadata registered for a Go type.
type Descriptor interface {
	// TypeName returns the declared name of the type.
	TypeName() string
}

// VariantKind is the payload shape of an enum variant.
type VariantKind int

const (
	KindUnit VariantKind = iota
	KindNewtype
	KindTuple
	KindStruct
)

func (k VariantKind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindNewtype:
		return "newtype"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Variant describes one case of an enum. For sum types Type is the concrete
// variant struct; for integer-backed enums Type is nil and the variant index
// is the integer value.
type Variant struct {
	Type reflect.Type
	Name string
	Kind VariantKind
}

// UnitVariant declares a payload-free case of an integer-backed enum.
func UnitVariant(name string) Variant {
	return Variant{Name: name, Kind: KindUnit}
}

// UnitVariantOf declares a payload-free case backed by the empty struct T.
func UnitVariantOf[T any](name string) Variant {
	return Variant{Name: name, Kind: KindUnit, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// NewtypeVariantOf declares a case backed by struct T carrying one value.
func NewtypeVariantOf[T any](name string) Variant {
	return Variant{Name: name, Kind: KindNewtype, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// TupleVariantOf declares a case backed by struct T whose fields are
// positional.
func TupleVariantOf[T any](name string) Variant {
	return Variant{Name: name, Kind: KindTuple, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// StructVariantOf declares a case backed by struct T whose fields are named.
func StructVariantOf[T any](name string) Variant {
	return Variant{Name: name, Kind: KindStruct, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// Enum describes a tagged union: a declared type name and the ordered list of
// legal variants.
type Enum struct {
	Name     string
	Variants []Variant
}

// NewEnum builds an enum descriptor from its declared name and variants.
func NewEnum(name string, variants ...Variant) *Enum {
	return &Enum{Name: name, Variants: variants}
}

// TypeName implements Descriptor.
func (e *Enum) TypeName() string { return e.Name }

// VariantNames returns the declared variant names in declaration order.
func (e *Enum) VariantNames() []string {
	names := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		names[i] = v.Name
	}
	return names
}

// ByName returns the index and descriptor of the variant with the given
// declared name, or (-1, nil) when no variant matches.
func (e *Enum) ByName(name string) (int, *Variant) {
	for i := range e.Variants {
		if e.Variants[i].Name == name {
			return i, &e.Variants[i]
		}
	}
	return -1, nil
}

// ByType returns the index and descriptor of the variant backed by the given
// Go type, or (-1, nil) when no variant matches.
func (e *Enum) ByType(t reflect.Type) (int, *Variant) {
	for i := range e.Variants {
		if e.Variants[i].Type == t {
			return i, &e.Variants[i]
		}
	}
	return -1, nil
}

// Unit names a fieldless type. Registering it overrides the reflected type
// name on both encode and decode.
type Unit struct {
	Name string
}

// TypeName implements Descriptor.
func (u Unit) TypeName() string { return u.Name }

// Newtype names a single-value wrapper type. Encoding yields the declared
// name with the wrapped value discarded; the wrapper is not decodable.
type Newtype struct {
	Name string
}

// TypeName implements Descriptor.
func (n Newtype) TypeName() string { return n.Name }
