// Package shape is the traversal boundary between Go values and the codec.
//
// It defines the Serializer and Deserializer contracts (one method per
// possible shape), the descriptors declaring how Go types map onto those
// shapes, and the reflect-driven Walk/Build drivers that call exactly one
// top-level contract method per value.
//
// # Shapes
//
// A shape is the structural category of a value as the contract sees it:
//
//	Scalar        bool, signed and unsigned integers, floats, rune
//	Textual       string, bytes
//	Optional      none / some (nil and non-nil pointers)
//	Unit          the anonymous empty struct
//	Unit struct   a named fieldless type
//	Newtype       a named single-value wrapper
//	Compound      seq, tuple, map, tuple struct, struct
//	Variants      unit, newtype, tuple and struct enum cases
//
// # Descriptors
//
// Enum, Unit and Newtype descriptors associate declared names with Go types
// through a process-wide registry:
//
//	type Level int
//
//	const (
//	    Debug Level = iota
//	    Info
//	)
//
//	shape.MustRegisterFor[Level](shape.NewEnum("Level",
//	    shape.UnitVariant("Debug"),
//	    shape.UnitVariant("Info"),
//	))
//
// Sum types register one backing struct per variant:
//
//	shape.MustRegisterFor[Event](shape.NewEnum("Event",
//	    shape.UnitVariantOf[Started]("Started"),
//	    shape.NewtypeVariantOf[Crashed]("Crashed"),
//	))
//
// Registration is expected at init time; lookups afterwards are read-only.
// Types may alternatively implement Namer to override their reflected name
// without a registry entry.
//
// # Drivers
//
// Walk(v, s) classifies v and invokes one Serializer method; Build(d, &v)
// classifies the target type and invokes one Deserializer method. Enum and
// optional decoding run the two-phase VariantAccess protocol: read the
// discriminant name, then declare the payload shape of the matched variant.
package shape
