package shape

// Serializer is the encode-side half of the traversal contract. Walk selects
// exactly one top-level method per value based on its shape; implementations
// decide which shapes they support.
//
// The compound methods (seq, tuple, map, tuple struct, struct, tuple variant,
// struct variant) return a field serializer driving a field-by-field visit
// that Walk finishes with End.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeInt8(v int8) error
	SerializeInt16(v int16) error
	SerializeInt32(v int32) error
	SerializeInt64(v int64) error
	SerializeUint8(v uint8) error
	SerializeUint16(v uint16) error
	SerializeUint32(v uint32) error
	SerializeUint64(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeRune(v rune) error
	SerializeString(v string) error
	SerializeBytes(v []byte) error

	// SerializeNone reports an absent optional value.
	SerializeNone() error
	// SerializeSome tags a present optional value; Walk then recurses into
	// the wrapped value on the same Serializer.
	SerializeSome() error
	// SerializeUnit reports the anonymous unit value (an empty struct with
	// no type name).
	SerializeUnit() error

	SerializeUnitStruct(name string) error
	SerializeNewtypeStruct(name string, value any) error

	SerializeSeq(length int) (FieldSerializer, error)
	SerializeTuple(length int) (FieldSerializer, error)
	SerializeMap(length int) (EntrySerializer, error)
	SerializeTupleStruct(name string, length int) (FieldSerializer, error)
	SerializeStruct(name string, length int) (StructFieldSerializer, error)

	SerializeUnitVariant(enum string, index int, variant string) error
	SerializeNewtypeVariant(enum string, index int, variant string, value any) error
	SerializeTupleVariant(enum string, index int, variant string, length int) (FieldSerializer, error)
	SerializeStructVariant(enum string, index int, variant string, length int) (StructFieldSerializer, error)
}

// FieldSerializer visits the unnamed fields of a compound shape.
type FieldSerializer interface {
	SerializeField(value any) error
	End() error
}

// StructFieldSerializer visits the named fields of a struct shape.
type StructFieldSerializer interface {
	SerializeField(name string, value any) error
	End() error
}

// EntrySerializer visits the entries of a map shape.
type EntrySerializer interface {
	SerializeEntry(key, value any) error
	End() error
}

// Deserializer is the decode-side half of the traversal contract. Build
// selects exactly one top-level method per target based on the requested
// shape; implementations decide which shapes they can produce.
type Deserializer interface {
	DeserializeBool() (bool, error)
	DeserializeInt8() (int8, error)
	DeserializeInt16() (int16, error)
	DeserializeInt32() (int32, error)
	DeserializeInt64() (int64, error)
	DeserializeUint8() (uint8, error)
	DeserializeUint16() (uint16, error)
	DeserializeUint32() (uint32, error)
	DeserializeUint64() (uint64, error)
	DeserializeFloat32() (float32, error)
	DeserializeFloat64() (float64, error)
	DeserializeRune() (rune, error)
	DeserializeString() (string, error)
	DeserializeBytes() ([]byte, error)

	// DeserializeIdentifier reads a name. It is the primitive underlying
	// variant-name probing.
	DeserializeIdentifier() (string, error)

	// DeserializeUnit requests the anonymous unit value.
	DeserializeUnit() error
	DeserializeUnitStruct(name string) error
	DeserializeNewtypeStruct(name string) error
	DeserializeTupleStruct(name string, length int) error
	DeserializeStruct(name string, fields []string) error
	DeserializeSeq() error
	DeserializeTuple(length int) error
	DeserializeMap() error
	DeserializeAny() error
	DeserializeIgnoredAny() error

	// DeserializeOption requests an optional value through the variant
	// probing protocol.
	DeserializeOption(fn func(VariantAccess) error) error
	// DeserializeEnum requests one of the declared variants. The fn callback
	// reads the discriminant name and declares the payload shape through the
	// VariantAccess protocol.
	DeserializeEnum(name string, variants []string, fn func(VariantAccess) error) error
}

// VariantAccess is the two-phase variant decoding protocol: first the caller
// reads the discriminant name, then it declares the payload shape of the
// matched variant by calling exactly one of the variant methods.
type VariantAccess interface {
	VariantName() (string, error)
	UnitVariant() error
	NewtypeVariant() error
	TupleVariant(length int) error
	StructVariant(fields []string) error
}
