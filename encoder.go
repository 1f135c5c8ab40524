package namecast

import (
	"github.com/namecast/namecast/errors"
	"github.com/namecast/namecast/shape"
)

// nameSerializer extracts the discriminant name of a value and discards any
// payload. Only name-bearing shapes succeed; everything else is rejected with
// a tag identifying the attempted operation. One instance serves exactly one
// top-level traversal.
type nameSerializer struct {
	name string
}

var _ shape.Serializer = (*nameSerializer)(nil)

func unsupportedEncode(op string) error {
	return errors.Unsupported(errors.Serialization, op)
}

func (s *nameSerializer) SerializeBool(bool) error { return unsupportedEncode("bool") }
func (s *nameSerializer) SerializeInt8(int8) error { return unsupportedEncode("int8") }
func (s *nameSerializer) SerializeInt16(int16) error { return unsupportedEncode("int16") }
func (s *nameSerializer) SerializeInt32(int32) error { return unsupportedEncode("int32") }
func (s *nameSerializer) SerializeInt64(int64) error { return unsupportedEncode("int64") }
func (s *nameSerializer) SerializeUint8(uint8) error { return unsupportedEncode("uint8") }
func (s *nameSerializer) SerializeUint16(uint16) error { return unsupportedEncode("uint16") }
func (s *nameSerializer) SerializeUint32(uint32) error { return unsupportedEncode("uint32") }
func (s *nameSerializer) SerializeUint64(uint64) error { return unsupportedEncode("uint64") }
func (s *nameSerializer) SerializeFloat32(float32) error { return unsupportedEncode("float32") }
func (s *nameSerializer) SerializeFloat64(float64) error { return unsupportedEncode("float64") }
func (s *nameSerializer) SerializeRune(rune) error { return unsupportedEncode("rune") }
func (s *nameSerializer) SerializeString(string) error { return unsupportedEncode("string") }
func (s *nameSerializer) SerializeBytes([]byte) error { return unsupportedEncode("bytes") }

func (s *nameSerializer) SerializeNone() error { return unsupportedEncode("none") }

// SerializeSome is a no-op tag: the walker unwraps the optional and recurses
// into the wrapped value on this same instance.
func (s *nameSerializer) SerializeSome() error { return nil }

func (s *nameSerializer) SerializeUnit() error { return unsupportedEncode("unit") }

func (s *nameSerializer) SerializeUnitStruct(name string) error {
	s.name = name
	return nil
}

// SerializeNewtypeStruct records the declared name; the wrapped value is
// never visited.
func (s *nameSerializer) SerializeNewtypeStruct(name string, _ any) error {
	s.name = name
	return nil
}

func (s *nameSerializer) SerializeSeq(int) (shape.FieldSerializer, error) {
	return nil, unsupportedEncode("seq")
}

func (s *nameSerializer) SerializeTuple(int) (shape.FieldSerializer, error) {
	return nil, unsupportedEncode("tuple")
}

func (s *nameSerializer) SerializeMap(int) (shape.EntrySerializer, error) {
	return nil, unsupportedEncode("map")
}

func (s *nameSerializer) SerializeTupleStruct(string, int) (shape.FieldSerializer, error) {
	return nil, unsupportedEncode("tuple struct")
}

func (s *nameSerializer) SerializeStruct(string, int) (shape.StructFieldSerializer, error) {
	return nil, unsupportedEncode("struct")
}

func (s *nameSerializer) SerializeUnitVariant(_ string, _ int, variant string) error {
	s.name = variant
	return nil
}

// SerializeNewtypeVariant records the variant name; the payload is never
// visited.
func (s *nameSerializer) SerializeNewtypeVariant(_ string, _ int, variant string, _ any) error {
	s.name = variant
	return nil
}

func (s *nameSerializer) SerializeTupleVariant(_ string, _ int, variant string, _ int) (shape.FieldSerializer, error) {
	return &variantFields{ser: s, variant: variant}, nil
}

func (s *nameSerializer) SerializeStructVariant(_ string, _ int, variant string, _ int) (shape.StructFieldSerializer, error) {
	return &variantNamedFields{ser: s, variant: variant}, nil
}

// variantFields acknowledges the fields of a tuple variant without visiting
// their contents, then records the variant name.
type variantFields struct {
	ser     *nameSerializer
	variant string
}

func (f *variantFields) SerializeField(any) error { return nil }

func (f *variantFields) End() error {
	f.ser.name = f.variant
	return nil
}

// variantNamedFields is the struct-variant counterpart; field names are
// likewise ignored.
type variantNamedFields struct {
	ser     *nameSerializer
	variant string
}

func (f *variantNamedFields) SerializeField(string, any) error { return nil }

func (f *variantNamedFields) End() error {
	f.ser.name = f.variant
	return nil
}
