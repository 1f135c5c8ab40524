package namecast

import (
	"github.com/namecast/namecast/errors"
	"github.com/namecast/namecast/shape"
)

// nameDeserializer reconstructs a zero-payload value from a name. It wraps
// exactly one input string and consumes it at most once: the input is set to
// empty the moment it is read. One instance serves exactly one top-level
// decode.
type nameDeserializer struct {
	input string
}

var _ shape.Deserializer = (*nameDeserializer)(nil)

func unsupportedDecode(op string) error {
	return errors.Unsupported(errors.Deserialization, op)
}

func (d *nameDeserializer) DeserializeBool() (bool, error) {
	return false, unsupportedDecode("bool")
}

func (d *nameDeserializer) DeserializeInt8() (int8, error) { return 0, unsupportedDecode("int8") }
func (d *nameDeserializer) DeserializeInt16() (int16, error) { return 0, unsupportedDecode("int16") }
func (d *nameDeserializer) DeserializeInt32() (int32, error) { return 0, unsupportedDecode("int32") }
func (d *nameDeserializer) DeserializeInt64() (int64, error) { return 0, unsupportedDecode("int64") }

func (d *nameDeserializer) DeserializeUint8() (uint8, error) { return 0, unsupportedDecode("uint8") }
func (d *nameDeserializer) DeserializeUint16() (uint16, error) { return 0, unsupportedDecode("uint16") }
func (d *nameDeserializer) DeserializeUint32() (uint32, error) { return 0, unsupportedDecode("uint32") }
func (d *nameDeserializer) DeserializeUint64() (uint64, error) { return 0, unsupportedDecode("uint64") }

func (d *nameDeserializer) DeserializeFloat32() (float32, error) {
	return 0, unsupportedDecode("float32")
}

func (d *nameDeserializer) DeserializeFloat64() (float64, error) {
	return 0, unsupportedDecode("float64")
}

func (d *nameDeserializer) DeserializeRune() (rune, error) { return 0, unsupportedDecode("rune") }

// DeserializeString returns the entire remaining input and consumes it. This
// is the shared primitive underlying variant-name probing.
func (d *nameDeserializer) DeserializeString() (string, error) {
	v := d.input
	d.input = ""
	return v, nil
}

func (d *nameDeserializer) DeserializeBytes() ([]byte, error) {
	return nil, unsupportedDecode("bytes")
}

func (d *nameDeserializer) DeserializeIdentifier() (string, error) {
	return d.DeserializeString()
}

// DeserializeUnit accepts the anonymous unit value without touching the
// input.
func (d *nameDeserializer) DeserializeUnit() error { return nil }

// DeserializeUnitStruct succeeds iff the entire remaining input equals the
// declared name exactly. On mismatch the input is left unconsumed.
func (d *nameDeserializer) DeserializeUnitStruct(name string) error {
	if d.input != name {
		return errors.InvalidType(d.input, name)
	}
	d.input = ""
	return nil
}

func (d *nameDeserializer) DeserializeNewtypeStruct(string) error {
	return unsupportedDecode("newtype struct")
}

func (d *nameDeserializer) DeserializeTupleStruct(string, int) error {
	return unsupportedDecode("tuple struct")
}

func (d *nameDeserializer) DeserializeStruct(string, []string) error {
	return unsupportedDecode("struct")
}

func (d *nameDeserializer) DeserializeSeq() error { return unsupportedDecode("seq") }
func (d *nameDeserializer) DeserializeTuple(int) error { return unsupportedDecode("tuple") }
func (d *nameDeserializer) DeserializeMap() error { return unsupportedDecode("map") }
func (d *nameDeserializer) DeserializeAny() error { return unsupportedDecode("any") }
func (d *nameDeserializer) DeserializeIgnoredAny() error { return unsupportedDecode("any") }

func (d *nameDeserializer) DeserializeOption(fn func(shape.VariantAccess) error) error {
	return fn(&variantName{de: d})
}

// DeserializeEnum runs the variant probe and remaps any failure to an
// invalid-variant-name error carrying the original input and the declared
// candidate set.
func (d *nameDeserializer) DeserializeEnum(_ string, variants []string, fn func(shape.VariantAccess) error) error {
	received := d.input
	if err := fn(&variantName{de: d}); err != nil {
		return errors.InvalidVariantName(received, variants)
	}
	return nil
}

// Rest returns the unconsumed remainder of the input. The boundary function
// uses it to detect trailing characters after a successful decode.
func (d *nameDeserializer) Rest() string { return d.input }

// variantName adapts the decoder to the two-phase variant protocol: the whole
// remaining input is the discriminant name, and only a payload-free variant
// declaration can succeed since payload was never recorded.
type variantName struct {
	de *nameDeserializer
}

func (v *variantName) VariantName() (string, error) {
	return v.de.DeserializeIdentifier()
}

func (v *variantName) UnitVariant() error { return nil }

func (v *variantName) NewtypeVariant() error {
	return unsupportedDecode("newtype variant")
}

func (v *variantName) TupleVariant(int) error {
	return unsupportedDecode("tuple variant")
}

func (v *variantName) StructVariant([]string) error {
	return unsupportedDecode("struct variant")
}
