package shape

import (
	"reflect"

	"github.com/namecast/namecast/errors"
)

// Walk classifies a value's shape and invokes exactly one top-level method on
// the Serializer. Registered descriptors take priority over raw reflection
// kinds, so a registered enum variant is visited as a variant rather than as
// a plain struct.
func Walk(v any, s Serializer) error {
	if v == nil {
		return s.SerializeNone()
	}
	return walkValue(reflect.ValueOf(v), s)
}

func walkValue(rv reflect.Value, s Serializer) error {
	t := rv.Type()

	if d, ok := Lookup(t); ok {
		switch desc := d.(type) {
		case *Enum:
			return walkIntEnum(desc, rv, s)
		case Unit:
			return s.SerializeUnitStruct(desc.Name)
		case Newtype:
			return s.SerializeNewtypeStruct(desc.Name, wrappedValue(rv))
		}
	}
	if enum, idx, variant, ok := lookupVariant(t); ok {
		return walkVariant(enum, idx, variant, rv, s)
	}

	switch t.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		if err := s.SerializeSome(); err != nil {
			return err
		}
		return walkValue(rv.Elem(), s)

	case reflect.Interface:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		return walkValue(rv.Elem(), s)

	case reflect.Bool:
		return s.SerializeBool(rv.Bool())
	case reflect.Int8:
		return s.SerializeInt8(int8(rv.Int()))
	case reflect.Int16:
		return s.SerializeInt16(int16(rv.Int()))
	case reflect.Int32:
		return s.SerializeInt32(int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		return s.SerializeInt64(rv.Int())
	case reflect.Uint8:
		return s.SerializeUint8(uint8(rv.Uint()))
	case reflect.Uint16:
		return s.SerializeUint16(uint16(rv.Uint()))
	case reflect.Uint32:
		return s.SerializeUint32(uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64:
		return s.SerializeUint64(rv.Uint())
	case reflect.Float32:
		return s.SerializeFloat32(float32(rv.Float()))
	case reflect.Float64:
		return s.SerializeFloat64(rv.Float())
	case reflect.String:
		return s.SerializeString(rv.String())

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return s.SerializeBytes(rv.Bytes())
		}
		return walkSeq(rv, s)
	case reflect.Array:
		return walkSeq(rv, s)

	case reflect.Map:
		sub, err := s.SerializeMap(rv.Len())
		if err != nil {
			return err
		}
		iter := rv.MapRange()
		for iter.Next() {
			if err := sub.SerializeEntry(iter.Key().Interface(), iter.Value().Interface()); err != nil {
				return err
			}
		}
		return sub.End()

	case reflect.Struct:
		return walkStruct(rv, s)

	default:
		return errors.Unsupported(errors.Serialization, t.Kind().String())
	}
}

func walkSeq(rv reflect.Value, s Serializer) error {
	sub, err := s.SerializeSeq(rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := sub.SerializeField(rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return sub.End()
}

func walkStruct(rv reflect.Value, s Serializer) error {
	t := rv.Type()
	if t.NumField() == 0 {
		if t.Name() == "" {
			return s.SerializeUnit()
		}
		return s.SerializeUnitStruct(typeNameOf(t))
	}

	fields := exportedFields(t)
	sub, err := s.SerializeStruct(typeNameOf(t), len(fields))
	if err != nil {
		return err
	}
	for _, fi := range fields {
		if err := sub.SerializeField(t.Field(fi).Name, rv.Field(fi).Interface()); err != nil {
			return err
		}
	}
	return sub.End()
}

func walkIntEnum(e *Enum, rv reflect.Value, s Serializer) error {
	var idx int
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		idx = int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		idx = int(rv.Uint())
	default:
		return errors.Message(errors.Serialization,
			"enum %q registered for non-integer type %s", e.Name, rv.Type())
	}
	if idx < 0 || idx >= len(e.Variants) {
		return errors.Message(errors.Serialization,
			"variant index %d out of range for enum %q", idx, e.Name)
	}
	// Integer-backed variants are always unit variants (enforced at Register).
	return s.SerializeUnitVariant(e.Name, idx, e.Variants[idx].Name)
}

func walkVariant(e *Enum, idx int, v *Variant, rv reflect.Value, s Serializer) error {
	switch v.Kind {
	case KindUnit:
		return s.SerializeUnitVariant(e.Name, idx, v.Name)

	case KindNewtype:
		return s.SerializeNewtypeVariant(e.Name, idx, v.Name, wrappedValue(rv))

	case KindTuple:
		fields := exportedFields(rv.Type())
		sub, err := s.SerializeTupleVariant(e.Name, idx, v.Name, len(fields))
		if err != nil {
			return err
		}
		for _, fi := range fields {
			if err := sub.SerializeField(rv.Field(fi).Interface()); err != nil {
				return err
			}
		}
		return sub.End()

	case KindStruct:
		t := rv.Type()
		fields := exportedFields(t)
		sub, err := s.SerializeStructVariant(e.Name, idx, v.Name, len(fields))
		if err != nil {
			return err
		}
		for _, fi := range fields {
			if err := sub.SerializeField(t.Field(fi).Name, rv.Field(fi).Interface()); err != nil {
				return err
			}
		}
		return sub.End()

	default:
		return errors.Message(errors.Serialization,
			"enum %q: variant %q has unknown kind", e.Name, v.Name)
	}
}

// wrappedValue extracts the single payload value of a newtype shape. The
// payload is informational only; name-oriented serializers ignore it.
func wrappedValue(rv reflect.Value) any {
	fields := exportedFields(rv.Type())
	if len(fields) == 0 {
		return nil
	}
	return rv.Field(fields[0]).Interface()
}
