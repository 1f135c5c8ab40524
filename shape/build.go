package shape

import (
	"reflect"

	"github.com/namecast/namecast/errors"
)

// Build classifies the target's type and invokes exactly one top-level method
// on the Deserializer, storing the produced value through the target pointer.
func Build(d Deserializer, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Message(errors.Deserialization, "decode target must be a non-nil pointer")
	}
	return buildValue(d, rv.Elem())
}

func buildValue(d Deserializer, rv reflect.Value) error {
	t := rv.Type()

	if desc, ok := Lookup(t); ok {
		switch dd := desc.(type) {
		case *Enum:
			return buildEnum(d, dd, rv)
		case Unit:
			if err := d.DeserializeUnitStruct(dd.Name); err != nil {
				return err
			}
			rv.SetZero()
			return nil
		case Newtype:
			return d.DeserializeNewtypeStruct(dd.Name)
		}
	}
	if enum, _, _, ok := lookupVariant(t); ok {
		// Decoding into a concrete variant struct goes through the full enum
		// so the candidate name set is the declared one.
		return buildEnum(d, enum, rv)
	}

	switch t.Kind() {
	case reflect.Pointer:
		return buildOption(d, rv)

	case reflect.String:
		s, err := d.DeserializeString()
		if err != nil {
			return err
		}
		rv.SetString(s)
		return nil

	case reflect.Bool:
		v, err := d.DeserializeBool()
		if err != nil {
			return err
		}
		rv.SetBool(v)
		return nil
	case reflect.Int8:
		v, err := d.DeserializeInt8()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case reflect.Int16:
		v, err := d.DeserializeInt16()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case reflect.Int32:
		v, err := d.DeserializeInt32()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case reflect.Int, reflect.Int64:
		v, err := d.DeserializeInt64()
		if err != nil {
			return err
		}
		rv.SetInt(v)
		return nil
	case reflect.Uint8:
		v, err := d.DeserializeUint8()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Uint16:
		v, err := d.DeserializeUint16()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Uint32:
		v, err := d.DeserializeUint32()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Uint, reflect.Uint64:
		v, err := d.DeserializeUint64()
		if err != nil {
			return err
		}
		rv.SetUint(v)
		return nil
	case reflect.Float32:
		v, err := d.DeserializeFloat32()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(v))
		return nil
	case reflect.Float64:
		v, err := d.DeserializeFloat64()
		if err != nil {
			return err
		}
		rv.SetFloat(v)
		return nil

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			v, err := d.DeserializeBytes()
			if err != nil {
				return err
			}
			rv.SetBytes(v)
			return nil
		}
		return d.DeserializeSeq()
	case reflect.Array:
		return d.DeserializeTuple(t.Len())
	case reflect.Map:
		return d.DeserializeMap()
	case reflect.Interface:
		return d.DeserializeAny()

	case reflect.Struct:
		if t.NumField() == 0 {
			if t.Name() == "" {
				return d.DeserializeUnit()
			}
			if err := d.DeserializeUnitStruct(typeNameOf(t)); err != nil {
				return err
			}
			rv.SetZero()
			return nil
		}
		return d.DeserializeStruct(typeNameOf(t), fieldNames(t))

	default:
		return errors.Unsupported(errors.Deserialization, t.Kind().String())
	}
}

func buildEnum(d Deserializer, e *Enum, rv reflect.Value) error {
	return d.DeserializeEnum(e.Name, e.VariantNames(), func(va VariantAccess) error {
		return matchVariant(va, e, rv)
	})
}

// matchVariant runs the two-phase probe: read the discriminant name, declare
// the matched variant's payload shape, and store the zero-payload value.
func matchVariant(va VariantAccess, e *Enum, rv reflect.Value) error {
	name, err := va.VariantName()
	if err != nil {
		return err
	}
	idx, v := e.ByName(name)
	if v == nil {
		return errors.InvalidVariantName(name, e.VariantNames())
	}

	switch v.Kind {
	case KindNewtype:
		return va.NewtypeVariant()
	case KindTuple:
		arity := 0
		if v.Type != nil {
			arity = len(exportedFields(v.Type))
		}
		return va.TupleVariant(arity)
	case KindStruct:
		var fields []string
		if v.Type != nil {
			fields = fieldNames(v.Type)
		}
		return va.StructVariant(fields)
	}

	if err := va.UnitVariant(); err != nil {
		return err
	}
	return storeVariant(rv, e, idx, v)
}

func storeVariant(rv reflect.Value, e *Enum, idx int, v *Variant) error {
	t := rv.Type()

	if v.Type != nil {
		switch {
		case t.Kind() == reflect.Interface && v.Type.Implements(t):
			rv.Set(reflect.Zero(v.Type))
			return nil
		case t == v.Type:
			rv.SetZero()
			return nil
		default:
			return errors.Message(errors.Deserialization,
				"variant %q of enum %q is not assignable to target %s", v.Name, e.Name, t)
		}
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(idx))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		rv.SetUint(uint64(idx))
		return nil
	default:
		return errors.Message(errors.Deserialization,
			"enum %q registered for non-integer target %s", e.Name, t)
	}
}

// buildOption decodes an optional value. Name-bearing inner types route
// through the variant probing protocol; everything else is pass-through: the
// wrapped value is decoded directly and re-wrapped.
func buildOption(d Deserializer, rv reflect.Value) error {
	inner := rv.Type().Elem()

	if desc, ok := Lookup(inner); ok {
		switch dd := desc.(type) {
		case *Enum:
			return d.DeserializeOption(func(va VariantAccess) error {
				elem := reflect.New(inner)
				if err := matchVariant(va, dd, elem.Elem()); err != nil {
					return err
				}
				rv.Set(elem)
				return nil
			})
		case Unit:
			return probeOptionUnit(d, rv, inner, dd.Name)
		}
	}
	if inner.Kind() == reflect.Struct && inner.NumField() == 0 && inner.Name() != "" {
		return probeOptionUnit(d, rv, inner, typeNameOf(inner))
	}

	elem := reflect.New(inner)
	if err := buildValue(d, elem.Elem()); err != nil {
		return err
	}
	rv.Set(elem)
	return nil
}

func probeOptionUnit(d Deserializer, rv reflect.Value, inner reflect.Type, name string) error {
	return d.DeserializeOption(func(va VariantAccess) error {
		read, err := va.VariantName()
		if err != nil {
			return err
		}
		if read != name {
			return errors.InvalidType(read, name)
		}
		if err := va.UnitVariant(); err != nil {
			return err
		}
		rv.Set(reflect.New(inner))
		return nil
	})
}
