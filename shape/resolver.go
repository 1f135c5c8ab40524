package shape

import "reflect"

// Namer lets a type declare its own name without a registry entry. A
// registered descriptor takes precedence over Namer, which takes precedence
// over the reflected type name.
type Namer interface {
	TypeName() string
}

var namerType = reflect.TypeOf((*Namer)(nil)).Elem()

// typeNameOf resolves the declared name for a type.
func typeNameOf(t reflect.Type) string {
	if d, ok := Lookup(t); ok {
		return d.TypeName()
	}
	if t.Implements(namerType) {
		return reflect.New(t).Elem().Interface().(Namer).TypeName()
	}
	return t.Name()
}

// exportedFields returns the indices of the exported fields of a struct type.
func exportedFields(t reflect.Type) []int {
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath == "" {
			fields = append(fields, i)
		}
	}
	return fields
}

// fieldNames returns the exported field names of a struct type.
func fieldNames(t reflect.Type) []string {
	idx := exportedFields(t)
	names := make([]string, len(idx))
	for i, fi := range idx {
		names[i] = t.Field(fi).Name
	}
	return names
}
