package namecast

import (
	"go.uber.org/zap"

	"github.com/namecast/namecast/errors"
	"github.com/namecast/namecast/shape"
)

// ToString converts a value into its discriminant name. Only name-bearing
// shapes succeed: named unit types, newtype wrappers, and enum variants of
// any kind (payloads are discarded). Every other shape fails with an
// unsupported-operation error naming the rejected shape.
func ToString(v any) (string, error) {
	ser := &nameSerializer{}
	if err := shape.Walk(v, ser); err != nil {
		return "", err
	}
	Logger().Debug("encoded name", zap.String("name", ser.name))
	return ser.name, nil
}

// FromString reconstructs a zero-payload value from its name. The target must
// be a non-nil pointer to a registered enum, a named unit type, or an
// optional of either. Matching is exact: case and whitespace are significant
// and no normalization occurs. Input left unconsumed after a successful
// decode is a trailing-characters error.
func FromString(input string, target any) error {
	de := &nameDeserializer{input: input}
	if err := shape.Build(de, target); err != nil {
		return err
	}
	if de.Rest() != "" {
		return errors.Trailing()
	}
	Logger().Debug("decoded name", zap.String("input", input))
	return nil
}

// Parse is a generic convenience wrapper around FromString.
func Parse[T any](input string) (T, error) {
	var v T
	err := FromString(input, &v)
	return v, err
}
