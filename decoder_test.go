package namecast

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/namecast/namecast/errors"
)

func TestFromString_UnitStruct(t *testing.T) {
	var v Plain
	if err := FromString("Plain", &v); err != nil {
		t.Fatalf("FromString: %v", err)
	}
}

func TestFromString_UnitStructCaseSensitive(t *testing.T) {
	for _, input := range []string{"plain", "PLAIN", "pLain", "PlaiN"} {
		t.Run(input, func(t *testing.T) {
			var v Plain
			err := FromString(input, &v)
			if err == nil {
				t.Fatalf("FromString(%q) succeeded, want invalid type", input)
			}

			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error is %T, want *errors.Error", err)
			}
			if e.Code != errors.CodeInvalidType {
				t.Errorf("code = %v, want %v", e.Code, errors.CodeInvalidType)
			}
			if e.Unexpected != input {
				t.Errorf("unexpected = %q, want %q", e.Unexpected, input)
			}
			if e.Expected != "Plain" {
				t.Errorf("expected = %q, want %q", e.Expected, "Plain")
			}
		})
	}
}

func TestFromString_UnitStructSpaceSensitive(t *testing.T) {
	for _, input := range []string{"Plain ", " Plain", "Pla in"} {
		t.Run(input, func(t *testing.T) {
			var v Plain
			if err := FromString(input, &v); err == nil {
				t.Errorf("FromString(%q) succeeded, want error", input)
			}
		})
	}
}

func TestFromString_UnitStructNoPrefixMatch(t *testing.T) {
	// Whole-input equality, never a prefix match.
	for _, input := range []string{"Plain!", "PlainX", "Plains"} {
		t.Run(input, func(t *testing.T) {
			var v Plain
			if err := FromString(input, &v); err == nil {
				t.Errorf("FromString(%q) succeeded, want error", input)
			}
		})
	}
}

func TestFromString_RenamedUnitStruct(t *testing.T) {
	var v Marker
	if err := FromString("MARKER", &v); err != nil {
		t.Fatalf("FromString(MARKER): %v", err)
	}
	// The declared type name no longer matches once a rename is registered.
	if err := FromString("Marker", &v); err == nil {
		t.Error("FromString(Marker) succeeded, want invalid type")
	}
}

func TestFromString_IntEnumVariants(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"Debug", LevelDebug},
		{"Info", LevelInfo},
		{"Warn", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse[Level](tt.input)
			if err != nil {
				t.Fatalf("Parse[Level](%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse[Level](%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromString_SumTypeUnitVariant(t *testing.T) {
	ev, err := Parse[Event]("Started")
	if err != nil {
		t.Fatalf("Parse[Event](Started): %v", err)
	}
	if _, ok := ev.(Started); !ok {
		t.Errorf("decoded value is %T, want Started", ev)
	}
}

func TestFromString_ConcreteVariantTarget(t *testing.T) {
	var v Started
	if err := FromString("Started", &v); err != nil {
		t.Fatalf("FromString(Started): %v", err)
	}
	// A sibling variant's name does not match this target's enum probe.
	if err := FromString("CRASHED", &v); err == nil {
		t.Error("FromString(CRASHED) into Started succeeded, want error")
	}
}

func TestFromString_PayloadVariantsRejected(t *testing.T) {
	// Payload-carrying variants cannot be reconstructed from a bare name,
	// even when the name matches exactly.
	for _, input := range []string{"CRASHED", "Moved", "Renamed"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse[Event](input)
			if err == nil {
				t.Fatalf("Parse[Event](%q) succeeded, want error", input)
			}

			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error is %T, want *errors.Error", err)
			}
			if e.Code != errors.CodeInvalidVariantName {
				t.Errorf("code = %v, want %v", e.Code, errors.CodeInvalidVariantName)
			}
			if e.Received != input {
				t.Errorf("received = %q, want %q", e.Received, input)
			}
		})
	}
}

func TestFromString_UnknownVariant(t *testing.T) {
	_, err := Parse[Level]("Fatal")
	if err == nil {
		t.Fatal("Parse[Level](Fatal) succeeded, want error")
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error is %T, want *errors.Error", err)
	}
	if e.Code != errors.CodeInvalidVariantName {
		t.Fatalf("code = %v, want %v", e.Code, errors.CodeInvalidVariantName)
	}
	if e.Received != "Fatal" {
		t.Errorf("received = %q, want %q", e.Received, "Fatal")
	}
	if want := []string{"Debug", "Info", "Warn"}; !reflect.DeepEqual(e.Allowed, want) {
		t.Errorf("allowed = %q, want %q", e.Allowed, want)
	}

	const msg = `invalid variant: Fatal is not a valid variant name (["Debug", "Info", "Warn"])`
	if err.Error() != msg {
		t.Errorf("message = %q, want %q", err.Error(), msg)
	}
}

func TestFromString_VariantCaseSensitive(t *testing.T) {
	for _, input := range []string{"info", "INFO", "iNfO"} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse[Level](input); err == nil {
				t.Errorf("Parse[Level](%q) succeeded, want error", input)
			}
		})
	}
}

func TestFromString_StringPassthrough(t *testing.T) {
	for _, input := range []string{"", "anything", "with spaces", "Crashed!"} {
		got, err := Parse[string](input)
		if err != nil {
			t.Fatalf("Parse[string](%q): %v", input, err)
		}
		if got != input {
			t.Errorf("Parse[string](%q) = %q", input, got)
		}
	}
}

func TestFromString_TrailingCharacters(t *testing.T) {
	var v struct{}
	err := FromString("leftover", &v)
	if err == nil {
		t.Fatal("expected trailing-characters error")
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error is %T, want *errors.Error", err)
	}
	if e.Code != errors.CodeTrailing {
		t.Errorf("code = %v, want %v", e.Code, errors.CodeTrailing)
	}
	const msg = "trailing characters: input ends with trailing characters"
	if err.Error() != msg {
		t.Errorf("message = %q, want %q", err.Error(), msg)
	}
}

func TestFromString_Optional(t *testing.T) {
	t.Run("enum", func(t *testing.T) {
		got, err := Parse[*Level]("Warn")
		if err != nil {
			t.Fatalf("Parse[*Level](Warn): %v", err)
		}
		if got == nil || *got != LevelWarn {
			t.Errorf("Parse[*Level](Warn) = %v, want &LevelWarn", got)
		}
	})

	t.Run("unit struct", func(t *testing.T) {
		got, err := Parse[*Marker]("MARKER")
		if err != nil {
			t.Fatalf("Parse[*Marker](MARKER): %v", err)
		}
		if got == nil {
			t.Error("Parse[*Marker](MARKER) = nil, want non-nil")
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		if _, err := Parse[*Level]("Fatal"); err == nil {
			t.Error("Parse[*Level](Fatal) succeeded, want error")
		}
		if _, err := Parse[*Marker]("Marker"); err == nil {
			t.Error("Parse[*Marker](Marker) succeeded, want error")
		}
	})
}

func TestFromString_UnsupportedTargets(t *testing.T) {
	tests := []struct {
		target any
		op     string
	}{
		{new(bool), "bool"},
		{new(int), "int64"},
		{new(uint16), "uint16"},
		{new(float64), "float64"},
		{new([]int), "seq"},
		{new([2]int), "tuple"},
		{new(map[string]int), "map"},
		{new([]byte), "bytes"},
		{new(Bar), "struct"},
		{new(Wrapper), "newtype struct"},
		{new(any), "any"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			err := FromString("x", tt.target)
			if err == nil {
				t.Fatalf("FromString into %T succeeded, want unsupported error", tt.target)
			}

			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error is %T, want *errors.Error", err)
			}
			if e.Code != errors.CodeUnsupported {
				t.Fatalf("code = %v, want %v", e.Code, errors.CodeUnsupported)
			}
			if e.Direction != errors.Deserialization {
				t.Errorf("direction = %v, want %v", e.Direction, errors.Deserialization)
			}
			if e.Operation != tt.op {
				t.Errorf("operation = %q, want %q", e.Operation, tt.op)
			}
		})
	}
}

func TestFromString_BadTarget(t *testing.T) {
	if err := FromString("Plain", nil); err == nil {
		t.Error("nil target accepted")
	}
	if err := FromString("Plain", Plain{}); err == nil {
		t.Error("non-pointer target accepted")
	}
	var p *Plain
	if err := FromString("Plain", p); err == nil {
		t.Error("nil typed pointer accepted")
	}
}

func TestFromString_InputUntouchedOnMismatch(t *testing.T) {
	de := &nameDeserializer{input: "Other"}
	if err := de.DeserializeUnitStruct("Plain"); err == nil {
		t.Fatal("expected invalid type error")
	}
	if de.Rest() != "Other" {
		t.Errorf("input after mismatch = %q, want untouched %q", de.Rest(), "Other")
	}

	if err := de.DeserializeUnitStruct("Other"); err != nil {
		t.Fatalf("second probe: %v", err)
	}
	if de.Rest() != "" {
		t.Errorf("input after match = %q, want consumed", de.Rest())
	}
}
