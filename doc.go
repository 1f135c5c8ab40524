// Package namecast is a name-only codec: it converts a tagged value (an enum
// variant or a named unit type) into its symbolic name, and reconstructs such
// a value from that string alone. Payload data carried by variants is
// discarded on encode and cannot be reconstructed on decode.
//
// # Architecture Overview
//
// The library is organized into three packages with distinct
// responsibilities:
//
//	namecast/    Root package with the boundary API (ToString, FromString,
//	             Parse) and the name encoder/decoder implementations
//	├── shape/   Traversal boundary: per-shape Serializer and Deserializer
//	             contracts, type descriptors, registry, and the
//	             reflect-driven Walk/Build drivers
//	└── errors/  Structured error types for precise failure classification
//
// # Quick Start
//
// Register an enum and round-trip a variant name:
//
//	type Level int
//
//	const (
//	    Debug Level = iota
//	    Info
//	    Warn
//	)
//
//	func init() {
//	    shape.MustRegisterFor[Level](shape.NewEnum("Level",
//	        shape.UnitVariant("Debug"),
//	        shape.UnitVariant("Info"),
//	        shape.UnitVariant("Warn"),
//	    ))
//	}
//
//	name, err := namecast.ToString(Info)   // "Info"
//	lvl, err := namecast.Parse[Level](name) // Info
//
// Variants that carry payload still encode to their name, but can never be
// decoded: the payload was discarded, so reconstruction is impossible and
// fails with an invalid-variant-name error.
//
// # Matching Rules
//
// Decoding matches the whole input against declared names exactly. Case and
// whitespace are significant, nothing is trimmed, and input left over after a
// successful match is a trailing-characters error.
//
// # Thread Safety
//
// Encoder and decoder instances are created per call and never shared; two
// concurrent ToString/FromString calls are data-race-free. Type registration
// is expected at init time.
package namecast
