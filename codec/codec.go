// Package codec selects the wire format for vectors and CLI results.
//
// A vecmath.Vector encodes as a flat sequence of numbers in every format, so
// "[1,-1,2]" in JSON and "- 1\n- -1\n- 2\n" in YAML describe the same
// vector. Decoding into a vecmath.Vector applies the rules of vecmath.New:
// an empty sequence or a non-numeric element is rejected with
// vecmath.ErrInvalidArgument.
package codec

import "fmt"

// Codec encodes/decodes vectors and scalar results.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by the name used for the CLI -format flag.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json", "yaml"}
}

// MustMarshal encodes v with c (Default if c is nil) and panics on error.
// Vectors built with vecmath.New and finite coordinates always encode.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
