package vecmath

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the vector as a JSON array of numbers.
func (v Vector) MarshalJSON() ([]byte, error) {
	if len(v.coords) == 0 {
		return nil, newError(KindInvalidConstruction, msgEmpty, nil)
	}
	return gojson.Marshal(v.coords)
}

// UnmarshalJSON decodes a JSON array of numbers.
// Decoding follows the construction rules of New. A JSON null is a no-op.
func (v *Vector) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var coords []float64
	if err := gojson.Unmarshal(data, &coords); err != nil {
		return newError(KindInvalidConstruction, msgNotNumeric, err)
	}
	return v.assign(coords)
}

// MarshalYAML encodes the vector as a YAML sequence of numbers.
func (v Vector) MarshalYAML() (any, error) {
	if len(v.coords) == 0 {
		return nil, newError(KindInvalidConstruction, msgEmpty, nil)
	}
	return v.coords, nil
}

// UnmarshalYAML decodes a YAML sequence of numbers.
// Decoding follows the construction rules of New.
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return newError(KindInvalidConstruction, msgNotNumeric,
			fmt.Errorf("line %d: expected a sequence", node.Line))
	}
	var coords []float64
	if err := node.Decode(&coords); err != nil {
		return newError(KindInvalidConstruction, msgNotNumeric, err)
	}
	return v.assign(coords)
}

func (v *Vector) assign(coords []float64) error {
	nv, err := New(coords...)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}
