package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// A vecmath.Vector is encoded as an array of numbers; a null field leaves
// the vector at its zero value. NaN and infinite coordinates cannot be
// represented in JSON and fail to marshal.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used by MustMarshal when none is given.
var Default Codec = GoJSON{}
