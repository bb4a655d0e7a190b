package vecmath

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses the String form of a vector.
//
// Accepted inputs are "Vector: (1, 2, 3)", "(1, 2, 3)", "[1, 2, 3]" and
// "1, 2, 3". Whitespace around tokens is ignored.
func Parse(s string) (Vector, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimSpace(strings.TrimPrefix(body, "Vector:"))

	switch {
	case strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")"),
		strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]"):
		body = body[1 : len(body)-1]
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return Vector{}, newError(KindInvalidConstruction, msgEmpty, nil)
	}

	fields := strings.Split(body, ",")
	coords := make([]float64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" && i == len(fields)-1 && i > 0 {
			// trailing comma, as in "(1,)"
			continue
		}
		c, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vector{}, newError(KindInvalidConstruction, msgNotNumeric,
				fmt.Errorf("coordinate %d: %w", i, err))
		}
		coords = append(coords, c)
	}
	return Vector{coords: coords}, nil
}
