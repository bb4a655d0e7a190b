package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Vector
	}{
		{"Vector: (1, 2, 3)", MustNew(1, 2, 3)},
		{"(1,2,3)", MustNew(1, 2, 3)},
		{"[1.5, -2e3]", MustNew(1.5, -2000)},
		{"  4 , 5  ", MustNew(4, 5)},
		{"Vector: (7,)", MustNew(7)},
		{"-0.25", MustNew(-0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			require.NoError(t, err)
			assert.True(t, v.Equal(tt.expected), "got %s", v)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	v := MustNew(0.1, -3, 1e-300, 12345.678)

	got, err := Parse(v.String())
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "Vector: ()", "[]", "  "} {
		_, err := Parse(in)
		assert.EqualError(t, err, "coordinates must be nonempty", "input %q", in)
	}

	for _, in := range []string{"(1, x)", "(,)", "1,,2", "Vector: (a)"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "coordinates must be an iterable of numbers")
	}
}
