package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJSON(t *testing.T) {
	t.Run("Array", func(t *testing.T) {
		var v Vector
		require.NoError(t, v.UnmarshalJSON([]byte(`[1, -2.5]`)))
		assert.True(t, v.Equal(MustNew(1, -2.5)))
	})

	t.Run("NullIsNoop", func(t *testing.T) {
		var zero Vector
		require.NoError(t, zero.UnmarshalJSON([]byte(`null`)))
		assert.Equal(t, 0, zero.Dimension())

		v := MustNew(1, 2)
		require.NoError(t, v.UnmarshalJSON([]byte(`null`)))
		assert.True(t, v.Equal(MustNew(1, 2)))
	})

	t.Run("Empty", func(t *testing.T) {
		var v Vector
		err := v.UnmarshalJSON([]byte(`[]`))
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.EqualError(t, err, "coordinates must be nonempty")
	})

	t.Run("NotNumeric", func(t *testing.T) {
		var v Vector
		err := v.UnmarshalJSON([]byte(`["x"]`))
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.True(t, IsKind(err, KindInvalidConstruction))
	})
}

func TestMarshalJSON(t *testing.T) {
	b, err := MustNew(1, 0.5).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[1,0.5]`, string(b))

	_, err = Vector{}.MarshalJSON()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
