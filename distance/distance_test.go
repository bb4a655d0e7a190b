package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, 2, -1}, []float64{3, 0, 4}, -1},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{3}, 6},
		{"ShorterRight", []float64{1, 2, 3}, []float64{1, 1}, 3},
		{"ShorterLeft", []float64{2}, []float64{5, 7, 9}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dot(tt.a, tt.b), 1e-12)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
		{"Truncated", []float64{1, 2, 3}, []float64{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-12)
			assert.InDelta(t, math.Sqrt(tt.expected), L2(tt.a, tt.b), 1e-12)
		})
	}
}

func TestElementwise(t *testing.T) {
	a := []float64{1, -1, 2}
	b := []float64{-1, 1, 1}

	assert.Equal(t, []float64{0, 0, 3}, Add(a, b))
	assert.Equal(t, []float64{2, -2, 1}, Sub(a, b))
	assert.Equal(t, []float64{2, -2, 4}, Scale(a, 2))
	assert.Equal(t, []float64{1, -1, 2}, a, "inputs must not be mutated")

	assert.Equal(t, []float64{3}, Add([]float64{1, 2}, []float64{2}))
	assert.Equal(t, []float64{-1}, Sub([]float64{1}, []float64{2, 5}))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Norm([]float64{3, 4}))
	assert.Equal(t, 0.0, Norm([]float64{0, 0, 0}))
	assert.Equal(t, 0.0, Norm(nil))

	t.Run("Range", func(t *testing.T) {
		assert.InEpsilon(t, math.Sqrt2*1e200, Norm([]float64{1e200, 1e200}), 1e-12)
		assert.InEpsilon(t, 1e-200, Norm([]float64{1e-200, 0}), 1e-12)
		assert.InEpsilon(t, 5e300, L2([]float64{3e300, 0}, []float64{0, 4e300}), 1e-12)
	})

	t.Run("NonFinite", func(t *testing.T) {
		assert.True(t, math.IsInf(Norm([]float64{1, math.Inf(-1)}), 1))
		assert.True(t, math.IsNaN(Norm([]float64{1, math.NaN()})))
	})
}

func TestNormalizeL2Copy(t *testing.T) {
	v := []float64{3, 4}
	dst, ok := NormalizeL2Copy(v)
	require.True(t, ok)
	assert.InDelta(t, 0.6, dst[0], 1e-12)
	assert.InDelta(t, 0.8, dst[1], 1e-12)
	assert.NotSame(t, &v[0], &dst[0])
	assert.Equal(t, []float64{3, 4}, v)

	dst, ok = NormalizeL2Copy([]float64{1e-300, -1e-300})
	require.True(t, ok)
	assert.InDelta(t, 1/math.Sqrt2, dst[0], 1e-12)
	assert.InDelta(t, -1/math.Sqrt2, dst[1], 1e-12)

	dst, ok = NormalizeL2Copy([]float64{0, 0})
	assert.False(t, ok)
	assert.Nil(t, dst)

	dst, ok = NormalizeL2Copy(nil)
	assert.False(t, ok)
	assert.Nil(t, dst)
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "L2", MetricL2.String())
		assert.Equal(t, "SquaredL2", MetricSquaredL2.String())
		assert.Equal(t, "Dot", MetricDot.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Parse", func(t *testing.T) {
		m, err := ParseMetric("l2")
		require.NoError(t, err)
		assert.Equal(t, MetricL2, m)

		m, err = ParseMetric("SQUAREDL2")
		require.NoError(t, err)
		assert.Equal(t, MetricSquaredL2, m)

		_, err = ParseMetric("cosine")
		assert.Error(t, err)
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider(MetricL2)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(27), f([]float64{1, 2, 3}, []float64{4, 5, 6}), 1e-12)

		f, err = Provider(MetricSquaredL2)
		require.NoError(t, err)
		assert.InDelta(t, 27.0, f([]float64{1, 2, 3}, []float64{4, 5, 6}), 1e-12)

		f, err = Provider(MetricDot)
		require.NoError(t, err)
		assert.InDelta(t, -32.0, f([]float64{1, 2, 3}, []float64{4, 5, 6}), 1e-12)

		_, err = Provider(Metric(99))
		assert.Error(t, err)
	})
}
