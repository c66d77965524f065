package compare_test

import (
	"math"
	"testing"

	. "github.com/pseudomuto/primitive/pkg/compare"
	"github.com/stretchr/testify/require"
)

type celsius float32

func TestFloats(t *testing.T) {
	negZero := math.Copysign(0, -1)

	require.True(t, Floats([]float64{1, math.NaN(), math.Inf(-1)}, []float64{1, math.NaN(), math.Inf(-1)}))
	require.True(t, Floats([]float32{}, []float32{}))
	require.True(t, Floats[float64](nil, nil))
	require.False(t, Floats(nil, []float64{}))
	require.False(t, Floats([]float64{0}, []float64{negZero}))
	require.False(t, Floats([]float32{0}, []float32{float32(negZero)}))
	require.False(t, Floats([]float64{1, 2}, []float64{1}))
	require.True(t, Floats([]celsius{21.5}, []celsius{21.5}))

	// Agrees with the reflective path.
	a, b := []float64{0.5, negZero}, []float64{0.5, 0}
	require.Equal(t, Equal(a, b), Floats(a, b))
}

func TestFloatsWithin(t *testing.T) {
	require.True(t, FloatsWithin([]float64{1, 2}, []float64{1.05, 1.95}, 0.1))
	require.False(t, FloatsWithin([]float64{1, 2}, []float64{1.2, 2}, 0.1))
	require.True(t, FloatsWithin([]float32{0}, []float32{float32(math.Copysign(0, -1))}, 0))
	require.True(t, FloatsWithin([]float64{math.NaN()}, []float64{math.NaN()}, 0))
	require.False(t, FloatsWithin([]float64{math.NaN()}, []float64{1}, math.Inf(1)))
	require.False(t, FloatsWithin([]float64{1}, nil, 1))
	require.True(t, FloatsWithin([]celsius{20}, []celsius{20.4}, 0.5))

	a, b := []float64{1, 2}, []float64{1.01, 2}
	require.Equal(t, ValueEqual(a, b, 0.1), FloatsWithin(a, b, 0.1))
}
