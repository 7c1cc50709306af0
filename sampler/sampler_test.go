package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstant_NeverExhausts(t *testing.T) {
	s := Constant(42)
	for i := 0; i < 5; i++ {
		v, ok := s.Sample()
		require.True(t, ok)
		require.Equal(t, 42.0, v)
	}
}

func TestCallable_DelegatesEachCall(t *testing.T) {
	values := []float64{74, 21, 21}
	i := 0
	s := Callable(func() float64 {
		v := values[i]
		i++
		return v
	})
	v1, ok1 := s.Sample()
	v2, ok2 := s.Sample()
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, 74.0, v1)
	require.Equal(t, 21.0, v2)
}

func TestSequence_DrainsThenExhausts(t *testing.T) {
	s := Sequence([]float64{34, 42})
	v1, ok1 := s.Sample()
	require.True(t, ok1)
	require.Equal(t, 34.0, v1)

	v2, ok2 := s.Sample()
	require.True(t, ok2)
	require.Equal(t, 42.0, v2)

	_, ok3 := s.Sample()
	require.False(t, ok3)
}

func TestSequence_CopiesInput(t *testing.T) {
	values := []float64{1, 2}
	s := Sequence(values)
	values[0] = 999
	v, _ := s.Sample()
	require.Equal(t, 1.0, v)
}
