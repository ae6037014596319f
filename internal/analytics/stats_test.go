package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentileLinearInterpolation(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}

	// Interpolating between the 95th and 96th order statistics of 1..100.
	p := Percentile(values, 95)
	require.NotNil(t, p)
	require.InDelta(t, 95.05, *p, 1e-9)
}

func TestPercentileUndefinedBelowTwoObservations(t *testing.T) {
	require.Nil(t, Percentile(nil, 95))
	require.Nil(t, Percentile([]float64{42}, 95))
}

func TestPercentileUnsortedInput(t *testing.T) {
	p := Percentile([]float64{30, 10, 20}, 50)
	require.NotNil(t, p)
	require.InDelta(t, 20, *p, 1e-9)
}

func TestSampleStdDev(t *testing.T) {
	sd := SampleStdDev([]float64{10, 20, 30})
	require.NotNil(t, sd)
	require.InDelta(t, 10.0, *sd, 1e-9)
}

func TestSampleStdDevSingleObservation(t *testing.T) {
	require.Nil(t, SampleStdDev([]float64{5}), "n=1 stddev is undefined, not zero")
	require.Nil(t, SampleStdDev(nil))
}

func TestMean(t *testing.T) {
	m := Mean([]float64{10, 20, 30})
	require.NotNil(t, m)
	require.InDelta(t, 20.0, *m, 1e-9)
	require.Nil(t, Mean(nil))
}

func TestRound2(t *testing.T) {
	require.Equal(t, 33.33, Round2(100.0/3))
	require.Equal(t, 66.67, Round2(200.0/3))
	require.Equal(t, -10.00, Round2(-10.004))
}
