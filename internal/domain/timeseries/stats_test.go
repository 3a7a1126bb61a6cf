package timeseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-ai/internal/domain/timeseries"
)

func TestMeanAndStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, timeseries.Mean(values), 1e-12)
	assert.InDelta(t, 2.0, timeseries.PopStdDev(values), 1e-12)
	assert.InDelta(t, 2.138089935, timeseries.SampleStdDev(values), 1e-9)

	assert.Zero(t, timeseries.Mean(nil))
	assert.Zero(t, timeseries.SampleStdDev([]float64{3}))
	assert.Zero(t, timeseries.PopStdDev([]float64{3}))
}

func TestRollingMean_MinimoUnPeriodo(t *testing.T) {
	got := timeseries.RollingMean([]float64{1, 2, 3, 4, 5}, 3)
	assert.InDeltaSlice(t, []float64{1, 1.5, 2, 3, 4}, got, 1e-12)

	assert.InDeltaSlice(t, []float64{7, 8}, timeseries.RollingMean([]float64{7, 9}, 14), 1e-12)
}

func TestPercentile_InterpolacionLineal(t *testing.T) {
	values := []float64{10, 1, 4, 7}

	assert.InDelta(t, 3.25, timeseries.Percentile(values, 25), 1e-12)
	assert.InDelta(t, 5.5, timeseries.Percentile(values, 50), 1e-12)
	assert.InDelta(t, 7.75, timeseries.Percentile(values, 75), 1e-12)
	assert.InDelta(t, 1, timeseries.Percentile(values, 0), 1e-12)
	assert.InDelta(t, 10, timeseries.Percentile(values, 100), 1e-12)
	assert.Zero(t, timeseries.Percentile(nil, 50))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 9.19, timeseries.Round(9.194936, 2))
	assert.Equal(t, 0.333, timeseries.Round(1.0/3, 3))
	assert.Equal(t, 2.5, timeseries.Round(2.5, 2))
}
