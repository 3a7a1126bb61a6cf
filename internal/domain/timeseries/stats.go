package timeseries

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Mean media aritmética; 0 para una serie vacía.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// SampleStdDev desviación estándar muestral (n-1). Devuelve 0 con menos de 2 valores.
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// PopStdDev desviación estándar poblacional (n). Devuelve 0 con menos de 2 valores.
func PopStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	_, variance := stat.MeanVariance(values, nil)
	return math.Sqrt(variance * float64(n-1) / float64(n))
}

// RollingMean media móvil hacia atrás de tamaño window con mínimo de un período:
// los primeros puntos promedian lo que haya disponible.
func RollingMean(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		size := i + 1
		if size > window {
			size = window
		}
		out[i] = sum / float64(size)
	}
	return out
}

// Percentile percentil p (0-100) con interpolación lineal entre rangos vecinos:
// posición = p/100 * (n-1). Devuelve 0 para una serie vacía.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	p = math.Max(0, math.Min(100, p))
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Round redondea v a places decimales usando aritmética decimal exacta.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
