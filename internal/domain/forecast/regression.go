package forecast

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LinearModel regresión lineal ordinaria con intercepto.
type LinearModel struct {
	Intercept float64
	Coef      []float64
}

// FitOLS ajusta y ≈ intercepto + X·β por mínimos cuadrados. Centra columnas y
// objetivo y resuelve con SVD de norma mínima, de modo que un diseño de rango
// deficiente (columnas constantes o colineales) también tiene solución.
func FitOLS(x [][]float64, y []float64) LinearModel {
	n := len(x)
	if n == 0 {
		return LinearModel{}
	}
	p := len(x[0])

	xMean := make([]float64, p)
	yMean := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			xMean[j] += x[i][j]
		}
		yMean += y[i]
	}
	for j := range xMean {
		xMean[j] /= float64(n)
	}
	yMean /= float64(n)

	a := mat.NewDense(n, p, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			a.Set(i, j, x[i][j]-xMean[j])
		}
		b.SetVec(i, y[i]-yMean)
	}

	coef := make([]float64, p)
	var svd mat.SVD
	if svd.Factorize(a, mat.SVDThin) {
		rcond := math.Nextafter(1, 2) - 1
		rcond *= float64(max(n, p))
		if rank := svd.Rank(rcond); rank > 0 {
			var beta mat.VecDense
			svd.SolveVecTo(&beta, b, rank)
			for j := 0; j < p; j++ {
				coef[j] = beta.AtVec(j)
			}
		}
	}

	intercept := yMean
	for j := 0; j < p; j++ {
		intercept -= xMean[j] * coef[j]
	}
	return LinearModel{Intercept: intercept, Coef: coef}
}

// Predict evalúa el modelo en una fila de features.
func (m LinearModel) Predict(row []float64) float64 {
	v := m.Intercept
	for j, c := range m.Coef {
		v += c * row[j]
	}
	return v
}

// RSquared coeficiente de determinación sobre los datos dados. Con objetivo
// constante vale 1 si el ajuste es exacto y 0 en otro caso.
func (m LinearModel) RSquared(x [][]float64, y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	yMean := 0.0
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(len(y))

	var ssRes, ssTot float64
	for i, row := range x {
		r := y[i] - m.Predict(row)
		ssRes += r * r
		d := y[i] - yMean
		ssTot += d * d
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

// Residuals y − ŷ para cada fila.
func (m LinearModel) Residuals(x [][]float64, y []float64) []float64 {
	out := make([]float64, len(y))
	for i, row := range x {
		out[i] = y[i] - m.Predict(row)
	}
	return out
}
