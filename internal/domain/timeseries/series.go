// Package timeseries normaliza series diarias: parseo de fechas, relleno de huecos
// y estadísticos básicos que asumen espaciado uniforme de un día.
package timeseries

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-ai/internal/domain"
)

// DateLayout formato ISO de fecha usado en entradas y salidas.
const DateLayout = "2006-01-02"

// Formatos aceptados al parsear, en orden de prioridad.
var dateLayouts = []string{DateLayout, "2006/01/02"}

// Point un valor asociado a un día calendario.
type Point struct {
	Date  time.Time
	Value float64
}

// ParseDate convierte "YYYY-MM-DD" o "YYYY/MM/DD" en un día UTC.
// También acepta un timestamp RFC3339 completo y conserva solo la parte de fecha.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Day(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: no se pudo interpretar %q", domain.ErrInvalidDate, s)
}

// Day trunca t a la medianoche UTC del mismo día calendario.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate devuelve la fecha en formato ISO (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRange devuelve todos los días entre start y end, ambos incluidos.
// Si end es anterior a start devuelve una lista vacía.
func DateRange(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return []time.Time{}
	}
	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// FillDaily agrega los puntos por día (sumando fechas repetidas) y devuelve una serie
// densa ordenada con exactamente un punto por día entre la fecha mínima y la máxima.
// Los días ausentes reciben fill. Una entrada vacía produce una salida vacía.
func FillDaily(points []Point, fill float64) []Point {
	if len(points) == 0 {
		return []Point{}
	}

	totals := make(map[time.Time]float64, len(points))
	minDate, maxDate := Day(points[0].Date), Day(points[0].Date)
	for _, p := range points {
		d := Day(p.Date)
		totals[d] += p.Value
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	days := DateRange(minDate, maxDate)
	out := make([]Point, 0, len(days))
	for _, d := range days {
		v, ok := totals[d]
		if !ok {
			v = fill
		}
		out = append(out, Point{Date: d, Value: v})
	}
	return out
}

// Values extrae los valores de la serie en el mismo orden.
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
