package dataset

import "math"

// Summary holds the aggregate production figures for a set of records.
type Summary struct {
	TotalKWH float64 `json:"total_kwh"`
	MeanKWH  float64 `json:"mean_kwh"`
	MaxKWH   float64 `json:"max_kwh"`
	MinKWH   float64 `json:"min_kwh"`
	Days     int     `json:"days"`
}

// MonthlySummary is a Summary scoped to one month.
type MonthlySummary struct {
	Month string `json:"month"`
	Summary
}

// Summarize computes overall production statistics.
func Summarize(records []Record) Summary {
	s := Summary{Days: len(records)}
	if len(records) == 0 {
		return s
	}
	s.MaxKWH = records[0].KWH
	s.MinKWH = records[0].KWH
	for _, r := range records {
		s.TotalKWH += r.KWH
		if r.KWH > s.MaxKWH {
			s.MaxKWH = r.KWH
		}
		if r.KWH < s.MinKWH {
			s.MinKWH = r.KWH
		}
	}
	s.TotalKWH = round2(s.TotalKWH)
	s.MeanKWH = round2(s.TotalKWH / float64(len(records)))
	return s
}

// SummarizeMonthly groups records by month, preserving the order months first
// appear in (which is the season's month order).
func SummarizeMonthly(records []Record) []MonthlySummary {
	var order []string
	byMonth := make(map[string][]Record)
	for _, r := range records {
		if _, ok := byMonth[r.Month]; !ok {
			order = append(order, r.Month)
		}
		byMonth[r.Month] = append(byMonth[r.Month], r)
	}

	out := make([]MonthlySummary, 0, len(order))
	for _, m := range order {
		out = append(out, MonthlySummary{Month: m, Summary: Summarize(byMonth[m])})
	}
	return out
}

// Correlation is a Pearson correlation matrix over the five sampled
// parameters plus kWh, in label order.
type Correlation struct {
	Labels []string    `json:"labels"`
	Matrix [][]float64 `json:"matrix"`
}

// Correlate computes pairwise Pearson correlations across the dataset.
func Correlate(records []Record) Correlation {
	labels := []string{"irradiance", "humidity", "wind_speed", "ambient_temperature", "tilt_angle", "kwh"}
	series := make([][]float64, len(labels))
	for i := range series {
		series[i] = make([]float64, len(records))
	}
	for j, r := range records {
		series[0][j] = r.Irradiance
		series[1][j] = r.Humidity
		series[2][j] = r.WindSpeed
		series[3][j] = r.AmbientTemperature
		series[4][j] = r.TiltAngle
		series[5][j] = r.KWH
	}

	matrix := make([][]float64, len(labels))
	for i := range matrix {
		matrix[i] = make([]float64, len(labels))
		for j := range matrix[i] {
			// A series is always perfectly correlated with itself, even when
			// it is constant and its variance-normalised form is undefined.
			if i == j {
				matrix[i][j] = 1
				continue
			}
			matrix[i][j] = round2(pearson(series[i], series[j]))
		}
	}
	return Correlation{Labels: labels, Matrix: matrix}
}

func pearson(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// HistogramBin counts records whose kWh falls in [Low, High). The final bin
// is closed on both ends so the maximum lands somewhere.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram buckets the kWh values into the given number of equal-width bins.
func Histogram(records []Record, bins int) []HistogramBin {
	if len(records) == 0 || bins <= 0 {
		return nil
	}
	lo, hi := records[0].KWH, records[0].KWH
	for _, r := range records {
		if r.KWH < lo {
			lo = r.KWH
		}
		if r.KWH > hi {
			hi = r.KWH
		}
	}
	if hi == lo {
		return []HistogramBin{{Low: lo, High: hi, Count: len(records)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Low = round2(lo + float64(i)*width)
		out[i].High = round2(lo + float64(i+1)*width)
	}
	for _, r := range records {
		idx := int((r.KWH - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}
