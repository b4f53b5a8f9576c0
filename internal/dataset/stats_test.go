package dataset_test

import (
	"math"
	"testing"
	"time"

	"github.com/divyakansara2385/solarcalc/internal/dataset"
	"github.com/divyakansara2385/solarcalc/internal/season"
)

func rec(month string, day int, kwh float64) dataset.Record {
	return dataset.Record{
		Date:   time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC),
		KWH:    kwh,
		Season: season.Winter,
		Month:  month,
		Day:    day,
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	records := []dataset.Record{
		rec("November", 1, 10),
		rec("November", 2, 20),
		rec("December", 1, 60),
		rec("December", 2, 30),
	}

	s := dataset.Summarize(records)
	if s.TotalKWH != 120 {
		t.Errorf("TotalKWH = %v, want 120", s.TotalKWH)
	}
	if s.MeanKWH != 30 {
		t.Errorf("MeanKWH = %v, want 30", s.MeanKWH)
	}
	if s.MaxKWH != 60 {
		t.Errorf("MaxKWH = %v, want 60", s.MaxKWH)
	}
	if s.MinKWH != 10 {
		t.Errorf("MinKWH = %v, want 10", s.MinKWH)
	}
	if s.Days != 4 {
		t.Errorf("Days = %v, want 4", s.Days)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := dataset.Summarize(nil)
	if s.Days != 0 || s.TotalKWH != 0 || s.MeanKWH != 0 {
		t.Errorf("empty summary should be zero, got %+v", s)
	}
}

func TestSummarizeMonthlyPreservesSeasonOrder(t *testing.T) {
	t.Parallel()

	records := []dataset.Record{
		rec("November", 1, 10),
		rec("November", 2, 30),
		rec("December", 1, 50),
	}

	monthly := dataset.SummarizeMonthly(records)
	if len(monthly) != 2 {
		t.Fatalf("got %d months, want 2", len(monthly))
	}
	if monthly[0].Month != "November" || monthly[1].Month != "December" {
		t.Errorf("month order = [%s, %s], want [November, December]", monthly[0].Month, monthly[1].Month)
	}
	if monthly[0].TotalKWH != 40 || monthly[0].Days != 2 {
		t.Errorf("November summary = %+v", monthly[0].Summary)
	}
	if monthly[1].MeanKWH != 50 || monthly[1].Days != 1 {
		t.Errorf("December summary = %+v", monthly[1].Summary)
	}
}

func TestCorrelate(t *testing.T) {
	t.Parallel()

	// Irradiance and kwh rise together, so they correlate perfectly.
	records := []dataset.Record{
		{Irradiance: 100, Humidity: 50, KWH: 10},
		{Irradiance: 200, Humidity: 40, KWH: 20},
		{Irradiance: 300, Humidity: 60, KWH: 30},
	}

	c := dataset.Correlate(records)
	if len(c.Labels) != 6 || len(c.Matrix) != 6 {
		t.Fatalf("expected 6x6 matrix, got %dx%d", len(c.Labels), len(c.Matrix))
	}
	for i := range c.Matrix {
		if c.Matrix[i][i] != 1 {
			t.Errorf("diagonal [%d][%d] = %v, want 1", i, i, c.Matrix[i][i])
		}
	}

	// labels[0] = irradiance, labels[5] = kwh
	if got := c.Matrix[0][5]; math.Abs(got-1) > 1e-9 {
		t.Errorf("corr(irradiance, kwh) = %v, want 1", got)
	}
	if c.Matrix[0][5] != c.Matrix[5][0] {
		t.Error("matrix should be symmetric")
	}
}

func TestCorrelateConstantSeries(t *testing.T) {
	t.Parallel()

	// Zero variance (tilt is constant here) must not divide by zero.
	records := []dataset.Record{
		{Irradiance: 100, TiltAngle: 30, KWH: 10},
		{Irradiance: 200, TiltAngle: 30, KWH: 20},
	}
	c := dataset.Correlate(records)
	if got := c.Matrix[4][5]; got != 0 {
		t.Errorf("corr(constant tilt, kwh) = %v, want 0", got)
	}
	// Even a constant series is perfectly correlated with itself.
	for i := range c.Matrix {
		if c.Matrix[i][i] != 1 {
			t.Errorf("diagonal [%d][%d] = %v, want 1", i, i, c.Matrix[i][i])
		}
	}
}

func TestHistogram(t *testing.T) {
	t.Parallel()

	var records []dataset.Record
	for i := 0; i < 100; i++ {
		records = append(records, dataset.Record{KWH: float64(i)})
	}

	bins := dataset.Histogram(records, 10)
	if len(bins) != 10 {
		t.Fatalf("got %d bins, want 10", len(bins))
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != len(records) {
		t.Errorf("bin counts sum to %d, want %d", total, len(records))
	}
	if bins[0].Low != 0 || bins[9].High != 99 {
		t.Errorf("bin edges [%v, %v], want [0, 99]", bins[0].Low, bins[9].High)
	}
}

func TestHistogramDegenerate(t *testing.T) {
	t.Parallel()

	if got := dataset.Histogram(nil, 10); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}

	same := []dataset.Record{{KWH: 5}, {KWH: 5}, {KWH: 5}}
	bins := dataset.Histogram(same, 10)
	if len(bins) != 1 || bins[0].Count != 3 {
		t.Errorf("identical values should collapse to one bin, got %v", bins)
	}
}
