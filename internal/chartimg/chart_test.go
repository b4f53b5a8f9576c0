package chartimg_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/divyakansara2385/solarcalc/internal/chartimg"
	"github.com/divyakansara2385/solarcalc/internal/dataset"
	"github.com/divyakansara2385/solarcalc/internal/season"
)

func TestRenderProducesPNG(t *testing.T) {
	t.Parallel()

	cfg, _ := season.Lookup(season.Summer)
	ds, err := dataset.NewSeeded(7).Generate(season.Summer, cfg.Ranges, 2024)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := chartimg.Render(ds)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != chartimg.Width || b.Dy() != chartimg.Height {
		t.Errorf("image %dx%d, want %dx%d", b.Dx(), b.Dy(), chartimg.Width, chartimg.Height)
	}
}

func TestRenderFlatSeries(t *testing.T) {
	t.Parallel()

	// Identical kwh every day must not divide by a zero range.
	ranges := season.Ranges{
		Irradiance:         season.Range{Min: 500, Max: 500},
		Humidity:           season.Range{Min: 50, Max: 50},
		WindSpeed:          season.Range{Min: 3, Max: 3},
		AmbientTemperature: season.Range{Min: 10, Max: 10},
		TiltAngle:          season.Range{Min: 30, Max: 30},
	}
	ds, err := dataset.NewSeeded(8).Generate(season.Winter, ranges, 2024)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := chartimg.Render(ds); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	t.Parallel()

	if _, err := chartimg.Render(&dataset.Dataset{}); err == nil {
		t.Error("empty dataset should fail")
	}
	if _, err := chartimg.Render(nil); err == nil {
		t.Error("nil dataset should fail")
	}
}
