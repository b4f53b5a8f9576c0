// Package chartimg renders a shareable PNG chart of a generated dataset.
package chartimg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/divyakansara2385/solarcalc/internal/dataset"
)

// Standard Open Graph image dimensions.
const (
	Width  = 1200
	Height = 630
)

const (
	marginLeft   = 80
	marginRight  = 40
	marginTop    = 90
	marginBottom = 60
)

var (
	background = color.RGBA{R: 0x1a, G: 0x23, B: 0x32, A: 0xff}
	axisColor  = color.RGBA{R: 0x5a, G: 0x6a, B: 0x7a, A: 0xff}
	textColor  = color.RGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}
	lineColor  = color.RGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff}
)

// Render draws the daily kWh series as a line chart.
func Render(ds *dataset.Dataset) ([]byte, error) {
	if ds == nil || len(ds.Records) == 0 {
		return nil, fmt.Errorf("no records to chart")
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillRect(img, img.Bounds(), background)

	lo, hi := ds.Records[0].KWH, ds.Records[0].KWH
	for _, r := range ds.Records {
		if r.KWH < lo {
			lo = r.KWH
		}
		if r.KWH > hi {
			hi = r.KWH
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	plotW := Width - marginLeft - marginRight
	plotH := Height - marginTop - marginBottom

	// Axes
	drawHLine(img, marginLeft, Width-marginRight, Height-marginBottom, axisColor)
	drawVLine(img, marginLeft, marginTop, Height-marginBottom, axisColor)

	// kWh series
	n := len(ds.Records)
	prevX, prevY := 0, 0
	for i, r := range ds.Records {
		x := marginLeft
		if n > 1 {
			x = marginLeft + i*plotW/(n-1)
		}
		y := Height - marginBottom - int((r.KWH-lo)/(hi-lo)*float64(plotH))
		if i > 0 {
			drawLine(img, prevX, prevY, x, y, lineColor)
		}
		prevX, prevY = x, y
	}

	title := fmt.Sprintf("%s %d - daily solar production (kWh)", ds.Season, ds.Year)
	drawText(img, marginLeft, 50, title, textColor)
	drawText(img, 10, marginTop+6, fmt.Sprintf("%.1f", hi), textColor)
	drawText(img, 10, Height-marginBottom, fmt.Sprintf("%.1f", lo), textColor)
	drawText(img, marginLeft, Height-marginBottom+30, ds.Records[0].Date.Format("Jan 2"), textColor)
	last := ds.Records[n-1].Date.Format("Jan 2")
	drawText(img, Width-marginRight-7*len(last), Height-marginBottom+30, last, textColor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func drawHLine(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func drawVLine(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

// drawLine steps along the longer axis, thickening vertically so steep
// segments stay visible.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		img.Set(x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		img.Set(x, y, c)
		img.Set(x, y+1, c)
	}
}

func drawText(img *image.RGBA, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
