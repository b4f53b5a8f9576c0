package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
)

//go:embed templates/*
var templateFS embed.FS

type templateSet struct {
	*template.Template
}

// newTemplates creates and parses the HTML templates with custom functions.
func newTemplates() *templateSet {
	funcs := template.FuncMap{
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"f1": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 1, 64)
		},
		"f2": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 2, 64)
		},
		"json": func(v any) (template.JS, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(b), nil
		},
		"corrColor": corrColor,
	}
	return &templateSet{template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))}
}

// corrColor maps a correlation coefficient onto a red/white/blue scale for the
// heatmap cells: -1 is deep red, 0 is near-white, +1 is deep blue.
func corrColor(v float64) template.CSS {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	blend := func(from, to int) int {
		return from + int(math.Abs(v)*float64(to-from))
	}
	// Near-white at zero.
	r, g, b := 247, 247, 247
	if v > 0 {
		r, g, b = blend(247, 33), blend(247, 102), blend(247, 172)
	} else if v < 0 {
		r, g, b = blend(247, 178), blend(247, 24), blend(247, 43)
	}

	text := "#333"
	if math.Abs(v) > 0.6 {
		text = "#fff"
	}
	return template.CSS(fmt.Sprintf("background-color:rgb(%d,%d,%d);color:%s", r, g, b, text))
}
