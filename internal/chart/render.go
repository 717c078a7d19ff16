package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart is returned when a spec has nothing plottable.
var ErrEmptyChart = errors.New("chart: nothing to plot")

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat maps a query value to a Format. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", s)
	}
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatSVG {
		return gochart.SVG
	}
	return gochart.PNG
}

// Size is a canvas size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

var (
	DefaultSize  = Size{Width: 800, Height: 400}
	EnlargedSize = Size{Width: 1600, Height: 900}
)

// Render draws spec to w.
func Render(spec Spec, size Size, format Format, w io.Writer) error {
	if spec.Type == TypeBar {
		return renderBar(spec, size, format, w)
	}
	return renderLine(spec, size, format, w)
}

func renderLine(spec Spec, size Size, format Format, w io.Writer) error {
	var (
		series    []gochart.Series
		primary   = newBounds()
		secondary = newBounds()
	)

	for _, ds := range spec.Datasets {
		xs, ys := points(ds.Data)
		if ds.Stepped {
			xs, ys = steps(xs, ys)
		}
		if len(xs) < 2 {
			continue
		}

		axisType := gochart.YAxisPrimary
		bounds := primary
		if a, ok := spec.axis(ds.Axis); ok && a.Position == "right" {
			axisType = gochart.YAxisSecondary
			bounds = secondary
		}
		bounds.add(ys...)

		series = append(series, gochart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			YAxis:   axisType,
			Style:   lineStyle(ds),
		})
	}

	if len(series) == 0 {
		return ErrEmptyChart
	}

	ticks := make([]gochart.Tick, len(spec.Labels))
	for i, label := range spec.Labels {
		ticks[i] = gochart.Tick{Value: float64(i), Label: label}
	}

	c := gochart.Chart{
		Title:  title(spec),
		Width:  size.Width,
		Height: size.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(float64(len(spec.Labels)-1), 1)},
			Ticks: ticks,
		},
		YAxis:  yAxis(spec, "left", primary),
		Series: series,
	}
	if !secondary.empty() {
		c.YAxisSecondary = yAxis(spec, "right", secondary)
	}
	c.Elements = []gochart.Renderable{gochart.Legend(&c)}

	return c.Render(format.provider(), w)
}

func renderBar(spec Spec, size Size, format Format, w io.Writer) error {
	var bars []gochart.Value
	top := 0.0

	for i, label := range spec.Labels {
		for d, ds := range spec.Datasets {
			v := 0.0
			if i < len(ds.Data) && ds.Data[i] != nil {
				v = *ds.Data[i]
			}
			top = math.Max(top, v)

			fill := ds.BackgroundColor
			if i < len(ds.BarColors) {
				fill = ds.BarColors[i]
			}

			bar := gochart.Value{
				Value: v,
				Style: gochart.Style{
					FillColor:   parseColor(fill),
					StrokeColor: parseColor(ds.BorderColor),
					StrokeWidth: ds.BorderWidth,
				},
			}
			if d == 0 {
				bar.Label = label
			}
			bars = append(bars, bar)
		}
	}

	if len(bars) == 0 {
		return ErrEmptyChart
	}

	const spacing = 2
	barWidth := max((size.Width-120)/len(bars)-spacing, 1)

	bc := gochart.BarChart{
		Title:  title(spec),
		Width:  size.Width,
		Height: size.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth:   barWidth,
		BarSpacing: spacing,
		YAxis: gochart.YAxis{
			Name:  "µg/m³",
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(top*1.1, 1)},
		},
		Bars: bars,
	}
	return bc.Render(format.provider(), w)
}

func title(spec Spec) string {
	if spec.Subtitle != "" {
		return spec.Subtitle
	}
	return spec.Title
}

func yAxis(spec Spec, position string, b *bounds) gochart.YAxis {
	ax := gochart.YAxis{}
	var def Axis
	for _, a := range spec.Axes {
		if a.Position == position && !a.Hidden {
			def = a
			break
		}
	}
	ax.Name = def.Title

	lo, hi := b.min, b.max
	if b.empty() {
		lo, hi = 0, 1
	}
	if def.Min != nil {
		lo = *def.Min
	}
	if def.Max != nil {
		hi = *def.Max
	}
	if hi <= lo {
		lo, hi = lo-1, hi+1
	}
	ax.Range = &gochart.ContinuousRange{Min: lo, Max: hi}

	if def.TickStep > 0 {
		for v := lo; v <= hi; v += def.TickStep {
			label := def.TickLabels[int(v)]
			if def.TickLabels == nil {
				label = fmt.Sprintf("%g", v)
			}
			ax.Ticks = append(ax.Ticks, gochart.Tick{Value: v, Label: label})
		}
	}
	return ax
}

func lineStyle(ds Dataset) gochart.Style {
	st := gochart.Style{
		StrokeColor: parseColor(ds.BorderColor),
		StrokeWidth: ds.BorderWidth,
	}
	if len(ds.BorderDash) > 0 {
		st.StrokeDashArray = ds.BorderDash
	}
	if ds.Fill && ds.BackgroundColor != "" {
		st.FillColor = parseColor(ds.BackgroundColor)
	}
	if !ds.HidePoints {
		st.DotWidth = 2
		st.DotColor = st.StrokeColor
	}
	return st
}

// points drops gaps, keeping each value at its label index.
func points(data []*float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(data))
	ys := make([]float64, 0, len(data))
	for i, v := range data {
		if v == nil {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, *v)
	}
	return xs, ys
}

// steps turns a series into a staircase that holds each value until the next
// point.
func steps(xs, ys []float64) ([]float64, []float64) {
	if len(xs) < 2 {
		return xs, ys
	}
	sx := make([]float64, 0, len(xs)*2)
	sy := make([]float64, 0, len(ys)*2)
	for i := range xs {
		if i > 0 {
			sx = append(sx, xs[i])
			sy = append(sy, ys[i-1])
		}
		sx = append(sx, xs[i])
		sy = append(sy, ys[i])
	}
	return sx, sy
}

// parseColor understands "#RRGGBB" and "rgba(r, g, b, a)".
func parseColor(css string) drawing.Color {
	css = strings.TrimSpace(css)
	switch {
	case strings.HasPrefix(css, "#"):
		return drawing.ColorFromHex(strings.TrimPrefix(css, "#"))
	case strings.HasPrefix(css, "rgba("):
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(css, "rgba(%d, %d, %d, %g)", &r, &g, &b, &a); err != nil {
			return drawing.ColorTransparent
		}
		return drawing.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(math.Round(a * 255))}
	default:
		return drawing.ColorTransparent
	}
}

type bounds struct {
	min, max float64
}

func newBounds() *bounds {
	return &bounds{min: math.Inf(1), max: math.Inf(-1)}
}

func (b *bounds) add(vs ...float64) {
	for _, v := range vs {
		b.min = math.Min(b.min, v)
		b.max = math.Max(b.max, v)
	}
}

func (b *bounds) empty() bool {
	return math.IsInf(b.min, 1)
}
