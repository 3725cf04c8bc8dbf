// Package plot renders the two-axis diagnostic chart of a feature extraction.
package plot

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sartorproj/gosignal/feature"
	"github.com/sartorproj/gosignal/stats"
	"github.com/sartorproj/gosignal/timeseries"
)

const (
	// axisScale divides the primary signal's extremes to get the left axis range.
	axisScale = 0.3

	colorPrimary   = "#2563eb"
	colorSecondary = "#f59e0b"
)

// Options describes what to draw.
type Options struct {
	Primary        string // column on the left axis
	Secondary      string // 0/1 indicator column on the right axis
	Title          string
	XLabel         string
	PrimaryLabel   string
	SecondaryLabel string
	Width          int // pixels; 0 means 1200
	Height         int // pixels; 0 means 600
}

func (o Options) size() (int, int) {
	return viewport(o.Width, o.Height)
}

// viewport substitutes 1200x600 for unset dimensions.
func viewport(w, h int) (int, int) {
	if w <= 0 {
		w = 1200
	}
	if h <= 0 {
		h = 600
	}
	return w, h
}

// PrimaryRange returns the left axis bounds round(min/0.3) and round(max/0.3),
// ignoring NaN and rounding half to even.
func PrimaryRange(values []float64) (lo, hi float64) {
	return math.RoundToEven(stats.NanMin(values) / axisScale), math.RoundToEven(stats.NanMax(values) / axisScale)
}

// Diagnostic builds the chart: Primary against the left axis, Secondary
// against a right axis fixed to [0, 1], and markers at the feature set's
// minimum and maximum.
func Diagnostic(t *timeseries.Table, fs feature.FeatureSet, o Options) (*charts.Line, error) {
	primary, err := t.Column(o.Primary)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	secondary, err := t.Column(o.Secondary)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	lo, hi := PrimaryRange(primary)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, fmt.Errorf("plot: %q has no finite values", o.Primary)
	}
	w, h := o.size()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     fmt.Sprintf("%dpx", w),
			Height:    fmt.Sprintf("%dpx", h),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: fmt.Sprintf("dmax %.3f | min %.2f s | max %.2f s", fs.DMax, fs.MinTime, fs.MaxTime),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: o.XLabel,
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: o.PrimaryLabel,
			Type: "value",
			Min:  lo,
			Max:  hi,
		}),
	)
	line.ExtendYAxis(opts.YAxis{
		Name: o.SecondaryLabel,
		Type: "value",
		Min:  0,
		Max:  1,
	})

	line.SetXAxis(axisLabels(t.Index)).
		AddSeries(o.Primary, toLineData(primary),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colorPrimary, Width: 2}),
			charts.WithMarkPointNameCoordItemOpts(
				opts.MarkPointNameCoordItem{
					Name:       "min",
					Coordinate: []interface{}{axisLabel(fs.MinTime), fs.MinTimeValue},
					Symbol:     "pin",
				},
				opts.MarkPointNameCoordItem{
					Name:       "max",
					Coordinate: []interface{}{axisLabel(fs.MaxTime), fs.MaxTimeValue},
					Symbol:     "pin",
				},
			),
		).
		AddSeries(o.Secondary, toLineData(secondary),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false), YAxisIndex: 1}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colorSecondary, Width: 1}),
		)
	return line, nil
}

// Render writes the diagnostic chart as a standalone HTML page.
func Render(w io.Writer, t *timeseries.Table, fs feature.FeatureSet, o Options) error {
	line, err := Diagnostic(t, fs, o)
	if err != nil {
		return err
	}
	return line.Render(w)
}

// RenderPNG screenshots an HTML page in a headless browser. It needs a
// Chrome or Chromium binary on the host. Zero dimensions fall back to the
// same 1200x600 as Options.
func RenderPNG(ctx context.Context, html []byte, width, height int) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	width, height = viewport(width, height)
	parent, cancel := chromedp.NewContext(ctx)
	defer cancel()

	timeoutCtx, cancelTimeout := context.WithTimeout(parent, 20*time.Second)
	defer cancelTimeout()

	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString(html)
	var screenshot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(dataURI),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(time.Second),
		chromedp.FullScreenshot(&screenshot, 90),
	}
	if err := chromedp.Run(timeoutCtx, tasks...); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return screenshot, nil
}

func axisLabel(ts float64) string {
	return fmt.Sprintf("%.2f", ts)
}

func axisLabels(index []float64) []string {
	out := make([]string, len(index))
	for i, ts := range index {
		out[i] = axisLabel(ts)
	}
	return out
}

func toLineData(values []float64) []opts.LineData {
	out := make([]opts.LineData, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = opts.LineData{Value: nil}
			continue
		}
		out[i] = opts.LineData{Value: v}
	}
	return out
}
