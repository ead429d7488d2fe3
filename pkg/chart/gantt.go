// Package chart renders per-service status intervals as a Gantt-style PNG
// timeline.
package chart

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"

	"github.com/upgantt/upgantt/pkg/extract"
	"github.com/upgantt/upgantt/pkg/timeline"
)

// Options control chart geometry and colors. Zero values fall back to the
// package defaults.
type Options struct {
	Width     int
	RowHeight int
	UpColor   string
	DownColor string
	Title     string
}

// Defaults for Options.
const (
	DefaultWidth     = 1600
	DefaultRowHeight = 48
	DefaultUpColor   = "#3CB371"
	DefaultDownColor = "#F08080"
	DefaultTitle     = "Service Uptime/Downtime"
)

const (
	marginTop    = 56.0
	marginBottom = 64.0
	marginRight  = 32.0
	gutterPad    = 16.0
	barShare     = 0.6 // bar height as a share of the row height

	outlineColor  = "#9E9E9E"
	gridColor     = "#BDBDBD"
	textColor     = "#212121"
	axisTimeLabel = "2006-01-02 15:04"
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = DefaultRowHeight
	}
	if o.UpColor == "" {
		o.UpColor = DefaultUpColor
	}
	if o.DownColor == "" {
		o.DownColor = DefaultDownColor
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	return o
}

// Gantt renders one row per service, bars colored by status, over a shared
// UTC time axis.
type Gantt struct {
	opts Options
}

// New creates a Gantt renderer.
func New(opts Options) *Gantt {
	return &Gantt{opts: opts.withDefaults()}
}

// Render draws the given services (top to bottom) with their intervals over
// the viewport and writes a PNG to path. Intervals outside the viewport are
// clamped to it.
func (g *Gantt) Render(services []string, intervals map[string][]timeline.Interval, vp timeline.Viewport, path string) error {
	if len(services) == 0 {
		return fmt.Errorf("no services to chart")
	}
	if !vp.End.After(vp.Start) {
		return fmt.Errorf("empty chart viewport")
	}

	height := marginTop + float64(len(services)*g.opts.RowHeight) + marginBottom
	dc := gg.NewContext(g.opts.Width, int(height))

	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	// Left gutter sized to the widest service label.
	gutter := 0.0
	for _, svc := range services {
		if w, _ := dc.MeasureString(svc); w > gutter {
			gutter = w
		}
	}
	gutter += 2 * gutterPad

	plotX0 := gutter
	plotX1 := float64(g.opts.Width) - marginRight
	span := vp.End.Sub(vp.Start)

	xAt := func(t time.Time) float64 {
		frac := float64(t.Sub(vp.Start)) / float64(span)
		return plotX0 + frac*(plotX1-plotX0)
	}

	g.drawAxis(dc, vp, xAt, plotX0, plotX1, height)

	rowH := float64(g.opts.RowHeight)
	for i, svc := range services {
		rowTop := marginTop + float64(i)*rowH

		dc.SetHexColor(textColor)
		dc.DrawStringAnchored(svc, plotX0-gutterPad, rowTop+rowH/2, 1, 0.35)

		for _, iv := range intervals[svc] {
			start, end := iv.Start, iv.End
			if start.Before(vp.Start) {
				start = vp.Start
			}
			if end.After(vp.End) {
				end = vp.End
			}
			if !end.After(start) {
				continue
			}

			x0, x1 := xAt(start), xAt(end)
			y := rowTop + rowH*(1-barShare)/2

			dc.DrawRectangle(x0, y, x1-x0, rowH*barShare)
			dc.SetHexColor(g.colorFor(iv.Status))
			dc.FillPreserve()
			dc.SetHexColor(outlineColor)
			dc.SetLineWidth(0.5)
			dc.Stroke()
		}
	}

	g.drawTitle(dc)
	g.drawLegend(dc, plotX1)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving chart to %s: %w", path, err)
	}
	return nil
}

func (g *Gantt) colorFor(status extract.Status) string {
	if status == extract.StatusUp {
		return g.opts.UpColor
	}
	return g.opts.DownColor
}

func (g *Gantt) drawTitle(dc *gg.Context) {
	dc.SetHexColor(textColor)
	dc.DrawStringAnchored(g.opts.Title, float64(g.opts.Width)/2, marginTop/2, 0.5, 0.35)
}

func (g *Gantt) drawLegend(dc *gg.Context, plotX1 float64) {
	const swatch = 10.0
	y := marginTop/2 - swatch/2

	entries := []struct {
		label string
		color string
	}{
		{"UP", g.opts.UpColor},
		{"DOWN", g.opts.DownColor},
	}

	x := plotX1
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		w, _ := dc.MeasureString(e.label)
		x -= w
		dc.SetHexColor(textColor)
		dc.DrawStringAnchored(e.label, x, y+swatch/2, 0, 0.35)
		x -= swatch + 6
		dc.DrawRectangle(x, y, swatch, swatch)
		dc.SetHexColor(e.color)
		dc.FillPreserve()
		dc.SetHexColor(outlineColor)
		dc.SetLineWidth(0.5)
		dc.Stroke()
		x -= 18
	}
}

// drawAxis draws dotted gridlines and UTC time labels at nice step
// boundaries along the bottom of the plot.
func (g *Gantt) drawAxis(dc *gg.Context, vp timeline.Viewport, xAt func(time.Time) float64, plotX0, plotX1, height float64) {
	axisY := height - marginBottom + 8

	dc.SetHexColor(textColor)
	dc.SetLineWidth(1)
	dc.DrawLine(plotX0, height-marginBottom, plotX1, height-marginBottom)
	dc.Stroke()

	step := tickStep(vp.End.Sub(vp.Start))
	tick := vp.Start.Truncate(step)
	if tick.Before(vp.Start) {
		tick = tick.Add(step)
	}

	for !tick.After(vp.End) {
		x := xAt(tick)

		dc.SetHexColor(gridColor)
		dc.SetLineWidth(0.5)
		dc.SetDash(1, 3)
		dc.DrawLine(x, marginTop, x, height-marginBottom)
		dc.Stroke()
		dc.SetDash()

		dc.SetHexColor(textColor)
		dc.DrawStringAnchored(tick.UTC().Format(axisTimeLabel), x, axisY+8, 0.5, 0.35)

		tick = tick.Add(step)
	}

	dc.SetHexColor(textColor)
	dc.DrawStringAnchored("Time (UTC)", (plotX0+plotX1)/2, height-marginBottom/3, 0.5, 0.35)
}

// tickSteps are the candidate axis label intervals, smallest first.
var tickSteps = []time.Duration{
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	2 * time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	2 * 24 * time.Hour,
	7 * 24 * time.Hour,
	14 * 24 * time.Hour,
	30 * 24 * time.Hour,
}

// maxTicks caps the number of axis labels so they stay readable.
const maxTicks = 12

// tickStep picks the smallest candidate step that keeps the label count
// within maxTicks.
func tickStep(span time.Duration) time.Duration {
	for _, step := range tickSteps {
		if span/step <= maxTicks {
			return step
		}
	}
	// Very long spans: scale the largest step up until it fits.
	step := tickSteps[len(tickSteps)-1]
	for span/step > maxTicks {
		step *= 2
	}
	return step
}
