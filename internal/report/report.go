package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/rules"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/series"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/store"
)

// #region stats

// SeriesStats summarizes one measurement trace.
type SeriesStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes summary statistics for a measurement trace. An empty
// trace yields a zero value; a single sample has zero deviation.
func Describe(values []float64) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}
	s := SeriesStats{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s
}

// #endregion stats

// #region chart

// ChartSeries is one named trace on a line chart.
type ChartSeries struct {
	Name   string
	Values []float64
}

// lineChart renders one chart with frame-sample index on the x axis. All
// traces on a chart must be the same length; shorter traces are plotted as
// far as they go.
func lineChart(title, subtitle, yAxisName string, traces []ChartSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "frame"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	maxLen := 0
	for _, t := range traces {
		if len(t.Values) > maxLen {
			maxLen = len(t.Values)
		}
	}
	xs := make([]int, maxLen)
	for i := range xs {
		xs[i] = i
	}
	line.SetXAxis(xs)

	for _, t := range traces {
		data := make([]opts.LineData, len(t.Values))
		for i, v := range t.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(t.Name, data)
	}
	return line
}

// #endregion chart

// #region session-report

// trace pairs a store query with its chart placement.
type trace struct {
	name    string
	rule    rules.RuleName
	side    rules.Side
	measure string
}

var chartLayout = []struct {
	title  string
	yAxis  string
	traces []trace
}{
	{
		title: "Elbow flexion", yAxis: "degrees",
		traces: []trace{
			{"left elbow", rules.RuleCurl, rules.SideLeft, "angle"},
			{"right elbow", rules.RuleCurl, rules.SideRight, "angle"},
		},
	},
	{
		title: "Squat depth", yAxis: "degrees",
		traces: []trace{
			{"left knee", rules.RuleSquat, rules.SideLeft, "knee_angle"},
			{"right knee", rules.RuleSquat, rules.SideRight, "knee_angle"},
		},
	},
	{
		title: "Torso tilt", yAxis: "degrees",
		traces: []trace{
			{"torso", rules.RulePosture, "", "tilt"},
		},
	},
	{
		title: "Wrist drop", yAxis: "normalized y",
		traces: []trace{
			{"left wrist", rules.RuleRaise, rules.SideLeft, "dy"},
			{"right wrist", rules.RuleRaise, rules.SideRight, "dy"},
		},
	},
}

// WriteSessionReport renders an HTML page of per-rule measurement charts for
// one session. Each trace is plotted twice, raw and moving-average smoothed,
// because single-frame jitter from the estimator makes raw traces hard to
// read. A smoothWindow of 1 or less plots raw traces only.
func WriteSessionReport(w io.Writer, s *store.Store, sessionID string, smoothWindow int) error {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return fmt.Errorf("session lookup: %w", err)
	}

	page := components.NewPage()
	page.PageTitle = "Form report " + sess.ID

	for _, chart := range chartLayout {
		var traces []ChartSeries
		for _, tr := range chart.traces {
			values, err := s.RuleSeries(sessionID, tr.rule, tr.side, tr.measure)
			if err != nil {
				return fmt.Errorf("series %s/%s/%s: %w", tr.rule, tr.side, tr.measure, err)
			}
			if len(values) == 0 {
				continue
			}
			traces = append(traces, ChartSeries{Name: tr.name, Values: values})
			if smoothWindow > 1 {
				traces = append(traces, ChartSeries{
					Name:   tr.name + " (smoothed)",
					Values: series.MovingAverage(values, smoothWindow),
				})
			}
		}
		if len(traces) == 0 {
			continue
		}
		page.AddCharts(lineChart(chart.title, "session "+sess.Source, chart.yAxis, traces))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// #endregion session-report
