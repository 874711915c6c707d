// Package charts builds JSON-serializable chart specifications from
// statistics. The frontend owns layout and interactivity; this package
// only decides chart kinds and assembles their data series.
package charts

import (
	"fmt"
	"math"

	"aqarboard/internal/stats"
)

// Kind identifies the chart primitive the frontend should draw.
type Kind string

const (
	KindPie       Kind = "pie"
	KindBar       Kind = "bar"
	KindHistogram Kind = "histogram"
	KindBox       Kind = "box"
	KindScatter   Kind = "scatter"
)

// Cardinality thresholds for categorical columns. Below pieLimit distinct
// values a column gets a pie, above barLimit a count plot, a bar chart in
// between.
const (
	pieLimit = 7
	barLimit = 10
)

// KindForCategorical picks the chart kind for a categorical column from
// its number of distinct values.
func KindForCategorical(distinct int) Kind {
	switch {
	case distinct < pieLimit:
		return KindPie
	case distinct > barLimit:
		return KindHistogram
	default:
		return KindBar
	}
}

// NamedBox is one labelled five-number summary inside a box chart.
type NamedBox struct {
	Label string           `json:"label"`
	Box   stats.BoxSummary `json:"box"`
}

// Point is one x/y pair of a scatter chart.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Spec is a complete chart description. Only the fields relevant to Kind
// are populated.
type Spec struct {
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	XLabel string `json:"x_label,omitempty"`
	YLabel string `json:"y_label,omitempty"`

	// Labels/Values carry pie, bar and categorical histogram series.
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`

	// Bins carries numeric histogram series.
	Bins []stats.Bin `json:"bins,omitempty"`

	// Boxes carries box chart series.
	Boxes []NamedBox `json:"boxes,omitempty"`

	// Points carries scatter series.
	Points []Point `json:"points,omitempty"`

	// Note is optional commentary shown under the chart.
	Note string `json:"note,omitempty"`
}

// NewPie builds a pie chart from value counts.
func NewPie(title string, counts []stats.ValueCount) Spec {
	labels, values := splitCounts(counts)
	return Spec{Kind: KindPie, Title: title, Labels: labels, Values: values}
}

// NewBar builds a bar chart from value counts.
func NewBar(title, xLabel, yLabel string, counts []stats.ValueCount) Spec {
	labels, values := splitCounts(counts)
	return Spec{Kind: KindBar, Title: title, XLabel: xLabel, YLabel: yLabel, Labels: labels, Values: values}
}

// NewCountPlot builds the histogram-kind chart used for high-cardinality
// categorical columns: one bar per observed value.
func NewCountPlot(title, xLabel string, counts []stats.ValueCount) Spec {
	labels, values := splitCounts(counts)
	return Spec{Kind: KindHistogram, Title: title, XLabel: xLabel, YLabel: "Count", Labels: labels, Values: values}
}

// NewGroupBar builds a bar chart from grouped aggregates.
func NewGroupBar(title, xLabel, yLabel string, groups []stats.GroupStat) Spec {
	labels := make([]string, len(groups))
	values := make([]float64, len(groups))
	for i, g := range groups {
		labels[i] = g.Group
		values[i] = g.Value
	}
	return Spec{Kind: KindBar, Title: title, XLabel: xLabel, YLabel: yLabel, Labels: labels, Values: values}
}

// NewHistogram builds a numeric histogram with bin-range labels.
func NewHistogram(title, xLabel string, bins []stats.Bin) Spec {
	labels := make([]string, len(bins))
	values := make([]float64, len(bins))
	for i, b := range bins {
		labels[i] = fmt.Sprintf("%s – %s", compactNumber(b.Lo), compactNumber(b.Hi))
		values[i] = float64(b.Count)
	}
	return Spec{Kind: KindHistogram, Title: title, XLabel: xLabel, YLabel: "Count", Labels: labels, Values: values, Bins: bins}
}

// NewBox builds a box chart from labelled five-number summaries.
func NewBox(title, xLabel, yLabel string, boxes []NamedBox) Spec {
	return Spec{Kind: KindBox, Title: title, XLabel: xLabel, YLabel: yLabel, Boxes: boxes}
}

// NewScatter builds a scatter chart, dropping every pair with a missing
// coordinate.
func NewScatter(title, xLabel, yLabel string, x, y []float64) Spec {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		points = append(points, Point{X: x[i], Y: y[i]})
	}
	return Spec{Kind: KindScatter, Title: title, XLabel: xLabel, YLabel: yLabel, Points: points}
}

// WithNote attaches commentary to a spec.
func (s Spec) WithNote(note string) Spec {
	s.Note = note
	return s
}

func splitCounts(counts []stats.ValueCount) ([]string, []float64) {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Value
		values[i] = float64(c.Count)
	}
	return labels, values
}

// compactNumber renders bin edges without fractional noise: integers stay
// integers, everything else keeps two decimals.
func compactNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
