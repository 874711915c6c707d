// Package stats provides the descriptive statistics behind the dashboard
// charts. All functions over float slices skip missing values (NaN), so a
// coerced column can be summarized without any pre-filtering.
package stats

import (
	"math"
	"sort"

	"aqarboard/internal/dataset"
)

// Summary holds the basic descriptive statistics of one numeric column.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// BoxSummary is the five-number summary used for box charts.
type BoxSummary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Bin is one fixed-width histogram bucket. Hi of the last bin is inclusive.
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// ValueCount pairs one categorical value with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GroupStat pairs one group key with an aggregated value.
type GroupStat struct {
	Group string  `json:"group"`
	Value float64 `json:"value"`
}

// present returns the non-missing values, preserving order.
func present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Count returns the number of non-missing values.
func Count(values []float64) int {
	return len(present(values))
}

// Mean returns the arithmetic mean of the non-missing values, or NaN when
// none are present.
func Mean(values []float64) float64 {
	vs := present(values)
	if len(vs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// Std returns the sample standard deviation of the non-missing values.
func Std(values []float64) float64 {
	vs := present(values)
	if len(vs) < 2 {
		return math.NaN()
	}
	mean := Mean(vs)
	ss := 0.0
	for _, v := range vs {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vs)-1))
}

// Min returns the smallest non-missing value, or NaN when none are present.
func Min(values []float64) float64 {
	vs := present(values)
	if len(vs) == 0 {
		return math.NaN()
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest non-missing value, or NaN when none are present.
func Max(values []float64) float64 {
	vs := present(values)
	if len(vs) == 0 {
		return math.NaN()
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Quantile returns the p-quantile (0 <= p <= 1) of the non-missing values
// using linear interpolation between order statistics.
func Quantile(values []float64, p float64) float64 {
	vs := present(values)
	if len(vs) == 0 {
		return math.NaN()
	}
	sort.Float64s(vs)
	if p <= 0 {
		return vs[0]
	}
	if p >= 1 {
		return vs[len(vs)-1]
	}
	pos := p * float64(len(vs)-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	if lo+1 >= len(vs) {
		return vs[lo]
	}
	return vs[lo] + frac*(vs[lo+1]-vs[lo])
}

// Describe computes the Summary of a column.
func Describe(values []float64) Summary {
	return Summary{
		Count: Count(values),
		Mean:  Mean(values),
		Std:   Std(values),
		Min:   Min(values),
		Max:   Max(values),
	}
}

// Box computes the five-number summary of a column.
func Box(values []float64) BoxSummary {
	return BoxSummary{
		Min:    Min(values),
		Q1:     Quantile(values, 0.25),
		Median: Quantile(values, 0.5),
		Q3:     Quantile(values, 0.75),
		Max:    Max(values),
	}
}

// Histogram splits the non-missing values into bins fixed-width buckets.
// A degenerate range (all values equal) yields a single bucket.
func Histogram(values []float64, bins int) []Bin {
	vs := present(values)
	if len(vs) == 0 || bins < 1 {
		return nil
	}
	lo, hi := Min(vs), Max(vs)
	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: len(vs)}}
	}
	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Lo: lo + float64(i)*width, Hi: lo + float64(i+1)*width}
	}
	for _, v := range vs {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1 // hi lands in the last bucket
		}
		out[idx].Count++
	}
	return out
}

// ValueCounts tallies the values of a categorical column, ordered by
// descending count with ties broken alphabetically. Cells holding a textual
// missing marker are skipped, so "N/A" never competes with real categories.
func ValueCounts(values []string) []ValueCount {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		if dataset.IsMissingText(v) {
			continue
		}
		counts[v]++
	}
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// TopN returns at most n leading entries of a ValueCounts result.
func TopN(counts []ValueCount, n int) []ValueCount {
	if n < 0 {
		n = 0
	}
	if len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// GroupMean averages values per group key, skipping rows whose value is
// missing or whose key is a missing marker. Groups are ordered
// alphabetically.
func GroupMean(keys []string, values []float64) []GroupStat {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		if dataset.IsMissingText(keys[i]) || math.IsNaN(values[i]) {
			continue
		}
		sums[keys[i]] += values[i]
		counts[keys[i]]++
	}
	out := make([]GroupStat, 0, len(sums))
	for k := range sums {
		out = append(out, GroupStat{Group: k, Value: sums[k] / float64(counts[k])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}

// Correlation returns the Pearson correlation of two columns over their
// pairwise-complete rows, or NaN when fewer than two such rows exist.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	var xs, ys []float64
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	mx, my := Mean(xs), Mean(ys)
	var sxy, sxx, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}

// CorrelationMatrix computes pairwise Pearson correlations for a set of
// named columns. The result is indexed [i][j] following the input order.
func CorrelationMatrix(columns [][]float64) [][]float64 {
	out := make([][]float64, len(columns))
	for i := range columns {
		out[i] = make([]float64, len(columns))
		for j := range columns {
			if i == j {
				out[i][j] = 1
				continue
			}
			out[i][j] = Correlation(columns[i], columns[j])
		}
	}
	return out
}
