package pages

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"aqarboard/internal/charts"
	"aqarboard/internal/dataset"
	"aqarboard/internal/stats"
)

// Column names of the deployment dataset. The schema is expected, not
// validated; a missing column fails the page build.
const (
	colPrice         = "Price"
	colArea          = "Area in m²"
	colBedrooms      = "Bedrooms"
	colView          = "View"
	colGovernorate   = "Governorate"
	colPricePerMeter = "Price per meter"
	colPayment       = "Payment Method"
	colYearBuilt     = "Year Built"
	colFloor         = "Floor"
)

const (
	histogramBins = 20
	topAreaCount  = 10
)

// coastalGovernorates is the fixed comparison set of the ninth bivariate
// chart.
var coastalGovernorates = []string{"North Coast", "Alexandria", "Marsa Matruh"}

// buildEDA recomputes the full exploratory analysis from the deployment
// file: a coercion pass over the three decorated numeric columns, then the
// univariate, bivariate and multivariate tabs.
func buildEDA(ctx context.Context, store Store) (*Page, error) {
	table, err := store.Deployment(ctx)
	if err != nil {
		return nil, err
	}
	if err := table.Coerce(colPrice, colArea, colBedrooms); err != nil {
		return nil, err
	}

	univariate, err := univariateTab(table)
	if err != nil {
		return nil, err
	}
	bivariate, err := bivariateTab(table)
	if err != nil {
		return nil, err
	}
	multivariate, err := multivariateTab(table)
	if err != nil {
		return nil, err
	}

	return &Page{
		Name:  "eda",
		Title: "Exploratory Data Analysis",
		Tabs:  []Tab{*univariate, *bivariate, *multivariate},
	}, nil
}

// univariateTab charts every column on its own: a describe-style summary
// table, histogram plus box for numeric columns, and a
// cardinality-dependent chart for each categorical one.
func univariateTab(table *dataset.Table) (*Tab, error) {
	summary := Section{Heading: "Summary Statistics", Table: summaryTable(table)}

	numeric := Section{Heading: "Numeric Columns"}
	for _, name := range table.NumericColumns() {
		values, _ := table.Numeric(name)
		numeric.Charts = append(numeric.Charts,
			charts.NewHistogram("Distribution of "+name, name, stats.Histogram(values, histogramBins)),
			charts.NewBox("Boxplot of "+name, "", name, []charts.NamedBox{
				{Label: name, Box: stats.Box(values)},
			}),
		)
	}

	categorical := Section{Heading: "Categorical Columns"}
	for _, name := range table.CategoricalColumns() {
		raw, err := table.Column(name)
		if err != nil {
			return nil, err
		}
		counts := stats.ValueCounts(raw)
		distinct, err := table.DistinctCount(name)
		if err != nil {
			return nil, err
		}

		var spec charts.Spec
		switch charts.KindForCategorical(distinct) {
		case charts.KindPie:
			spec = charts.NewPie("Pie Chart of "+name, counts)
		case charts.KindHistogram:
			spec = charts.NewCountPlot("Count Plot of "+name, name, counts)
		default:
			spec = charts.NewBar("Bar Chart of "+name, name, "Count", counts)
		}
		categorical.Charts = append(categorical.Charts, spec)
	}

	return &Tab{Name: "Univariate Analysis", Sections: []Section{summary, numeric, categorical}}, nil
}

// summaryTable renders the count, mean, std, min and max of every numeric
// column as one table view.
func summaryTable(table *dataset.Table) *TableView {
	names := table.NumericColumns()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		values, _ := table.Numeric(name)
		s := stats.Describe(values)
		rows = append(rows, []string{
			name,
			strconv.Itoa(s.Count),
			strconv.FormatFloat(s.Mean, 'f', 2, 64),
			strconv.FormatFloat(s.Std, 'f', 2, 64),
			strconv.FormatFloat(s.Min, 'f', 2, 64),
			strconv.FormatFloat(s.Max, 'f', 2, 64),
		})
	}
	return &TableView{
		Headers:  []string{"Column", "Count", "Mean", "Std", "Min", "Max"},
		Rows:     rows,
		RowCount: len(rows),
	}
}

// bivariateTab reproduces the ten fixed relationship charts.
func bivariateTab(table *dataset.Table) (*Tab, error) {
	price, _ := table.Numeric(colPrice)
	area, _ := table.Numeric(colArea)
	bedrooms, _ := table.Numeric(colBedrooms)

	view, err := table.Column(colView)
	if err != nil {
		return nil, err
	}
	governorate, err := table.Column(colGovernorate)
	if err != nil {
		return nil, err
	}
	payment, err := table.Column(colPayment)
	if err != nil {
		return nil, err
	}
	floor, err := table.Column(colFloor)
	if err != nil {
		return nil, err
	}
	yearBuiltRaw, err := table.Column(colYearBuilt)
	if err != nil {
		return nil, err
	}
	ppmRaw, err := table.Column(colPricePerMeter)
	if err != nil {
		return nil, err
	}

	// These two arrive as text in some scrapes; coerce them locally
	// without registering a numeric view on the table.
	yearBuilt := dataset.CoerceColumn(yearBuiltRaw)
	pricePerMeter := dataset.CoerceColumn(ppmRaw)
	floorNum := dataset.CoerceColumn(floor)

	section := Section{
		Charts: []charts.Spec{
			charts.NewBox("Price Distribution by View", colView, colPrice,
				groupBoxes(view, price, nil)).
				WithNote("Most of the data is between 10-30M, but the most expensive is an apartment with main street view."),

			charts.NewGroupBar("Average price per square meter for each governorate",
				colGovernorate, "Avg Price per Meter",
				stats.GroupMean(governorate, pricePerMeter)),

			charts.NewGroupBar("Average Property Price by Payment Method",
				colPayment, "Average Price",
				stats.GroupMean(payment, price)).
				WithNote("Properties paid in cash are lower priced than those purchased via installment or other methods."),

			charts.NewBar("Number of Ads by Governorate", colGovernorate, "Count",
				stats.ValueCounts(governorate)),

			charts.NewScatter("Price across Year Built", colYearBuilt, colPrice,
				yearBuilt, price),

			charts.NewBar("Most Advertised Floors", colFloor, "Number of Ads",
				stats.ValueCounts(floor)),

			charts.NewScatter("Relationship between Price and Floor", colFloor, colPrice,
				floorNum, price),

			charts.NewBar("Top 10 Most Common Areas", colArea, "Count",
				stats.TopN(numericValueCounts(area), topAreaCount)),

			charts.NewBox("Property Price Distribution in North Coast, Alexandria, and Marsa Matruh",
				colGovernorate, colPrice,
				groupBoxes(governorate, price, coastalGovernorates)),

			charts.NewScatter("Price vs Number of Bedrooms", colBedrooms, colPrice,
				bedrooms, price),
		},
	}

	return &Tab{Name: "Bivariate Analysis", Sections: []Section{section}}, nil
}

// multivariateTab renders the pairwise scatter grid and correlation matrix
// of the numeric columns.
func multivariateTab(table *dataset.Table) (*Tab, error) {
	names := table.NumericColumns()

	columns := make([][]float64, len(names))
	for i, name := range names {
		columns[i], _ = table.Numeric(name)
	}

	grid := Section{Heading: "Pairwise Relationships"}
	for i := range names {
		for j := range names {
			if i == j {
				continue
			}
			grid.Charts = append(grid.Charts, charts.NewScatter(
				fmt.Sprintf("%s vs %s", names[j], names[i]),
				names[i], names[j],
				columns[i], columns[j]))
		}
	}

	corr := Section{
		Heading: "Correlation Matrix",
		Table:   correlationTable(names, stats.CorrelationMatrix(columns)),
	}

	return &Tab{Name: "Multivariate Analysis", Sections: []Section{grid, corr}}, nil
}

// groupBoxes computes one five-number summary per group key. When only is
// non-empty it both filters and orders the groups; otherwise groups appear
// alphabetically.
func groupBoxes(keys []string, values []float64, only []string) []charts.NamedBox {
	grouped := make(map[string][]float64)
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		if dataset.IsMissingText(keys[i]) {
			continue
		}
		grouped[keys[i]] = append(grouped[keys[i]], values[i])
	}

	order := only
	if len(order) == 0 {
		order = make([]string, 0, len(grouped))
		for k := range grouped {
			order = append(order, k)
		}
		sort.Strings(order)
	}

	boxes := make([]charts.NamedBox, 0, len(order))
	for _, key := range order {
		vals, ok := grouped[key]
		if !ok {
			continue
		}
		boxes = append(boxes, charts.NamedBox{Label: key, Box: stats.Box(vals)})
	}
	return boxes
}

// numericValueCounts tallies a numeric column by exact value, e.g. the
// most common apartment areas.
func numericValueCounts(values []float64) []stats.ValueCount {
	labels := make([]string, 0, len(values))
	for _, v := range values {
		if dataset.IsMissing(v) {
			continue
		}
		labels = append(labels, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return stats.ValueCounts(labels)
}

// correlationTable renders a correlation matrix as a table view.
func correlationTable(names []string, matrix [][]float64) *TableView {
	headers := append([]string{""}, names...)
	rows := make([][]string, len(names))
	for i, name := range names {
		row := make([]string, 0, len(names)+1)
		row = append(row, name)
		for j := range names {
			row = append(row, strconv.FormatFloat(matrix[i][j], 'f', 3, 64))
		}
		rows[i] = row
	}
	return &TableView{Headers: headers, Rows: rows, RowCount: len(rows)}
}
