package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqarboard/internal/charts"
	"aqarboard/internal/dataset"
)

// fakeStore serves in-memory tables and records which datasets a page
// build touched.
type fakeStore struct {
	listings   *dataset.Table
	deployment *dataset.Table
	train      *dataset.Table

	calls []string
}

func (s *fakeStore) Listings(ctx context.Context) (*dataset.Table, error) {
	s.calls = append(s.calls, "listings")
	return s.listings, nil
}

func (s *fakeStore) Deployment(ctx context.Context) (*dataset.Table, error) {
	s.calls = append(s.calls, "deployment")
	return s.deployment, nil
}

func (s *fakeStore) Train(ctx context.Context) (*dataset.Table, error) {
	s.calls = append(s.calls, "train")
	return s.train, nil
}

func newFakeStore() *fakeStore {
	headers := []string{
		"Price", "Area in m²", "Bedrooms", "View", "Governorate",
		"Price per meter", "Payment Method", "Year Built", "Floor",
	}
	rows := [][]string{
		{"1,500,000", "120 m²", "3", "Garden", "Cairo", "12,500", "Cash", "2015", "3"},
		{"2,000,000", "149 m²", "2", "Street", "Giza", "13,422", "Installment", "2018", "5"},
		{"N/A", "90 m²", "N/A", "Garden", "Cairo", "9,000", "Cash", "2010", "1"},
		{"3,250,000", "160 m²", "4", "Sea", "Alexandria", "20,312", "Cash", "2020", "2"},
		{"4,100,000", "160 m²", "3", "Sea", "North Coast", "25,625", "Installment", "2021", "8"},
	}

	return &fakeStore{
		listings:   dataset.NewTable("aqarmap_all_apartments_merged", []string{"Price", "Location"}, [][]string{{"1,000,000", "New Cairo"}}),
		deployment: dataset.NewTable("aqar_deployment", headers, rows),
		train:      dataset.NewTable("Full_train_set", []string{"price_scaled"}, [][]string{{"0.42"}}),
	}
}

func TestRegistry_List(t *testing.T) {
	infos := NewRegistry().List()

	require.Len(t, infos, 3)
	assert.Equal(t, "home", infos[0].Name)
	assert.Equal(t, "eda", infos[1].Name)
	assert.Equal(t, "preprocessed", infos[2].Name)
}

func TestRegistry_Build_UnknownPage(t *testing.T) {
	_, err := NewRegistry().Build(context.Background(), newFakeStore(), "settings")
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestRegistry_Build_DispatchesExactlyOne(t *testing.T) {
	tests := []struct {
		page     string
		wantCall string
	}{
		{page: "home", wantCall: "listings"},
		{page: "eda", wantCall: "deployment"},
		{page: "preprocessed", wantCall: "train"},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			store := newFakeStore()
			page, err := NewRegistry().Build(context.Background(), store, tt.page)
			require.NoError(t, err)

			assert.Equal(t, tt.page, page.Name)
			assert.Equal(t, []string{tt.wantCall}, store.calls,
				"one dispatch must read exactly one dataset")
		})
	}
}

func TestBuildHome(t *testing.T) {
	page, err := buildHome(context.Background(), newFakeStore())
	require.NoError(t, err)

	assert.Contains(t, page.Intro, "Aqarmap")
	require.NotNil(t, page.Table)
	assert.Equal(t, 1, page.Table.RowCount)
	assert.Empty(t, page.Tabs)
}

func TestBuildPreprocessed(t *testing.T) {
	page, err := buildPreprocessed(context.Background(), newFakeStore())
	require.NoError(t, err)

	require.NotNil(t, page.Table)
	assert.Equal(t, []string{"price_scaled"}, page.Table.Headers)
}

func TestBuildEDA_Tabs(t *testing.T) {
	page, err := buildEDA(context.Background(), newFakeStore())
	require.NoError(t, err)

	require.Len(t, page.Tabs, 3)
	assert.Equal(t, "Univariate Analysis", page.Tabs[0].Name)
	assert.Equal(t, "Bivariate Analysis", page.Tabs[1].Name)
	assert.Equal(t, "Multivariate Analysis", page.Tabs[2].Name)
}

func TestBuildEDA_Univariate(t *testing.T) {
	page, err := buildEDA(context.Background(), newFakeStore())
	require.NoError(t, err)

	summary := page.Tabs[0].Sections[0]
	assert.Equal(t, "Summary Statistics", summary.Heading)
	require.NotNil(t, summary.Table)
	assert.Equal(t, []string{"Column", "Count", "Mean", "Std", "Min", "Max"}, summary.Table.Headers)
	require.NotEmpty(t, summary.Table.Rows)
	// The N/A price row is excluded from the count.
	assert.Equal(t, "Price", summary.Table.Rows[0][0])
	assert.Equal(t, "4", summary.Table.Rows[0][1])
	assert.Equal(t, "1500000.00", summary.Table.Rows[0][4])

	numeric := page.Tabs[0].Sections[1]
	assert.Equal(t, "Numeric Columns", numeric.Heading)
	// Histogram plus box per numeric column.
	require.NotEmpty(t, numeric.Charts)
	assert.Equal(t, charts.KindHistogram, numeric.Charts[0].Kind)
	assert.Equal(t, charts.KindBox, numeric.Charts[1].Kind)

	categorical := page.Tabs[0].Sections[2]
	assert.Equal(t, "Categorical Columns", categorical.Heading)
	for _, spec := range categorical.Charts {
		assert.Contains(t, []charts.Kind{charts.KindPie, charts.KindBar, charts.KindHistogram}, spec.Kind)
	}

	// View has 3 distinct values in the fixture, so it must be a pie.
	var viewSpec *charts.Spec
	for i := range categorical.Charts {
		if categorical.Charts[i].Title == "Pie Chart of View" {
			viewSpec = &categorical.Charts[i]
		}
	}
	require.NotNil(t, viewSpec, "View column should render as a pie chart")
	assert.ElementsMatch(t, []string{"Garden", "Street", "Sea"}, viewSpec.Labels)
}

func TestBuildEDA_Univariate_MarkerTokensDoNotShiftChartKind(t *testing.T) {
	// Six real view categories plus N/A rows: cardinality stays 6, so the
	// column still renders as a pie rather than tipping over into a bar.
	store := newFakeStore()
	store.deployment = dataset.NewTable("aqar_deployment", store.deployment.Headers, [][]string{
		{"1,500,000", "120 m²", "3", "Garden", "Cairo", "12,500", "Cash", "2015", "3"},
		{"2,000,000", "149 m²", "2", "Street", "Giza", "13,422", "Installment", "2018", "5"},
		{"2,400,000", "110 m²", "2", "Sea", "Cairo", "21,818", "Cash", "2012", "4"},
		{"3,250,000", "160 m²", "4", "Nile", "Alexandria", "20,312", "Cash", "2020", "2"},
		{"4,100,000", "160 m²", "3", "Pool", "North Coast", "25,625", "Installment", "2021", "8"},
		{"1,900,000", "95 m²", "1", "Courtyard", "Giza", "20,000", "Cash", "2016", "6"},
		{"2,750,000", "130 m²", "3", "N/A", "Cairo", "21,153", "Installment", "2019", "7"},
	})

	page, err := buildEDA(context.Background(), store)
	require.NoError(t, err)

	categorical := page.Tabs[0].Sections[2]
	var viewSpec *charts.Spec
	for i := range categorical.Charts {
		if categorical.Charts[i].Title == "Pie Chart of View" {
			viewSpec = &categorical.Charts[i]
		}
	}
	require.NotNil(t, viewSpec, "six real view values keep the pie rendering")
	assert.Equal(t, charts.KindPie, viewSpec.Kind)
	assert.NotContains(t, viewSpec.Labels, "N/A")
}

func TestBuildEDA_Bivariate(t *testing.T) {
	page, err := buildEDA(context.Background(), newFakeStore())
	require.NoError(t, err)

	specs := page.Tabs[1].Sections[0].Charts
	require.Len(t, specs, 10, "the bivariate tab has ten fixed charts")

	assert.Equal(t, "Price Distribution by View", specs[0].Title)
	assert.Equal(t, charts.KindBox, specs[0].Kind)
	assert.NotEmpty(t, specs[0].Note)

	assert.Equal(t, charts.KindBar, specs[1].Kind)
	assert.Equal(t, "Governorate", specs[1].XLabel)

	// Scatter pairs with a missing coordinate are dropped: the N/A price
	// row disappears from the year-built scatter.
	yearBuilt := specs[4]
	assert.Equal(t, charts.KindScatter, yearBuilt.Kind)
	assert.Len(t, yearBuilt.Points, 4)

	// The coastal comparison keeps its fixed ordering and skips absent
	// governorates.
	coastal := specs[8]
	require.Len(t, coastal.Boxes, 2)
	assert.Equal(t, "North Coast", coastal.Boxes[0].Label)
	assert.Equal(t, "Alexandria", coastal.Boxes[1].Label)
}

func TestBuildEDA_Multivariate(t *testing.T) {
	page, err := buildEDA(context.Background(), newFakeStore())
	require.NoError(t, err)

	grid := page.Tabs[2].Sections[0]
	assert.NotEmpty(t, grid.Charts)
	for _, spec := range grid.Charts {
		assert.Equal(t, charts.KindScatter, spec.Kind)
	}

	corr := page.Tabs[2].Sections[1]
	require.NotNil(t, corr.Table)
	// Diagonal of the correlation matrix is exactly 1.
	assert.Equal(t, "1.000", corr.Table.Rows[0][1])
}

func TestBuildEDA_MissingColumnFails(t *testing.T) {
	store := newFakeStore()
	store.deployment = dataset.NewTable("aqar_deployment",
		[]string{"Price"}, [][]string{{"1,000"}})

	_, err := buildEDA(context.Background(), store)
	assert.Error(t, err)
}
