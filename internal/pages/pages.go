// Package pages defines the dashboard's named views and the dispatch that
// maps a selected view name to exactly one builder. The selection is an
// explicit parameter, never process-wide state, so dispatch stays a pure
// lookup that the tests can exercise without any rendering host.
package pages

import (
	"context"
	"errors"
	"fmt"

	"aqarboard/internal/charts"
	"aqarboard/internal/dataset"
)

// ErrUnknownPage is returned when dispatch is asked for a view name that
// was never registered.
var ErrUnknownPage = errors.New("unknown page")

// Store supplies the backing tables. Every call re-reads the file, so each
// page view works on a fresh table.
type Store interface {
	// Listings returns the raw merged listings table shown on the home page.
	Listings(ctx context.Context) (*dataset.Table, error)
	// Deployment returns the cleaned table the EDA charts are computed from.
	Deployment(ctx context.Context) (*dataset.Table, error)
	// Train returns the preprocessed training table.
	Train(ctx context.Context) (*dataset.Table, error)
}

// TableView is the JSON rendering of a table.
type TableView struct {
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"row_count"`
}

// Section groups charts, notes and tables under one heading.
type Section struct {
	Heading string        `json:"heading,omitempty"`
	Charts  []charts.Spec `json:"charts,omitempty"`
	Table   *TableView    `json:"table,omitempty"`
	Note    string        `json:"note,omitempty"`
}

// Tab is one tab of a tabbed page.
type Tab struct {
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

// Page is the complete payload of one rendered view.
type Page struct {
	Name  string     `json:"name"`
	Title string     `json:"title"`
	Intro string     `json:"intro,omitempty"`
	Table *TableView `json:"table,omitempty"`
	Tabs  []Tab      `json:"tabs,omitempty"`
}

// Info identifies one registered view for navigation.
type Info struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Builder produces one page from the store.
type Builder func(ctx context.Context, store Store) (*Page, error)

// Registry maps view names to builders and preserves registration order
// for the sidebar.
type Registry struct {
	builders map[string]Builder
	order    []Info
}

// NewRegistry returns the dashboard's three views: home, eda and
// preprocessed.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder)}
	r.register("home", "Home Page", buildHome)
	r.register("eda", "EDA & Plots", buildEDA)
	r.register("preprocessed", "Preprocessed Data", buildPreprocessed)
	return r
}

func (r *Registry) register(name, title string, b Builder) {
	r.builders[name] = b
	r.order = append(r.order, Info{Name: name, Title: title})
}

// List returns the registered views in sidebar order.
func (r *Registry) List() []Info {
	out := make([]Info, len(r.order))
	copy(out, r.order)
	return out
}

// Build dispatches the selected view name to its builder, invoking exactly
// one builder per call.
func (r *Registry) Build(ctx context.Context, store Store, name string) (*Page, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	return builder(ctx, store)
}

func tableView(t *dataset.Table) *TableView {
	return &TableView{Headers: t.Headers, Rows: t.Rows, RowCount: t.RowCount()}
}
