package pages

import (
	"context"
)

// buildPreprocessed renders the scaled training table as-is.
func buildPreprocessed(ctx context.Context, store Store) (*Page, error) {
	table, err := store.Train(ctx)
	if err != nil {
		return nil, err
	}
	return &Page{
		Name:  "preprocessed",
		Title: "Preprocessed Data",
		Table: tableView(table),
	}, nil
}
