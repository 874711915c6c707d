package pages

import (
	"context"
)

const homeIntro = `This project analyzes real estate listings scraped from Aqarmap.

Dataset overview:
- Property details such as price, price per meter, location, area, bedrooms, bathrooms and more.
- Both numerical and categorical features.

Key insights from EDA:
- Average property price: 7,432,927.8 EGP.
- Most listings are located in New Cairo.
- Typical apartment area around 149 sqm.
- 3rd floor is the most frequently listed floor.
- Ain Sokhna has the highest price per meter.
- Among the top 10 most common property sizes, 160 sqm is the most listed.

Suitable for EDA, visualization, and predictive modeling after preprocessing and scaling.`

// buildHome renders the project introduction and the raw scraped dataset.
func buildHome(ctx context.Context, store Store) (*Page, error) {
	table, err := store.Listings(ctx)
	if err != nil {
		return nil, err
	}
	return &Page{
		Name:  "home",
		Title: "Real Estate Data Analysis - Aqarmap Project",
		Intro: homeIntro,
		Table: tableView(table),
	}, nil
}
