// Package steam provides a Steam Storefront price client abstracted behind
// an interface for testability.
package steam

import (
	"context"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// PriceFetcher returns the current store price of a single Steam app.
// Any failure is reported as a *FetchError.
type PriceFetcher interface {
	FetchPrice(ctx context.Context, appID string) (*domain.PriceSnapshot, error)
}

// SupportedCountries lists the store country codes accepted in config.
var SupportedCountries = []string{"us", "gb", "eu", "ru", "br", "au", "jp", "in", "ca", "cn"}
