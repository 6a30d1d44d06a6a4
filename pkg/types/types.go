// Package domain defines the core business types for the steam price tracker.
package domain

import (
	"slices"
	"time"
)

// Direction describes which way a price moved.
type Direction string

// Direction constants.
const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Price is a Steam store price. Amounts are in the currency's minor units
// (cents), exactly as the storefront API returns them.
type Price struct {
	Final           int64  `json:"final"            db:"final_price"`
	Initial         int64  `json:"initial"          db:"initial_price"`
	DiscountPercent int    `json:"discount_percent" db:"discount_percent"`
	Currency        string `json:"currency"         db:"currency"`
}

// Discounted reports whether the price carries an active discount.
func (p *Price) Discounted() bool {
	return p.DiscountPercent > 0
}

// TrackedGame is a game configured for price monitoring. LastPrice is nil
// until the first successful fetch.
type TrackedGame struct {
	AppID         string     `json:"app_id"                    db:"app_id"`
	Name          string     `json:"name"                      db:"name"`
	LastPrice     *Price     `json:"last_price,omitempty"      db:"-"`
	NotifyURLs    []string   `json:"notify_urls,omitempty"     db:"notify_urls"`
	Enabled       bool       `json:"enabled"                   db:"enabled"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty" db:"last_checked_at"`
	AddedAt       time.Time  `json:"added_at"                  db:"added_at"`
	UpdatedAt     time.Time  `json:"updated_at"                db:"updated_at"`
}

// DisplayName returns the game name, falling back to the app ID.
func (g *TrackedGame) DisplayName() string {
	if g.Name != "" {
		return g.Name
	}
	return "App " + g.AppID
}

// StoreURL returns the Steam store page for the game.
func (g *TrackedGame) StoreURL() string {
	return StoreURL(g.AppID)
}

// HasNotifyURL reports whether u is already one of the game's notify URLs.
func (g *TrackedGame) HasNotifyURL(u string) bool {
	return slices.Contains(g.NotifyURLs, u)
}

// PriceSnapshot is a single observation of a game's price. It lives only for
// the duration of one check cycle.
type PriceSnapshot struct {
	AppID     string    `json:"app_id"`
	Name      string    `json:"name"`
	Price     Price     `json:"price"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ChangeEvent is a detected price delta for a tracked game.
type ChangeEvent struct {
	AppID      string    `json:"app_id"`
	Name       string    `json:"name"`
	Old        Price     `json:"old"`
	New        Price     `json:"new"`
	Direction  Direction `json:"direction"`
	NotifyURLs []string  `json:"notify_urls,omitempty"`
	DetectedAt time.Time `json:"detected_at"`
}

// Delta returns the absolute price change in minor units.
func (e *ChangeEvent) Delta() int64 {
	d := e.New.Final - e.Old.Final
	if d < 0 {
		return -d
	}
	return d
}

// DiscountChanged reports whether the discount percentage moved along with
// the price.
func (e *ChangeEvent) DiscountChanged() bool {
	return e.New.DiscountPercent != e.Old.DiscountPercent
}

// StoreURL returns the Steam store page for the game.
func (e *ChangeEvent) StoreURL() string {
	return StoreURL(e.AppID)
}

// ValidAppID reports whether id looks like a Steam app ID: a non-empty run
// of ASCII digits.
func ValidAppID(id string) bool {
	if id == "" || len(id) > 10 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// StoreURL returns the Steam store page for an app ID.
func StoreURL(appID string) string {
	return "https://store.steampowered.com/app/" + appID
}

// CheckSummary reports the outcome of one check cycle.
type CheckSummary struct {
	Checked        int           `json:"checked"`
	Changed        int           `json:"changed"`
	Baselined      int           `json:"baselined"`
	FetchFailures  int           `json:"fetch_failures"`
	NotifyFailures int           `json:"notify_failures"`
	Duration       time.Duration `json:"duration_ns"`
}
