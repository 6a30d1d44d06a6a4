package engine

import (
	"slices"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// Diff compares a fresh snapshot against the game's stored state.
//
// The first observation of a game (no stored price) only sets the baseline
// and never produces an event. Afterwards an event is produced iff the final
// price changed by any amount in minor units. Currency and discount changes
// on their own are not events; the discount rides along in Old and New.
func Diff(game *domain.TrackedGame, snap *domain.PriceSnapshot) *domain.ChangeEvent {
	if game.LastPrice == nil || snap.Price.Final == game.LastPrice.Final {
		return nil
	}

	dir := domain.DirectionIncrease
	if snap.Price.Final < game.LastPrice.Final {
		dir = domain.DirectionDecrease
	}

	name := snap.Name
	if name == "" {
		name = game.Name
	}

	return &domain.ChangeEvent{
		AppID:      game.AppID,
		Name:       name,
		Old:        *game.LastPrice,
		New:        snap.Price,
		Direction:  dir,
		NotifyURLs: slices.Clone(game.NotifyURLs),
		DetectedAt: snap.FetchedAt,
	}
}
