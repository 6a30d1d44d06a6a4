package steam

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPrice is returned for apps without a price_overview block, which
	// is how the store reports free or unreleased games.
	ErrNoPrice = errors.New("no price information")

	// ErrAppNotFound is returned when the store answers success=false.
	ErrAppNotFound = errors.New("app not found")

	// ErrQuotaExhausted is returned when the rolling request quota is spent.
	ErrQuotaExhausted = errors.New("steam request quota exhausted")
)

// FetchError describes a failed price lookup for one app. Callers treat it
// as transient and skip the app for the current cycle.
type FetchError struct {
	AppID string
	Op    string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching app %s: %s: %v", e.AppID, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func fetchErr(appID, op string, err error) *FetchError {
	return &FetchError{AppID: appID, Op: op, Err: err}
}
