package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// NewPriceChangeMessage renders a ChangeEvent into a Message with both an
// HTML body (Telegram) and a plain-text body (Apprise).
func NewPriceChangeMessage(ev *domain.ChangeEvent) *Message {
	name := ev.Name
	if name == "" {
		name = "App " + ev.AppID
	}
	currency := ev.New.Currency
	if currency == "" {
		currency = ev.Old.Currency
	}

	headline := "PRICE INCREASE"
	if ev.Direction == domain.DirectionDecrease {
		headline = "PRICE DROP"
	}

	oldAmount := FormatAmount(currency, ev.Old.Final)
	newAmount := FormatAmount(currency, ev.New.Final)
	change := FormatAmount(currency, ev.Delta())
	var discount string
	if ev.DiscountChanged() {
		discount = discountLine(ev.Old.DiscountPercent, ev.New.DiscountPercent)
	}

	var h, p strings.Builder
	fmt.Fprintf(&h, "<b>%s</b>\n", html.EscapeString(name))
	fmt.Fprintf(&p, "%s\n", name)
	for _, b := range []*strings.Builder{&h, &p} {
		fmt.Fprintf(b, "Steam App ID: %s\n\n", ev.AppID)
		fmt.Fprintf(b, "%s\nOld: %s\nNew: %s\nChange: %s\n", headline, oldAmount, newAmount, change)
		if discount != "" {
			fmt.Fprintf(b, "\n%s\n", discount)
		}
	}
	fmt.Fprintf(&h, "\n<a href='%s'>View on Steam</a>", ev.StoreURL())
	fmt.Fprintf(&p, "\nView on Steam: %s", ev.StoreURL())

	fields := []Field{
		{Name: "Old", Value: oldAmount},
		{Name: "New", Value: newAmount},
		{Name: "Change", Value: change},
	}
	if ev.New.DiscountPercent > 0 {
		fields = append(fields, Field{
			Name:  "Discount",
			Value: fmt.Sprintf("%d%% OFF", ev.New.DiscountPercent),
		})
	}

	return &Message{
		AppID:      ev.AppID,
		Title:      "Steam Price Alert: " + name,
		HTML:       h.String(),
		Text:       p.String(),
		URL:        ev.StoreURL(),
		Direction:  ev.Direction,
		Fields:     fields,
		NotifyURLs: ev.NotifyURLs,
	}
}

// NewTestMessage builds the sample notification used to verify delivery.
// notifyURLs are extra Apprise URLs to include, usually a game's own.
func NewTestMessage(notifyURLs []string) *Message {
	const body = "This is a test notification.\nYour notification endpoints are configured correctly."
	return &Message{
		Title:      "Steam Price Tracker: Test Notification",
		HTML:       "<b>Steam Price Tracker</b>\n\n" + html.EscapeString(body),
		Text:       body,
		Fields:     []Field{{Name: "Status", Value: "OK"}},
		NotifyURLs: notifyURLs,
	}
}

// FormatAmount renders minor units as "USD 9.99".
func FormatAmount(currency string, minor int64) string {
	amount := decimal.New(minor, -2).StringFixed(2)
	if currency == "" {
		return amount
	}
	return currency + " " + amount
}

func discountLine(was, now int) string {
	switch {
	case now > 0 && was == 0:
		return fmt.Sprintf("NEW DISCOUNT: %d%% OFF!", now)
	case now > was:
		return fmt.Sprintf("BIGGER DISCOUNT: %d%% OFF (was %d%%)", now, was)
	case now == 0:
		return fmt.Sprintf("Discount ended (was %d%%)", was)
	default:
		return fmt.Sprintf("Discount: %d%% OFF", now)
	}
}
