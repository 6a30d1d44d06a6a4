package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/steam-price-tracker/internal/notify"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printGameTable(w io.Writer, games []domain.TrackedGame) error {
	tw := newTabWriter(w)
	tw.writef("APP ID\tNAME\tPRICE\tDISCOUNT\tENABLED\tLAST CHECKED\n")
	for i := range games {
		g := &games[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\n",
			g.AppID,
			truncate(g.DisplayName(), 40),
			formatPrice(g.LastPrice),
			formatDiscount(g.LastPrice),
			g.Enabled,
			formatTime(g.LastCheckedAt),
		)
	}
	return tw.finish()
}

func printGameDetail(w io.Writer, g *domain.TrackedGame) error {
	tw := newTabWriter(w)
	tw.writef("App ID:\t%s\n", g.AppID)
	tw.writef("Name:\t%s\n", g.DisplayName())
	tw.writef("Price:\t%s\n", formatPrice(g.LastPrice))
	if g.LastPrice != nil && g.LastPrice.Discounted() {
		tw.writef("Regular:\t%s\n", notify.FormatAmount(g.LastPrice.Currency, g.LastPrice.Initial))
		tw.writef("Discount:\t%s\n", formatDiscount(g.LastPrice))
	}
	tw.writef("Enabled:\t%v\n", g.Enabled)
	tw.writef("Last Checked:\t%s\n", formatTime(g.LastCheckedAt))
	for i, u := range g.NotifyURLs {
		label := ""
		if i == 0 {
			label = "Notify URLs:"
		}
		tw.writef("%s\t%d. %s\n", label, i+1, u)
	}
	tw.writef("Store:\t%s\n", g.StoreURL())
	return tw.finish()
}

func printCheckSummary(w io.Writer, s *domain.CheckSummary) error {
	tw := newTabWriter(w)
	tw.writef("Checked:\t%d\n", s.Checked)
	tw.writef("Changed:\t%d\n", s.Changed)
	tw.writef("Baselined:\t%d\n", s.Baselined)
	tw.writef("Fetch Failures:\t%d\n", s.FetchFailures)
	tw.writef("Notify Failures:\t%d\n", s.NotifyFailures)
	tw.writef("Duration:\t%s\n", s.Duration.Round(time.Millisecond))
	return tw.finish()
}

func formatPrice(p *domain.Price) string {
	if p == nil {
		return "-"
	}
	return notify.FormatAmount(p.Currency, p.Final)
}

func formatDiscount(p *domain.Price) string {
	if p == nil || !p.Discounted() {
		return "-"
	}
	return fmt.Sprintf("%d%%", p.DiscountPercent)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format(timeLayout)
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
