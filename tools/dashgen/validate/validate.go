// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the tracker does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/steam-price-tracker/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings are
// reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// histogramSuffixes are series Prometheus derives from a histogram name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses a single PromQL expression and checks every selected metric
// against known.
func Expr(expr string, known map[string]bool) Result {
	var res Result

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
		return res
	}

	var names []string
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})

	if len(names) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%q selects no metrics", expr))
	}
	for _, name := range names {
		if !isKnown(name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%q references unknown metric %s", expr, name))
		}
	}
	return res
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every query expression in a built dashboard. The
// dashboard is inspected through its JSON form so any panel type carrying an
// "expr" field is covered.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	exprs := collectExprs(tree, nil)
	if len(exprs) == 0 {
		res.Warnings = append(res.Warnings, "dashboard contains no queries")
	}
	for _, e := range exprs {
		res.merge(Expr(e, known))
	}
	return res
}

func collectExprs(node any, acc []string) []string {
	switch v := node.(type) {
	case map[string]any:
		if e, ok := v["expr"].(string); ok && e != "" {
			acc = append(acc, e)
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if k != "expr" {
				acc = collectExprs(v[k], acc)
			}
		}
	case []any:
		for _, item := range v {
			acc = collectExprs(item, acc)
		}
	}
	return acc
}

// Rules validates rule expressions and checks that every rule is either a
// recording or an alerting rule with a severity label.
func Rules(pr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range pr.Spec.Groups {
		for _, r := range g.Rules {
			id := r.Record
			if id == "" {
				id = r.Alert
			}

			switch {
			case r.Record == "" && r.Alert == "":
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: rule has neither record nor alert", g.Name))
				continue
			case r.Record != "" && r.Alert != "":
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: rule %s sets both record and alert", g.Name, id))
			case r.Alert != "" && r.Labels["severity"] == "":
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: alert %s has no severity", g.Name, id))
			}

			sub := Expr(r.Expr, known)
			for _, e := range sub.Errors {
				res.Errors = append(res.Errors, fmt.Sprintf("%s: %s", id, e))
			}
			res.Warnings = append(res.Warnings, sub.Warnings...)
		}
	}
	return res
}
