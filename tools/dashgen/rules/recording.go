package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "spt-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "spt-recording",
					Rules: []Rule{
						{
							Record: "spt:http_requests:rate5m",
							Expr:   `sum(rate(spt_http_requests_total[5m]))`,
						},
						{
							Record: "spt:http_errors:rate5m",
							Expr:   `sum(rate(spt_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "spt:steam_requests:rate5m",
							Expr:   `sum by (outcome) (rate(spt_steam_requests_total[5m]))`,
						},
						{
							Record: "spt:steam_errors:rate5m",
							Expr:   `sum(rate(spt_steam_requests_total{outcome="error"}[5m]))`,
						},
						{
							Record: "spt:price_changes:rate1h",
							Expr:   `sum by (direction) (rate(spt_price_changes_total[1h]))`,
						},
						{
							Record: "spt:notification_failures:rate5m",
							Expr:   `sum by (backend) (rate(spt_notification_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
