package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// steam-price-tracker operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "spt-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "spt-alerts",
					Rules: []Rule{
						{
							Alert: "SptDown",
							Expr:  `absent(up{job="steam-price-tracker"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Steam Price Tracker is down",
								"description": "The steam-price-tracker job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "SptReadinessDown",
							Expr:  `spt_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Steam Price Tracker readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "SptHighErrorRate",
							Expr:  `spt:http_errors:rate5m / spt:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Steam Price Tracker",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "SptCheckStale",
							Expr:  `time() - spt_last_check_timestamp_seconds > 3 * 3600`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Price checks have stalled",
								"description": "No price check cycle has completed in the last 3 hours.",
							},
						},
						{
							Alert: "SptSteamErrors",
							Expr:  `spt:steam_errors:rate5m > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Steam appdetails requests are failing",
								"description": "Requests to the Steam store API have been erroring for more than 15 minutes.",
							},
						},
						{
							Alert: "SptSteamQuotaExhausted",
							Expr:  `increase(spt_steam_quota_hits_total[15m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Steam request quota exhausted",
								"description": "A check cycle ran out of Steam requests before finishing. Games were skipped until the window resets.",
							},
						},
						{
							Alert: "SptNotificationFailures",
							Expr:  `sum(spt:notification_failures:rate5m) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more price alerts failed to reach Apprise, Telegram or Discord.",
							},
						},
					},
				},
			},
		},
	}
}
