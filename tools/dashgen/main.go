// Command dashgen generates the Grafana dashboard and Prometheus rule files
// for steam-price-tracker under deploy/.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/steam-price-tracker/tools/dashgen/dashboards"
	"github.com/donaldgifford/steam-price-tracker/tools/dashgen/rules"
	"github.com/donaldgifford/steam-price-tracker/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

// artifact is one generated file relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	artifacts, res, err := build(cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !res.Ok() {
		return fmt.Errorf("validation failed:\n  %s", strings.Join(res.Errors, "\n  "))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// build renders every enabled artifact and validates it against
// KnownMetrics.
func build(cfg Config) ([]artifact, validate.Result, error) {
	var (
		artifacts []artifact
		res       validate.Result
	)

	if cfg.RulesEnabled {
		recording := rules.RecordingRules()
		alerts := rules.AlertRules()

		ruleRes := validate.Rules(recording, KnownMetrics)
		res.Errors = append(res.Errors, ruleRes.Errors...)
		res.Warnings = append(res.Warnings, ruleRes.Warnings...)
		ruleRes = validate.Rules(alerts, KnownMetrics)
		res.Errors = append(res.Errors, ruleRes.Errors...)
		res.Warnings = append(res.Warnings, ruleRes.Warnings...)

		for _, pr := range []rules.PrometheusRule{recording, alerts} {
			data, err := renderRules(pr)
			if err != nil {
				return nil, res, err
			}
			artifacts = append(artifacts, artifact{
				path: filepath.Join("prometheus", pr.Metadata.Name+".yaml"),
				data: data,
			})
		}
	}

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, res, fmt.Errorf("building overview dashboard: %w", err)
		}

		dashRes := validate.Dashboard(dash, KnownMetrics)
		res.Errors = append(res.Errors, dashRes.Errors...)
		res.Warnings = append(res.Warnings, dashRes.Warnings...)

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, res, fmt.Errorf("marshaling dashboard: %w", err)
		}
		artifacts = append(artifacts, artifact{
			path: filepath.Join("grafana", "data", "spt-overview.json"),
			data: append(data, '\n'),
		})
	}

	if len(artifacts) == 0 {
		return nil, res, errors.New("nothing to generate")
	}
	return artifacts, res, nil
}

func renderRules(pr rules.PrometheusRule) ([]byte, error) {
	data, err := yaml.Marshal(pr)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", pr.Metadata.Name, err)
	}
	return append([]byte(generatedHeader), data...), nil
}
