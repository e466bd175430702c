// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads engine configuration from YAML with sensible
// defaults for every field.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// NERConfig configures the optional model-backed entity detector.
type NERConfig struct {
	// Endpoint is the inference endpoint URL. Empty disables the model
	// pass; the pattern battery still runs.
	Endpoint string `yaml:"endpoint"`

	// TimeoutMs bounds each model call. The model contributes nothing on
	// timeout.
	TimeoutMs int `yaml:"timeout_ms"`
}

// Timeout returns the bounded call timeout.
func (n NERConfig) Timeout() time.Duration {
	if n.TimeoutMs <= 0 {
		return 2 * time.Second
	}
	return time.Duration(n.TimeoutMs) * time.Millisecond
}

// Config is the engine configuration.
type Config struct {
	// Detectors lists enabled sub-detectors. Empty or ["all"] enables the
	// full battery.
	Detectors []string `yaml:"detectors"`

	// Mode selects replacement style: "category" or "entity".
	Mode string `yaml:"mode"`

	// PreserveWidth pads entity-mode tags to the original span width.
	PreserveWidth bool `yaml:"preserve_width"`

	// Normalize is the text correction level: off, basic or aggressive.
	Normalize string `yaml:"normalize"`

	// NER configures the optional model-backed detector.
	NER NERConfig `yaml:"ner"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Detectors: []string{"all"},
		Mode:      "category",
		Normalize: "basic",
		NER:       NERConfig{TimeoutMs: 2000},
	}
}

// Load reads a YAML configuration file, filling unset fields from the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(cfg.Detectors) == 0 {
		cfg.Detectors = []string{"all"}
	}
	if cfg.Mode == "" {
		cfg.Mode = "category"
	}
	if cfg.Normalize == "" {
		cfg.Normalize = "basic"
	}
	return cfg, nil
}

// DetectorEnabled reports whether the named sub-detector is active.
func (c *Config) DetectorEnabled(name string) bool {
	for _, d := range c.Detectors {
		d = strings.TrimSpace(strings.ToLower(d))
		if d == "all" || d == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// Fingerprint returns a stable identifier of the detection-relevant
// configuration, used to key content caches.
func (c *Config) Fingerprint() string {
	detectors := make([]string, len(c.Detectors))
	copy(detectors, c.Detectors)
	sort.Strings(detectors)

	return fmt.Sprintf("detectors=%s;mode=%s;preserve=%t;normalize=%s;ner=%s",
		strings.Join(detectors, ","), c.Mode, c.PreserveWidth, c.Normalize, c.NER.Endpoint)
}
