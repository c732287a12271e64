package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Extension declares one extension channel: an integration the gateway
// exposes under an arbitrary key that this build has no dedicated
// presenter for. Extension channels render through the generic strategy.
type Extension struct {
	Key     string `yaml:"key"`
	Label   string `yaml:"label"`
	Enabled *bool  `yaml:"enabled"`
}

// IsEnabled reports the extension's enablement; unset means enabled.
func (e Extension) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

type extensionsFile struct {
	Channels []Extension `yaml:"channels"`
}

// LoadExtensions reads extension-channel definitions from a YAML file.
// A missing file means no extensions, not an error.
func LoadExtensions(path string) ([]Extension, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var f extensionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing extensions: %w", err)
	}

	exts := make([]Extension, 0, len(f.Channels))
	for _, ext := range f.Channels {
		if ext.Key == "" {
			continue
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

// MergeOrder appends extension channel keys missing from the canonical
// order, in declaration order. The gateway usually lists extensions in its
// own ordering hints; this covers gateways that do not.
func MergeOrder(canonical []string, exts []Extension) []string {
	seen := make(map[string]bool, len(canonical))
	for _, key := range canonical {
		seen[key] = true
	}
	out := append([]string(nil), canonical...)
	for _, ext := range exts {
		if !seen[ext.Key] {
			out = append(out, ext.Key)
			seen[ext.Key] = true
		}
	}
	return out
}

// ExtensionLabel returns the declared label for an extension key, "" when
// the key is not an extension or has no label.
func ExtensionLabel(exts []Extension, key string) string {
	for _, ext := range exts {
		if ext.Key == key {
			return ext.Label
		}
	}
	return ""
}
