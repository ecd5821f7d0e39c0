package profile

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultName is the profile used when none is selected.
const DefaultName = "code"

//go:embed profiles/*.yaml
var defaultProfilesFS embed.FS

var (
	defaultOnce     sync.Once
	defaultRegistry *InMemoryRegistry
	defaultErr      error
)

// Load parses a profile definition from YAML bytes.
func Load(source string, data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", source, err)
	}
	if p.Values == nil {
		p.Values = Values{}
	}
	p.Source = source
	return &p, nil
}

// LoadDefaults loads the embedded profile set.
func LoadDefaults() ([]*Profile, error) {
	entries, err := defaultProfilesFS.ReadDir("profiles")
	if err != nil {
		return nil, fmt.Errorf("read embedded profiles: %w", err)
	}
	results := make([]*Profile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := defaultProfilesFS.ReadFile("profiles/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read embedded profile %s: %w", entry.Name(), err)
		}
		p, err := Load(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, nil
}

// DefaultRegistry returns the built-in profile table. It is built once per
// process and never mutated afterwards.
func DefaultRegistry() (Registry, error) {
	defaultOnce.Do(func() {
		profiles, err := LoadDefaults()
		if err != nil {
			defaultErr = err
			return
		}
		defaultRegistry, defaultErr = NewRegistry(profiles)
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultRegistry, nil
}
