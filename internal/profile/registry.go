package profile

import (
	"fmt"
	"sort"
	"strings"
)

// Profile is a named built-in default configuration bundle.
type Profile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Values      Values `yaml:"values"`
	Source      string `yaml:"-"`
}

// Registry provides read-only access to profiles.
type Registry interface {
	Get(name string) (*Profile, error)
	Names() []string
	List() []*Profile
}

// InMemoryRegistry stores profiles by name. It is never mutated after
// construction and hands out copies, so it is safe to share.
type InMemoryRegistry struct {
	profiles map[string]*Profile
}

// NewRegistry builds a registry from profiles.
func NewRegistry(profiles []*Profile) (*InMemoryRegistry, error) {
	reg := &InMemoryRegistry{profiles: make(map[string]*Profile)}
	for _, p := range profiles {
		if p == nil {
			continue
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("profile missing name (source %s)", p.Source)
		}
		if _, ok := reg.profiles[name]; ok {
			return nil, fmt.Errorf("duplicate profile name: %s", name)
		}
		stored := p.copy()
		stored.Name = name
		reg.profiles[name] = stored
	}
	return reg, nil
}

// Get returns a copy of the named profile.
func (r *InMemoryRegistry) Get(name string) (*Profile, error) {
	if r == nil {
		return nil, fmt.Errorf("profile registry not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	p, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (choose from %s)", name, strings.Join(r.Names(), ", "))
	}
	return p.copy(), nil
}

// Names returns profile names sorted alphabetically.
func (r *InMemoryRegistry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns copies of all profiles sorted by name.
func (r *InMemoryRegistry) List() []*Profile {
	if r == nil {
		return nil
	}
	names := r.Names()
	result := make([]*Profile, 0, len(names))
	for _, name := range names {
		result = append(result, r.profiles[name].copy())
	}
	return result
}

// Resolve starts from the named profile and applies override on top of it
// with per-key replacement.
func Resolve(reg Registry, name string, override Values) (Values, error) {
	p, err := reg.Get(name)
	if err != nil {
		return nil, err
	}
	return Merge(p.Values, override), nil
}

func (p *Profile) copy() *Profile {
	out := *p
	out.Values = p.Values.Clone()
	return &out
}
