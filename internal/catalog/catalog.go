package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one placeable object type.
type Entry struct {
	Name  string     `yaml:"name"`
	Mesh  string     `yaml:"mesh"`
	Color string     `yaml:"color"`
	Scale [3]float32 `yaml:"scale"`
}

// Catalog is the ordered list of object types the Objects tab offers.
type Catalog struct {
	Entries []Entry `yaml:"objects"`
}

var (
	ErrEmptyName = errors.New("catalog entry has no name")
	ErrNoEntries = errors.New("catalog has no objects")
)

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Entries) == 0 {
		return nil, ErrNoEntries
	}
	seen := make(map[string]bool, len(c.Entries))
	for i := range c.Entries {
		e := &c.Entries[i]
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate catalog entry %q", e.Name)
		}
		seen[e.Name] = true
		if e.Mesh == "" {
			e.Mesh = "cube"
		}
		if e.Color == "" {
			e.Color = "Gray"
		}
		if e.Scale == ([3]float32{}) {
			e.Scale = [3]float32{1, 1, 1}
		}
	}
	return &c, nil
}

// Names returns the display names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		names[i] = e.Name
	}
	return names
}

// At returns the entry at index i, if any.
func (c *Catalog) At(i int) (Entry, bool) {
	if c == nil || i < 0 || i >= len(c.Entries) {
		return Entry{}, false
	}
	return c.Entries[i], true
}
