package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/randalmurphal/resumekit/template"
)

// ManifestFile is the required name of a theme-set manifest.
const ManifestFile = "manifest.toml"

// Manifest describes a theme set on disk.
type Manifest struct {
	Name    string  `toml:"name"`
	Default string  `toml:"default"`
	Themes  []Entry `toml:"themes"`
}

// Entry is one theme in a manifest. Name overrides the frontmatter name,
// and Styles overrides the frontmatter styles reference.
type Entry struct {
	Name   string `toml:"name"`
	File   string `toml:"file"`
	Styles string `toml:"styles,omitempty"`
}

// LoadManifest reads and decodes a manifest.toml.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Themes) == 0 {
		return nil, errors.New("manifest lists no themes")
	}
	for i, e := range m.Themes {
		if e.File == "" {
			return nil, fmt.Errorf("manifest theme %d has no file", i)
		}
	}
	return &m, nil
}

// Set is a loaded theme set.
type Set struct {
	Name    string
	Default string
	Themes  []*Theme
}

// LoadDir loads the theme set described by dir's manifest.toml.
func LoadDir(dir string) (*Set, error) {
	m, err := LoadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}

	set := &Set{Name: m.Name, Default: m.Default}
	for _, entry := range m.Themes {
		th, err := ParseFile(filepath.Join(dir, entry.File))
		if err != nil {
			return nil, err
		}
		if entry.Name != "" {
			th.Name = entry.Name
		}
		if entry.Styles != "" {
			css, err := os.ReadFile(filepath.Join(dir, entry.Styles))
			if err != nil {
				return nil, fmt.Errorf("read styles for theme %s: %w", th.Name, err)
			}
			th.Styles = string(css)
		}
		set.Themes = append(set.Themes, th)
	}

	if set.Default != "" && set.Theme(set.Default) == nil {
		return nil, fmt.Errorf("default theme %q not in set", set.Default)
	}
	return set, nil
}

// Theme returns the named theme, or nil.
func (s *Set) Theme(name string) *Theme {
	for _, th := range s.Themes {
		if th.Name == name {
			return th
		}
	}
	return nil
}

// Register installs every theme in the set into ev under its name.
// Re-registering an updated set overwrites the previous entries.
func (s *Set) Register(ev *template.Evaluator) {
	for _, th := range s.Themes {
		ev.RegisterTemplate(th.Name, template.Template{
			Markup: th.Markup,
			Styles: th.Styles,
		})
	}
}
