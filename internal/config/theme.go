package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// FallbackTheme is used for pages without a theme of their own.
const FallbackTheme = "hitori"

// Theme is a named look for the particle field.
type Theme struct {
	Name  string   `yaml:"name"`
	Field Override `yaml:"field"`
}

// Themes holds the named themes and the page that each one is shown on.
type Themes struct {
	Themes map[string]Theme  `yaml:"themes"`
	Pages  map[string]string `yaml:"pages"`
}

func characterTheme(name string, c RGB, opacity float64, count int) Theme {
	return Theme{
		Name: name,
		Field: Override{
			Color:         Color(c),
			Opacity:       Float(opacity),
			ParticleCount: Int(count),
		},
	}
}

// DefaultThemes is the built-in theme table.
func DefaultThemes() Themes {
	return Themes{
		Themes: map[string]Theme{
			"hitori": characterTheme("后藤一里", RGB{R: 255, G: 182, B: 193}, 0.6, 88),
			"nijika": characterTheme("伊地知虹夏", RGB{R: 255, G: 250, B: 205}, 0.7, 92),
			"ryo":    characterTheme("山田凉", RGB{R: 173, G: 216, B: 230}, 0.5, 85),
			"kita":   characterTheme("喜多郁代", RGB{R: 255, G: 107, B: 107}, 0.65, 95),
			"band":   characterTheme("乐队主题", RGB{R: 147, G: 112, B: 219}, 0.55, 90),
			"music":  characterTheme("音乐主题", RGB{R: 102, G: 205, B: 170}, 0.6, 87),
		},
		Pages: map[string]string{
			"index.html":      "hitori",
			"about.html":      "nijika",
			"characters.html": "ryo",
			"music.html":      "kita",
			"production.html": "band",
			"gallery.html":    "music",
		},
	}
}

// ForPage returns the key and theme shown on page. Pages that are unmapped,
// or mapped to a missing theme, get FallbackTheme.
func (t Themes) ForPage(page string) (string, Theme) {
	if key, ok := t.Pages[page]; ok {
		if th, ok := t.Themes[key]; ok {
			return key, th
		}
	}
	return FallbackTheme, t.Themes[FallbackTheme]
}

// AddTheme registers or replaces a named theme.
func (t Themes) AddTheme(key string, th Theme) {
	t.Themes[key] = th
}

// SetPageTheme maps page to the theme key.
func (t Themes) SetPageTheme(page, key string) {
	t.Pages[page] = key
}

// PageNames returns the mapped pages in sorted order.
func (t Themes) PageNames() []string {
	pages := make([]string, 0, len(t.Pages))
	for p := range t.Pages {
		pages = append(pages, p)
	}
	slices.Sort(pages)
	return pages
}

// NextPage returns the page after current, wrapping around.
func (t Themes) NextPage(current string) string {
	pages := t.PageNames()
	if len(pages) == 0 {
		return current
	}
	i := slices.Index(pages, current)
	return pages[(i+1)%len(pages)]
}

// LoadThemes reads a YAML theme table from path and layers it over the
// built-in one.
func LoadThemes(path string) (Themes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Themes{}, fmt.Errorf("read themes: %w", err)
	}
	return ParseThemes(data)
}

// ParseThemes decodes a YAML theme table and layers it over the built-in
// one. Themes present in both are merged field by field; page mappings in
// the file replace the built-in ones.
func ParseThemes(data []byte) (Themes, error) {
	var file Themes
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Themes{}, fmt.Errorf("decode themes: %w", err)
	}

	themes := DefaultThemes()
	for key, th := range file.Themes {
		if err := Default().Apply(th.Field).Validate(); err != nil {
			return Themes{}, fmt.Errorf("theme %q: %w", key, err)
		}
		base, ok := themes.Themes[key]
		if !ok {
			themes.AddTheme(key, th)
			continue
		}
		if th.Name != "" {
			base.Name = th.Name
		}
		base.Field = base.Field.Merge(th.Field)
		themes.AddTheme(key, base)
	}
	for page, key := range file.Pages {
		themes.SetPageTheme(page, key)
	}
	return themes, nil
}
