package catalogue

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogue is the read-only set of course content, grouped by category.
// It is safe for concurrent use once built.
type Catalogue struct {
	categories []Category
	records    []TopicRecord
	byID       map[TopicID]int
}

type fileDoc struct {
	Categories []fileCategory `yaml:"categories"`
}

type fileCategory struct {
	Name   string      `yaml:"name"`
	Icon   string      `yaml:"icon"`
	Topics []fileTopic `yaml:"topics"`
}

type fileTopic struct {
	Name       string   `yaml:"name"`
	Definition string   `yaml:"definition"`
	Example    string   `yaml:"example"`
	Question   string   `yaml:"question"`
	Options    []string `yaml:"options"`
	Answer     string   `yaml:"answer"`
	VisualDemo bool     `yaml:"visual_demo"`
}

// Parse decodes a YAML catalogue, checks it against the catalogue schema and
// validates its structure.
func Parse(data []byte) (*Catalogue, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	categories := make([]Category, 0, len(doc.Categories))
	for _, fc := range doc.Categories {
		cat := Category{Name: fc.Name, Icon: fc.Icon}
		for _, ft := range fc.Topics {
			cat.Topics = append(cat.Topics, TopicRecord{
				Category:      fc.Name,
				Topic:         ft.Name,
				Definition:    strings.TrimSpace(ft.Definition),
				Example:       strings.TrimRight(ft.Example, "\n"),
				Question:      ft.Question,
				Options:       ft.Options,
				CorrectAnswer: ft.Answer,
				HasVisualDemo: ft.VisualDemo,
			})
		}
		categories = append(categories, cat)
	}
	return New(categories)
}

// LoadFile reads and parses a YAML catalogue from disk.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// New builds a catalogue from categories in declaration order. Each record's
// Category field is set from its enclosing category.
func New(categories []Category) (*Catalogue, error) {
	c := &Catalogue{
		categories: make([]Category, 0, len(categories)),
		byID:       make(map[TopicID]int),
	}
	for _, cat := range categories {
		copied := Category{Name: cat.Name, Icon: cat.Icon, Topics: make([]TopicRecord, 0, len(cat.Topics))}
		for _, rec := range cat.Topics {
			rec.Category = cat.Name
			rec.Options = slices.Clone(rec.Options)
			copied.Topics = append(copied.Topics, rec)
		}
		c.categories = append(c.categories, copied)
	}

	if err := validateCategories(c.categories); err != nil {
		return nil, err
	}

	for _, cat := range c.categories {
		for _, rec := range cat.Topics {
			c.byID[rec.ID()] = len(c.records)
			c.records = append(c.records, rec)
		}
	}
	return c, nil
}

// Categories returns all categories in declaration order. The result is a
// deep copy.
func (c *Catalogue) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.clone()
	}
	return out
}

// Category returns the category with the given name.
func (c *Catalogue) Category(name string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat.clone(), true
		}
	}
	return Category{}, false
}

// FindCategory matches a category by name (case-insensitive) or by slug.
func (c *Catalogue) FindCategory(query string) (Category, bool) {
	slug := Slug(query)
	for _, cat := range c.categories {
		if strings.EqualFold(cat.Name, query) || (slug != "" && cat.Slug() == slug) {
			return cat.clone(), true
		}
	}
	return Category{}, false
}

// Topic returns a record by ID, or error if not found.
func (c *Catalogue) Topic(id TopicID) (TopicRecord, error) {
	i, ok := c.byID[id]
	if !ok {
		return TopicRecord{}, fmt.Errorf("topic not found: %q", id)
	}
	return c.records[i].Clone(), nil
}

// Contains reports whether id names a record in the catalogue.
func (c *Catalogue) Contains(id TopicID) bool {
	_, ok := c.byID[id]
	return ok
}

// Records returns every record flattened in declaration order.
func (c *Catalogue) Records() []TopicRecord {
	out := make([]TopicRecord, len(c.records))
	for i, rec := range c.records {
		out[i] = rec.Clone()
	}
	return out
}

// Len returns the number of records.
func (c *Catalogue) Len() int {
	return len(c.records)
}
