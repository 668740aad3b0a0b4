// Package catalog holds the canned phrases offered for each age group and
// row label of a plan form.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/width"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// File is the on-disk catalog format.
type File struct {
	Placeholders []string   `yaml:"placeholders"`
	AgeGroups    []AgeGroup `yaml:"age_groups"`
}

type AgeGroup struct {
	Name  string              `yaml:"name"`
	Items map[string][]string `yaml:"items"`
}

// Catalog is an immutable, indexed phrase catalog. It is safe for
// concurrent use.
type Catalog struct {
	placeholders []string
	ages         []string
	items        map[string]map[string][]string // normalized age -> normalized label -> phrases
	labels       map[string][]string            // normalized age -> labels as written
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(&f)
}

// New validates f and builds a Catalog from it.
func New(f *File) (*Catalog, error) {
	if errs := Validate(f); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}

	c := &Catalog{
		placeholders: append([]string(nil), f.Placeholders...),
		items:        make(map[string]map[string][]string, len(f.AgeGroups)),
		labels:       make(map[string][]string, len(f.AgeGroups)),
	}
	for _, g := range f.AgeGroups {
		age := Normalize(g.Name)
		c.ages = append(c.ages, g.Name)
		byLabel := make(map[string][]string, len(g.Items))
		labels := make([]string, 0, len(g.Items))
		for label, phrases := range g.Items {
			byLabel[Normalize(label)] = append([]string(nil), phrases...)
			labels = append(labels, label)
		}
		sort.Strings(labels)
		c.items[age] = byLabel
		c.labels[age] = labels
	}
	return c, nil
}

// Normalize folds full-width forms to their narrow equivalents and trims
// surrounding space, so "養護：生命" and "養護:生命" name the same item.
func Normalize(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}

// Lookup returns the phrases for an age group and row label.
func (c *Catalog) Lookup(age, label string) ([]string, bool) {
	byLabel, ok := c.items[Normalize(age)]
	if !ok {
		return nil, false
	}
	phrases, ok := byLabel[Normalize(label)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), phrases...), true
}

// Options returns the select options for a form field: the placeholders
// followed by any catalog phrases.
func (c *Catalog) Options(age, label string) []string {
	opts := append([]string(nil), c.placeholders...)
	phrases, _ := c.Lookup(age, label)
	return append(opts, phrases...)
}

// IsPlaceholder reports whether s is one of the non-content select options.
func (c *Catalog) IsPlaceholder(s string) bool {
	for _, p := range c.placeholders {
		if s == p {
			return true
		}
	}
	return false
}

// Placeholders returns the non-content select options.
func (c *Catalog) Placeholders() []string {
	return append([]string(nil), c.placeholders...)
}

// AgeGroups returns the age group names in file order.
func (c *Catalog) AgeGroups() []string {
	return append([]string(nil), c.ages...)
}

// Labels returns the row labels that have phrases for age, sorted.
func (c *Catalog) Labels(age string) []string {
	return append([]string(nil), c.labels[Normalize(age)]...)
}
