package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// Default returns a freshly parsed copy of the built-in catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(builtin))
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Load parses a YAML catalog document and validates it.
func Load(r io.Reader) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	var c Catalog
	if err := mapstructure.Decode(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.index()
	return &c, nil
}

// Validate checks struct constraints plus id uniqueness and category consistency.
func (c *Catalog) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	seenCategories := make(map[Kind]struct{}, len(c.Categories))
	seenSkills := make(map[string]struct{})
	for _, category := range c.Categories {
		if _, ok := seenCategories[category.ID]; ok {
			return fmt.Errorf("validate catalog: duplicate category %q", category.ID)
		}
		seenCategories[category.ID] = struct{}{}

		for _, skill := range category.Skills {
			if skill.Category != category.ID {
				return fmt.Errorf("validate catalog: skill %q has category %q but is listed under %q", skill.ID, skill.Category, category.ID)
			}
			if _, ok := seenSkills[skill.ID]; ok {
				return fmt.Errorf("validate catalog: duplicate skill %q", skill.ID)
			}
			seenSkills[skill.ID] = struct{}{}
		}
	}

	seenCareers := make(map[string]struct{}, len(c.Careers))
	for _, career := range c.Careers {
		id := strings.TrimSpace(career.ID)
		if _, ok := seenCareers[id]; ok {
			return fmt.Errorf("validate catalog: duplicate career %q", id)
		}
		seenCareers[id] = struct{}{}
	}

	return nil
}
