package pack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipepacks/internal/domain"
)

// file is the on-disk layout:
//
//	packs:
//	  - key: starter
//	    title: THE STARTER PACK
//	    recipes: [chocolate-chip-protein-cookies]
type file struct {
	Packs []entry `yaml:"packs"`
}

type entry struct {
	Key         string   `yaml:"key"`
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Description string   `yaml:"description"`
	Recipes     []string `yaml:"recipes"`
}

// Load reads pack definitions from a YAML file and validates them.
func Load(path string) ([]domain.Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packs: %w", err)
	}
	packs, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return packs, nil
}

// Decode parses and validates pack definitions. Unknown fields are
// rejected so typos do not silently drop data.
func Decode(r io.Reader) ([]domain.Pack, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding packs: %w", err)
	}

	out := make([]domain.Pack, 0, len(f.Packs))
	for _, e := range f.Packs {
		out = append(out, domain.Pack{
			Key:         e.Key,
			Title:       e.Title,
			Subtitle:    e.Subtitle,
			Description: e.Description,
			Recipes:     e.Recipes,
		})
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}
