// Package catalog loads recipe and food seed files. A seed is YAML (or JSON, which the YAML
// decoder also reads) of the shape {recipes: [...], foods: [...]}.
package catalog

import (
	"io"
	"os"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/validation"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates the seed at path.
func LoadFile(path string) (*entity.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog seed %s", path)
	}
	defer f.Close()

	catalog, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load catalog seed %s", path)
	}

	return catalog, nil
}

// Decode reads one seed document. Unknown keys are rejected so typos in a seed do not silently
// drop nutrition data. An empty document is an empty catalog.
func Decode(r io.Reader) (*entity.Catalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var catalog entity.Catalog
	if err := decoder.Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode catalog seed")
	}

	if err := validation.ValidateCatalog(&catalog); err != nil {
		return nil, err
	}

	return &catalog, nil
}
