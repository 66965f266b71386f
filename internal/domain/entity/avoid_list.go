package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AvoidList is the normalized form of a user's avoid preferences.
//
// Profiles arrive either as a flat list (["Dairy", "Pork"]) or as a structured object
// ({"foodTypes": [...], "allergens": [...]}). Both are decoded into this one shape so
// filtering never branches on the input form. A flat list lands in FoodTypes.
type AvoidList struct {
	FoodTypes []string `json:"foodTypes" yaml:"foodTypes"`
	Allergens []string `json:"allergens" yaml:"allergens"`
}

// NewAvoidList builds a normalized list from flat terms.
func NewAvoidList(terms ...string) AvoidList {
	return AvoidList{FoodTypes: cleanTerms(terms)}
}

// Terms returns the flattened, de-duplicated, trimmed avoid terms in input order.
func (a AvoidList) Terms() []string {
	seen := make(map[string]struct{}, len(a.FoodTypes)+len(a.Allergens))
	terms := make([]string, 0, len(a.FoodTypes)+len(a.Allergens))
	for _, group := range [][]string{a.FoodTypes, a.Allergens} {
		for _, term := range group {
			key := strings.ToLower(strings.TrimSpace(term))
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			terms = append(terms, strings.TrimSpace(term))
		}
	}

	return terms
}

// IsEmpty reports whether there is nothing to avoid.
func (a AvoidList) IsEmpty() bool {
	return len(a.Terms()) == 0
}

// UnmarshalJSON accepts both the array and the object form.
func (a *AvoidList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = AvoidList{}

		return nil
	}

	if trimmed[0] == '[' {
		var terms []string
		if err := json.Unmarshal(trimmed, &terms); err != nil {
			return errors.Wrap(err, "decode avoid list array")
		}
		*a = NewAvoidList(terms...)

		return nil
	}

	var structured struct {
		FoodTypes []string `json:"foodTypes"`
		Allergens []string `json:"allergens"`
	}
	if err := json.Unmarshal(trimmed, &structured); err != nil {
		return errors.Wrap(err, "decode avoid list object")
	}
	*a = AvoidList{
		FoodTypes: cleanTerms(structured.FoodTypes),
		Allergens: cleanTerms(structured.Allergens),
	}

	return nil
}

// UnmarshalYAML accepts both the sequence and the mapping form.
func (a *AvoidList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var terms []string
		if err := node.Decode(&terms); err != nil {
			return errors.Wrap(err, "decode avoid list sequence")
		}
		*a = NewAvoidList(terms...)

		return nil
	case yaml.MappingNode:
		var structured struct {
			FoodTypes []string `yaml:"foodTypes"`
			Allergens []string `yaml:"allergens"`
		}
		if err := node.Decode(&structured); err != nil {
			return errors.Wrap(err, "decode avoid list mapping")
		}
		*a = AvoidList{
			FoodTypes: cleanTerms(structured.FoodTypes),
			Allergens: cleanTerms(structured.Allergens),
		}

		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			*a = AvoidList{}

			return nil
		}
	}

	return errors.Errorf("avoid list must be a list or an object, got %q", node.Value)
}

func cleanTerms(terms []string) []string {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		if t := strings.TrimSpace(term); t != "" {
			cleaned = append(cleaned, t)
		}
	}

	return cleaned
}
