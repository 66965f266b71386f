package entity

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Slot names a place in the day's meal structure: a main meal type or a snack position.
type Slot string

// SlotFor returns the slot key for a meal type and optional snack position.
func SlotFor(mealType MealType, position SnackPosition) Slot {
	if position != "" {
		return Slot(position)
	}

	return Slot(mealType)
}

// PortionSizes maps a slot to its fraction of the day's calories.
// Keys are always canonical; see CanonicalSlot.
type PortionSizes map[Slot]float64

// CanonicalSlot resolves a raw key ("breakfast", "after dinner") to its canonical slot.
func CanonicalSlot(raw string) (Slot, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, mt := range MainMealTypes {
		if strings.EqualFold(trimmed, string(mt)) {
			return Slot(mt), true
		}
	}
	if pos, ok := ParseSnackPosition(trimmed); ok {
		return Slot(pos), true
	}

	return "", false
}

// Get returns the fraction for slot and whether it was configured.
func (p PortionSizes) Get(slot Slot) (float64, bool) {
	if p == nil {
		return 0, false
	}
	v, ok := p[slot]

	return v, ok
}

// Total sums every configured fraction.
func (p PortionSizes) Total() float64 {
	var total float64
	for _, v := range p {
		total += v
	}

	return total
}

// UnmarshalJSON canonicalizes keys from any casing. Unknown keys are rejected.
func (p *PortionSizes) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode portion sizes")
	}

	return p.fromRaw(raw)
}

// UnmarshalYAML canonicalizes keys from any casing. Unknown keys are rejected.
func (p *PortionSizes) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]float64
	if err := node.Decode(&raw); err != nil {
		return errors.Wrap(err, "decode portion sizes")
	}

	return p.fromRaw(raw)
}

func (p *PortionSizes) fromRaw(raw map[string]float64) error {
	if raw == nil {
		*p = nil

		return nil
	}

	sizes := make(PortionSizes, len(raw))
	for key, value := range raw {
		slot, ok := CanonicalSlot(key)
		if !ok {
			return errors.Errorf("unknown portion size slot %q", key)
		}
		// The canonical spelling wins over a lowercase duplicate.
		if _, exists := sizes[slot]; exists && string(slot) != key {
			continue
		}
		sizes[slot] = value
	}
	*p = sizes

	return nil
}
