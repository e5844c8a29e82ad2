package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// EffectType classifies what a consumable does when used.
type EffectType string

const (
	EffectHeal      EffectType = "heal"
	EffectKnowledge EffectType = "knowledge"
)

// ItemEffect is the payload of a consumable item.
type ItemEffect struct {
	Type EffectType `json:"type"`

	// Value is the heal amount for heal effects
	Value int `json:"value,omitempty"`

	// Text is the content revealed by knowledge effects (e.g., reading)
	Text string `json:"text,omitempty"`
}

// ItemStats are the bonuses an equipped item contributes.
type ItemStats struct {
	Attack  int `json:"attack,omitempty"`
	Defense int `json:"defense,omitempty"`
	MaxHp   int `json:"max_hp,omitempty"`
}

// Item is an immutable catalog entry. Items are fungible by id: the same
// id in a room set or inventory always refers to this definition.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Type is a loose category: key, weapon, shield, potion, food, scroll, ...
	Type string `json:"type,omitempty"`

	// Takeable defaults to true when absent
	Takeable *bool `json:"takeable,omitempty"`

	// Weight in kilograms, counted against the carry limit
	Weight int `json:"weight,omitempty"`

	Consumable bool        `json:"consumable,omitempty"`
	Effect     *ItemEffect `json:"effect,omitempty"`

	Equipable bool       `json:"equipable,omitempty"`
	Slot      Slot       `json:"slot,omitempty"`
	Stats     *ItemStats `json:"stats,omitempty"`
	TwoHanded bool       `json:"two_handed,omitempty"`

	// RespawnTime overrides the global default (duration string, e.g. "90s")
	RespawnTime string `json:"respawn_time,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Weight < 0 {
		el.Add(fmt.Errorf("item weight cannot be negative"))
	}

	if i.Effect != nil {
		switch i.Effect.Type {
		case EffectHeal:
			if i.Effect.Value <= 0 {
				el.Add(fmt.Errorf("heal effect value must be positive"))
			}
		case EffectKnowledge:
			if i.Effect.Text == "" {
				el.Add(fmt.Errorf("knowledge effect text is required"))
			}
		default:
			el.Add(fmt.Errorf("unknown effect type %q", i.Effect.Type))
		}
	}

	if i.Equipable && i.Slot == "" {
		el.Add(fmt.Errorf("equipable item requires a slot"))
	}
	if i.Slot != "" && !i.Slot.Valid() {
		el.Add(fmt.Errorf("unknown equipment slot %q", i.Slot))
	}

	if i.RespawnTime != "" {
		if _, err := time.ParseDuration(i.RespawnTime); err != nil {
			el.Add(fmt.Errorf("parsing respawn_time: %w", err))
		}
	}

	return el.Err()
}

// IsTakeable reports whether the item can be picked up.
func (i *Item) IsTakeable() bool {
	return i.Takeable == nil || *i.Takeable
}

// RespawnDelay returns the item's respawn delay, falling back to def when
// the catalog entry does not set one.
func (i *Item) RespawnDelay(def time.Duration) time.Duration {
	if i.RespawnTime == "" {
		return def
	}
	d, err := time.ParseDuration(i.RespawnTime)
	if err != nil {
		return def
	}
	return d
}
