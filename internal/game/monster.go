package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// Monster is an immutable catalog entry; current room and HP are tracked
// in the world overlay.
type Monster struct {
	Name        string `json:"name"`
	RoomId      string `json:"room_id"`
	Description string `json:"description"`

	// ShortDescription is the brief line shown in room listings
	ShortDescription string `json:"short_description,omitempty"`

	MaxHp          int `json:"max_hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	ExperienceDrop int `json:"experience_drop"`

	// Inventory is dropped into the room when the monster is defeated
	Inventory []string `json:"inventory,omitempty"`

	// Type is a loose category (undead, beast, demon, ...)
	Type string `json:"type,omitempty"`

	Level      int  `json:"level,omitempty"`
	Aggressive bool `json:"aggressive,omitempty"`

	// RespawnTime overrides the global default (duration string, e.g. "3m")
	RespawnTime string `json:"respawn_time,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (m *Monster) Validate() error {
	el := errors.NewErrorList()

	if m.Name == "" {
		el.Add(fmt.Errorf("monster name is required"))
	}
	if m.RoomId == "" {
		el.Add(fmt.Errorf("monster room_id is required"))
	}
	if m.MaxHp <= 0 {
		el.Add(fmt.Errorf("monster max_hp must be positive"))
	}
	if m.Attack < 0 {
		el.Add(fmt.Errorf("monster attack cannot be negative"))
	}
	if m.Defense < 0 {
		el.Add(fmt.Errorf("monster defense cannot be negative"))
	}
	if m.ExperienceDrop < 0 {
		el.Add(fmt.Errorf("monster experience_drop cannot be negative"))
	}

	if m.RespawnTime != "" {
		if _, err := time.ParseDuration(m.RespawnTime); err != nil {
			el.Add(fmt.Errorf("parsing respawn_time: %w", err))
		}
	}

	return el.Err()
}

// RespawnDelay returns the monster's respawn delay, falling back to def
// when the catalog entry does not set one.
func (m *Monster) RespawnDelay(def time.Duration) time.Duration {
	if m.RespawnTime == "" {
		return def
	}
	d, err := time.ParseDuration(m.RespawnTime)
	if err != nil {
		return def
	}
	return d
}
