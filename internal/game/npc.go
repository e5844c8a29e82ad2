package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// NPC is an immutable catalog entry. NPCs never fight; only their current
// room is tracked at runtime.
type NPC struct {
	Name        string `json:"name"`
	RoomId      string `json:"room_id"`
	Description string `json:"description"`

	// ShortDescription is the brief line shown in room listings
	ShortDescription string `json:"short_description,omitempty"`

	// Dialogues are the responses to "parla"; one is picked at random
	Dialogues []string `json:"dialogues"`

	// Type is a loose category (merchant, guard, ...)
	Type string `json:"type,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (n *NPC) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("npc name is required"))
	}
	if n.RoomId == "" {
		el.Add(fmt.Errorf("npc room_id is required"))
	}
	if len(n.Dialogues) == 0 {
		el.Add(fmt.Errorf("npc requires at least one dialogue"))
	}

	return el.Err()
}
