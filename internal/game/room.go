package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// DoorState is the runtime state of a door. A door's catalog definition
// only fixes the initial state; the live state lives in the world overlay.
type DoorState string

const (
	DoorOpen   DoorState = "open"
	DoorClosed DoorState = "closed"
	DoorLocked DoorState = "locked"
)

func (s DoorState) Valid() bool {
	switch s {
	case DoorOpen, DoorClosed, DoorLocked:
		return true
	}
	return false
}

// Italian returns the display name used in door messages.
func (s DoorState) Italian() string {
	switch s {
	case DoorOpen:
		return "aperta"
	case DoorClosed:
		return "chiusa"
	case DoorLocked:
		return "chiusa a chiave"
	}
	return string(s)
}

// DoorDef describes a door on one side of a passage. The same physical
// door is usually defined on both adjoining rooms; runtime state is
// mirrored regardless.
type DoorDef struct {
	// Name is the display name (e.g., "porta di quercia")
	Name string `json:"name,omitempty"`

	// InitialState seeds the runtime overlay on first read
	InitialState DoorState `json:"initial_state"`

	// KeyId is the item required to open the door when locked
	KeyId string `json:"key_id,omitempty"`

	OpenMessage  string `json:"open_message,omitempty"`
	CloseMessage string `json:"close_message,omitempty"`
}

// Interactable is a named object in a room that activates a trigger.
type Interactable struct {
	Description string `json:"description"`

	// TriggerId is the flag set when this object is activated
	TriggerId string `json:"trigger_id"`

	// Command restricts activation to a single verb (e.g., "tira").
	// Empty means any interact verb works.
	Command string `json:"command,omitempty"`
}

// HiddenExit is an exit that only appears once its trigger fires.
type HiddenExit struct {
	RoomId          string `json:"room_id"`
	RequiredTrigger string `json:"required_trigger"`
	RevealMessage   string `json:"reveal_message,omitempty"`
}

// Room is an immutable catalog location. Mutable facets (item set, door
// states, trigger flags) live in the world overlay, keyed by room id.
type Room struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	// Exits maps a canonical direction to a destination room id
	Exits map[string]string `json:"exits"`

	Doors         map[string]*DoorDef      `json:"doors,omitempty"`
	Interactables map[string]*Interactable `json:"interactables,omitempty"`
	HiddenExits   map[string]*HiddenExit   `json:"hidden_exits,omitempty"`

	// Items seeds the room's runtime item set on first access
	Items []string `json:"items,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Title == "" {
		el.Add(fmt.Errorf("room title is required"))
	}
	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	for dir, dest := range r.Exits {
		if !IsDirection(dir) {
			el.Add(fmt.Errorf("exit %q: unknown direction", dir))
		}
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: room id is required", dir))
		}
	}

	for dir, door := range r.Doors {
		if !IsDirection(dir) {
			el.Add(fmt.Errorf("door %q: unknown direction", dir))
		}
		if door == nil {
			el.Add(fmt.Errorf("door %s: definition is required", dir))
			continue
		}
		if !door.InitialState.Valid() {
			el.Add(fmt.Errorf("door %s: invalid initial state %q", dir, door.InitialState))
		}
	}

	for name, in := range r.Interactables {
		if in == nil || in.TriggerId == "" {
			el.Add(fmt.Errorf("interactable %q: trigger_id is required", name))
		}
	}

	for dir, hx := range r.HiddenExits {
		if !IsDirection(dir) {
			el.Add(fmt.Errorf("hidden exit %q: unknown direction", dir))
		}
		if hx == nil {
			el.Add(fmt.Errorf("hidden exit %s: definition is required", dir))
			continue
		}
		if hx.RoomId == "" {
			el.Add(fmt.Errorf("hidden exit %s: room id is required", dir))
		}
		if hx.RequiredTrigger == "" {
			el.Add(fmt.Errorf("hidden exit %s: required_trigger is required", dir))
		}
	}

	return el.Err()
}

// Exit returns the ordinary exit in the given direction, if any.
func (r *Room) Exit(dir Direction) (string, bool) {
	dest, ok := r.Exits[string(dir)]
	return dest, ok
}

// Door returns the door definition in the given direction, if any.
func (r *Room) Door(dir Direction) (*DoorDef, bool) {
	d, ok := r.Doors[string(dir)]
	return d, ok
}

// HiddenExit returns the hidden exit in the given direction, if any.
func (r *Room) HiddenExitAt(dir Direction) (*HiddenExit, bool) {
	hx, ok := r.HiddenExits[string(dir)]
	return hx, ok
}
