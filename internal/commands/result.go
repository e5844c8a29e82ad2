package commands

import (
	"github.com/roccanera/mud/internal/combat"
	"github.com/roccanera/mud/internal/game"
)

// ResultType tags a Result so the orchestrator knows what mutation and
// broadcast follow.
type ResultType string

const (
	ResultError       ResultType = "error"
	ResultMove        ResultType = "move"
	ResultLook        ResultType = "look"
	ResultSay         ResultType = "say"
	ResultInfo        ResultType = "info"
	ResultInteract    ResultType = "interact"
	ResultDoor        ResultType = "door"
	ResultPickup      ResultType = "pickup"
	ResultDrop        ResultType = "drop"
	ResultEquip       ResultType = "equip"
	ResultUnequip     ResultType = "unequip"
	ResultConsume     ResultType = "consume_item"
	ResultCombatStart ResultType = "combat_start"
	ResultCombatQueue ResultType = "combat_queue_action"
	ResultShowStats   ResultType = "show_stats"
	ResultHelp        ResultType = "help"
	ResultDebugKill   ResultType = "debug_kill"
)

// Result is what a handler evaluates to. Handlers never touch the
// network or mutate the world; the orchestrator switches on Type and
// applies whatever the tag implies, using only the fields that tag
// carries.
type Result struct {
	Type ResultType

	// Message goes to the acting player, Broadcast to everyone else
	// in the room.
	Message   string
	Broadcast string

	RoomId    string
	Direction game.Direction

	DoorState game.DoorState

	ItemId string
	Slot   game.Slot

	TriggerId string
	// TriggerMessage is broadcast on first activation only
	TriggerMessage string

	TargetId     string
	CombatAction combat.PrimaryAction
	BonusItemId  string
}

// Errorf builds an error result for player mistakes. These are normal
// gameplay, not failures worth logging.
func Errorf(msg string) Result {
	return Result{Type: ResultError, Message: msg}
}
