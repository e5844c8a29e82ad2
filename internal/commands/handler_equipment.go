package commands

import (
	"fmt"
	"strings"

	"github.com/roccanera/mud/internal/game"
)

func equipHandler() *Handler {
	return &Handler{
		Name:        "indossa",
		Aliases:     []string{"equip", "equipaggia", "impugna", "wear", "wield"},
		RequiresArg: true,
		Description: "Indossa un oggetto dal tuo inventario",
		Usage:       "indossa <oggetto>",
		Execute: func(ctx *Context, arg string) Result {
			itemId, item := ctx.findInventoryItemLoose(arg, "")
			if itemId == "" {
				return Errorf(fmt.Sprintf("Non hai %q nell'inventario.", arg))
			}

			check := game.CanEquipItem(item, "")
			if !check.CanEquip {
				return Errorf(check.Reason)
			}

			return Result{
				Type:    ResultEquip,
				ItemId:  itemId,
				Slot:    check.Slot,
				Message: fmt.Sprintf("Indossi %s.", item.Name),
			}
		},
	}
}

// unequipHandler accepts either an Italian slot name or the name of an
// equipped item.
func unequipHandler() *Handler {
	return &Handler{
		Name:        "rimuovi",
		Aliases:     []string{"unequip", "remove", "togli"},
		RequiresArg: true,
		Description: "Rimuovi un equipaggiamento",
		Usage:       "rimuovi <slot o nome oggetto>",
		Execute: func(ctx *Context, arg string) Result {
			input := strings.ToLower(arg)

			if slot, ok := matchSlotName(input); ok {
				if ctx.Equipment[slot] == "" {
					return Errorf(fmt.Sprintf("Non hai niente in %s.", slot.Italian()))
				}
				return Result{
					Type:    ResultUnequip,
					Slot:    slot,
					Message: fmt.Sprintf("Rimuovi quello che indossi in %s.", slot.Italian()),
				}
			}

			for _, slot := range game.EquipmentSlots {
				itemId := ctx.Equipment[slot]
				if itemId == "" {
					continue
				}
				item := ctx.Catalog().Item(itemId)
				if item != nil && strings.Contains(strings.ToLower(item.Name), input) {
					return Result{
						Type:    ResultUnequip,
						Slot:    slot,
						ItemId:  itemId,
						Message: fmt.Sprintf("Rimuovi %s.", item.Name),
					}
				}
			}

			return Errorf(fmt.Sprintf("Non hai %q equipaggiato o non è uno slot valido.", arg))
		},
	}
}

// matchSlotName maps spoken slot names to slots, including the loose
// forms players actually type.
func matchSlotName(input string) (game.Slot, bool) {
	if slot, ok := game.ParseSlot(input); ok {
		return slot, true
	}

	loose := map[string]game.Slot{
		"destra":   game.SlotRightHand,
		"sinistra": game.SlotLeftHand,
		"anello":   game.SlotRing1,
	}
	slot, ok := loose[input]
	return slot, ok
}
