package commands

import (
	"fmt"

	"github.com/roccanera/mud/internal/game"
)

func pickupHandler() *Handler {
	return &Handler{
		Name:        "prendi",
		Aliases:     []string{"raccogli", "take", "get"},
		RequiresArg: true,
		Description: "Raccogli un oggetto dalla stanza",
		Usage:       "prendi <oggetto>",
		Execute: func(ctx *Context, arg string) Result {
			itemId, item := ctx.findRoomItem(arg)
			if itemId == "" {
				return Errorf(fmt.Sprintf("Non riesci a trovare %q qui.", arg))
			}

			if !item.IsTakeable() {
				return Errorf(fmt.Sprintf("Non puoi prendere %s.", item.Name))
			}

			if !game.CanCarryItem(ctx.Inventory, itemId, ctx.MaxWeight, ctx.Catalog().Item) {
				return Errorf(fmt.Sprintf("%s è troppo pesante: non puoi trasportare più di %d kg.", item.Name, ctx.MaxWeight))
			}

			return Result{
				Type:      ResultPickup,
				ItemId:    itemId,
				Message:   fmt.Sprintf("Prendi %s.", item.Name),
				Broadcast: fmt.Sprintf("%s raccoglie %s.", ctx.PlayerName, item.Name),
			}
		},
	}
}

func dropHandler() *Handler {
	return &Handler{
		Name:        "lascia",
		Aliases:     []string{"drop", "posa"},
		RequiresArg: true,
		Description: "Lascia un oggetto dal tuo inventario",
		Usage:       "lascia <oggetto>",
		Execute: func(ctx *Context, arg string) Result {
			if len(ctx.Inventory) == 0 {
				return Errorf("Il tuo inventario è vuoto.")
			}

			itemId, item := ctx.findInventoryItem(arg)
			if itemId == "" {
				return Errorf(fmt.Sprintf("Non hai %q nel tuo inventario.", arg))
			}

			return Result{
				Type:      ResultDrop,
				ItemId:    itemId,
				Message:   fmt.Sprintf("Lasci %s.", item.Name),
				Broadcast: fmt.Sprintf("%s posa %s.", ctx.PlayerName, item.Name),
			}
		},
	}
}
