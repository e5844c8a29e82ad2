package commands

import (
	"fmt"
	"strings"

	"github.com/roccanera/mud/internal/game"
)

func inventoryHandler() *Handler {
	return &Handler{
		Name:        "inventario",
		Aliases:     []string{"inv", "inventory", "zaino"},
		Description: "Mostra il contenuto del tuo inventario",
		Usage:       "inventario",
		Execute: func(ctx *Context, arg string) Result {
			if len(ctx.Inventory) == 0 {
				return Result{Type: ResultInfo, Message: "Il tuo inventario è vuoto."}
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Inventario (%d oggetti):\n", len(ctx.Inventory))
			for _, id := range ctx.Inventory {
				item := ctx.Catalog().Item(id)
				if item == nil {
					continue
				}
				line := fmt.Sprintf("  %s (%d kg)", item.Name, item.Weight)
				if slot, equipped := ctx.Equipment.SlotOf(id); equipped {
					line += fmt.Sprintf(" [%s]", slot.Italian())
				}
				b.WriteString(line + "\n")
			}

			carried := game.CarriedWeight(ctx.Inventory, ctx.Catalog().Item)
			fmt.Fprintf(&b, "Peso: %d/%d kg", carried, ctx.MaxWeight)

			return Result{Type: ResultInfo, Message: b.String()}
		},
	}
}
