package commands

import (
	"fmt"

	"github.com/roccanera/mud/internal/game"
)

// consumeSpec configures one consumable verb: which item type it wants
// and how the act reads.
type consumeSpec struct {
	itemType     string
	missingMsg   string // format with the typed argument
	actMsg       string // format with the item name
	defaultText  string
	broadcastMsg string // format with the player name
}

// consume builds the consumable result. In combat the item becomes a
// bonus action queued for the next turn; out of combat the effect is
// applied immediately and the item removed.
func consume(ctx *Context, arg string, spec consumeSpec) Result {
	itemId, item := ctx.findInventoryItemLoose(arg, spec.itemType)
	if itemId == "" {
		return Errorf(fmt.Sprintf(spec.missingMsg, arg))
	}

	if ctx.InCombat {
		return Result{
			Type:        ResultCombatQueue,
			BonusItemId: itemId,
			Message:     fmt.Sprintf("Ti prepari a consumare %s nel prossimo turno.", item.Name),
		}
	}

	effectText := spec.defaultText
	if item.Effect != nil && item.Effect.Text != "" {
		effectText = item.Effect.Text
	}

	return Result{
		Type:      ResultConsume,
		ItemId:    itemId,
		Message:   fmt.Sprintf(spec.actMsg, item.Name) + "\n" + effectText,
		Broadcast: fmt.Sprintf(spec.broadcastMsg, ctx.PlayerName),
	}
}

func drinkHandler() *Handler {
	return &Handler{
		Name:        "bevi",
		Aliases:     []string{"drink", "bere"},
		RequiresArg: true,
		Description: "Bevi una pozione",
		Usage:       "bevi <pozione>",
		Execute: func(ctx *Context, arg string) Result {
			return consume(ctx, arg, consumeSpec{
				itemType:     "potion",
				missingMsg:   "Non hai nessuna pozione chiamata %q.",
				actMsg:       "Bevi %s.",
				defaultText:  "Ti senti rinvigorito!",
				broadcastMsg: "%s beve una pozione.",
			})
		},
	}
}

func eatHandler() *Handler {
	return &Handler{
		Name:        "mangia",
		Aliases:     []string{"eat", "mangiare"},
		RequiresArg: true,
		Description: "Mangia del cibo",
		Usage:       "mangia <cibo>",
		Execute: func(ctx *Context, arg string) Result {
			return consume(ctx, arg, consumeSpec{
				itemType:     "food",
				missingMsg:   "Non hai del cibo chiamato %q.",
				actMsg:       "Mangi %s.",
				defaultText:  "Delizioso!",
				broadcastMsg: "%s mangia qualcosa.",
			})
		},
	}
}

// readHandler consumes a scroll, revealing its text. Knowledge items
// fall back to the description when they carry no text of their own.
func readHandler() *Handler {
	return &Handler{
		Name:        "leggi",
		Aliases:     []string{"read", "leggere"},
		RequiresArg: true,
		Description: "Leggi una pergamena o libro",
		Usage:       "leggi <pergamena>",
		Execute: func(ctx *Context, arg string) Result {
			itemId, item := ctx.findInventoryItemLoose(arg, "scroll")
			if itemId == "" {
				return Errorf(fmt.Sprintf("Non hai nessuna pergamena chiamata %q.", arg))
			}

			if ctx.InCombat {
				return Result{
					Type:        ResultCombatQueue,
					BonusItemId: itemId,
					Message:     fmt.Sprintf("Ti prepari a consultare %s nel prossimo turno.", item.Name),
				}
			}

			content := item.Description
			if item.Effect != nil && item.Effect.Type == game.EffectKnowledge && item.Effect.Text != "" {
				content = item.Effect.Text
			}

			return Result{
				Type:      ResultConsume,
				ItemId:    itemId,
				Message:   fmt.Sprintf("Leggi %s:\n\n%q\n\nLa pergamena si dissolve in polvere.", item.Name, content),
				Broadcast: fmt.Sprintf("%s legge una pergamena antica.", ctx.PlayerName),
			}
		},
	}
}
