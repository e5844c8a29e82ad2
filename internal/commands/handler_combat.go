package commands

import (
	"fmt"

	"github.com/roccanera/mud/internal/combat"
)

func attackHandler() *Handler {
	return &Handler{
		Name:        "attacca",
		Aliases:     []string{"attack", "colpisci", "hit"},
		Description: "Attacca un nemico",
		Usage:       "attacca [nemico]",
		Execute: func(ctx *Context, arg string) Result {
			// Mid-fight the verb just re-queues an attack.
			if ctx.InCombat {
				return Result{
					Type:         ResultCombatQueue,
					CombatAction: combat.ActionAttack,
					Message:      "Continui ad attaccare.",
				}
			}

			if arg == "" {
				return Errorf("Attacca chi? Specifica il nome del nemico: attacca <nemico>")
			}

			monster, found := ctx.findMonster(arg)
			if !found {
				return Errorf(fmt.Sprintf("Non vedi alcun %q da attaccare qui.", arg))
			}

			if !monster.Alive() {
				return Errorf(fmt.Sprintf("%s è già morto.", monster.Name))
			}

			return Result{
				Type:     ResultCombatStart,
				TargetId: monster.Id,
			}
		},
	}
}

func defendHandler() *Handler {
	return &Handler{
		Name:        "difenditi",
		Aliases:     []string{"defend", "parata", "difesa"},
		Description: "Ti difendi dal prossimo attacco",
		Usage:       "difenditi",
		Execute: func(ctx *Context, arg string) Result {
			if !ctx.InCombat {
				return Errorf("Non sei in combattimento. Usa: attacca <nemico>")
			}

			return Result{
				Type:         ResultCombatQueue,
				CombatAction: combat.ActionDefend,
				Message:      "Ti prepari a parare il prossimo colpo.",
			}
		},
	}
}

func fleeHandler() *Handler {
	return &Handler{
		Name:        "fuggi",
		Aliases:     []string{"flee", "scappa"},
		Description: "Fuggi da un combattimento",
		Usage:       "fuggi",
		Execute: func(ctx *Context, arg string) Result {
			if !ctx.InCombat {
				return Errorf("Non sei in combattimento.")
			}

			return Result{
				Type:         ResultCombatQueue,
				CombatAction: combat.ActionFlee,
				Message:      "Cerchi una via di fuga...",
			}
		},
	}
}

// killDebugHandler defeats a monster outright, for poking at the
// respawn cycle without fighting through it.
func killDebugHandler() *Handler {
	return &Handler{
		Name:        "uccidi",
		Aliases:     []string{"kill"},
		RequiresArg: true,
		Description: "[DEBUG] Sconfiggi un mostro per testare il respawn",
		Usage:       "uccidi <mostro>",
		Execute: func(ctx *Context, arg string) Result {
			monster, found := ctx.findMonster(arg)
			if !found {
				return Errorf(fmt.Sprintf("Non riesci a trovare %q qui.", arg))
			}

			return Result{
				Type:      ResultDebugKill,
				TargetId:  monster.Id,
				Message:   fmt.Sprintf("Hai sconfitto %s!", monster.Name),
				Broadcast: fmt.Sprintf("%s ha sconfitto %s!", ctx.PlayerName, monster.Name),
			}
		},
	}
}
