package commands

import (
	"fmt"
	"math/rand"
)

func sayHandler() *Handler {
	return &Handler{
		Name:        "dici",
		Aliases:     []string{"say", "di"},
		RequiresArg: true,
		Description: "Invia un messaggio ai giocatori presenti",
		Usage:       "dici <messaggio>",
		Execute: func(ctx *Context, arg string) Result {
			return Result{
				Type:      ResultSay,
				Message:   fmt.Sprintf("Dici: %q", arg),
				Broadcast: fmt.Sprintf("%s dice: %q", ctx.PlayerName, arg),
			}
		},
	}
}

// talkHandler addresses an NPC, which answers with one of its dialogue
// lines picked at random. Without an argument it lists who is around.
func talkHandler() *Handler {
	return &Handler{
		Name:        "parla",
		Aliases:     []string{"dialoga", "talk"},
		Description: "Parla con un personaggio",
		Usage:       "parla [personaggio]",
		Execute: func(ctx *Context, arg string) Result {
			if arg == "" {
				if len(ctx.NPCs) == 0 {
					return Result{Type: ResultInfo, Message: "Non c'è nessuno con cui parlare qui."}
				}
				list := "Persone con cui puoi parlare:\n"
				for _, npc := range ctx.NPCs {
					list += fmt.Sprintf("  %s\n", npc.Name)
				}
				return Result{Type: ResultInfo, Message: list + "\nUsa: parla <nome>"}
			}

			npcInfo, found := ctx.findNPC(arg)
			if !found {
				return Errorf(fmt.Sprintf("Non vedi nessuno chiamato %q qui.", arg))
			}

			npc := ctx.Catalog().NPC(npcInfo.Id)
			if npc == nil || len(npc.Dialogues) == 0 {
				return Result{
					Type:    ResultInfo,
					Message: fmt.Sprintf("%s non ha nulla da dire al momento.", npcInfo.Name),
				}
			}

			line := npc.Dialogues[rand.Intn(len(npc.Dialogues))]
			return Result{
				Type:      ResultInfo,
				Message:   fmt.Sprintf("%s dice:\n\n%q", npc.Name, line),
				Broadcast: fmt.Sprintf("%s parla con %s.", ctx.PlayerName, npc.Name),
			}
		},
	}
}
