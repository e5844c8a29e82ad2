package commands

import (
	"fmt"
	"strings"
)

// interactHandler activates a named object in the room. Several verbs
// route here; an interactable may demand one of them specifically.
// Triggers are idempotent: only the first activation reveals anything.
func interactHandler() *Handler {
	return &Handler{
		Name:        "usa",
		Aliases:     []string{"tira", "premi", "attiva", "aziona", "apri"},
		RequiresArg: true,
		Description: "Interagisci con un oggetto nella stanza",
		Usage:       "usa <oggetto> (o: tira, premi, attiva, aziona, apri)",
		Execute: func(ctx *Context, arg string) Result {
			room := ctx.Room()
			if room == nil {
				return Errorf("Stanza attuale non trovata.")
			}

			if len(room.Interactables) == 0 {
				return Errorf("Non c'è niente da interagire in questa stanza.")
			}

			objectName := strings.ToLower(arg)
			interactable, ok := room.Interactables[objectName]
			if !ok {
				return Errorf(fmt.Sprintf("Non riesci a trovare %q qui.", arg))
			}

			if interactable.Command != "" && ctx.Verb != interactable.Command {
				return Errorf(fmt.Sprintf("Non puoi %s la %s.", ctx.Verb, objectName))
			}

			if ctx.World.IsTriggered(interactable.TriggerId) {
				return Result{
					Type:      ResultInteract,
					TriggerId: interactable.TriggerId,
					Message:   fmt.Sprintf("%s Non accade nulla di nuovo.", interactable.Description),
				}
			}

			return Result{
				Type:           ResultInteract,
				TriggerId:      interactable.TriggerId,
				Message:        interactable.Description,
				TriggerMessage: revealMessage(ctx, interactable.TriggerId),
			}
		},
	}
}

// revealMessage describes the hidden exits unlocked by a trigger, using
// the catalog's reveal text when one is set.
func revealMessage(ctx *Context, triggerId string) string {
	room := ctx.Room()

	var revealed []string
	for dirName, hidden := range room.HiddenExits {
		if hidden.RequiredTrigger == triggerId {
			if hidden.RevealMessage != "" {
				return hidden.RevealMessage
			}
			revealed = append(revealed, dirName)
		}
	}

	if len(revealed) == 0 {
		return ""
	}
	if len(revealed) == 1 {
		return fmt.Sprintf("Un passaggio segreto si apre! Nuova uscita verso %s!", revealed[0])
	}
	return fmt.Sprintf("Un passaggio segreto si apre! Nuove uscite verso %s!", strings.Join(revealed, ", "))
}
