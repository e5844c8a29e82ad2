package commands

import (
	"fmt"
	"sort"
	"strings"
)

// HandlerFunc evaluates one command against a context snapshot.
type HandlerFunc func(ctx *Context, arg string) Result

// Handler is one registered verb with its aliases and usage line.
type Handler struct {
	Name        string
	Aliases     []string
	RequiresArg bool
	Description string
	Usage       string
	Execute     HandlerFunc
}

// Registry maps verb tokens to handlers. Multi-word names like
// "apri porta" are registered under the full phrase and found by a
// second lookup pass combining the verb with the first argument token.
type Registry struct {
	handlers map[string]*Handler
}

func NewRegistry() *Registry {
	r := &Registry{handlers: map[string]*Handler{}}
	r.registerAll()
	return r
}

func (r *Registry) register(h *Handler) {
	r.handlers[h.Name] = h
	for _, alias := range h.Aliases {
		r.handlers[alias] = h
	}
}

// Parse lower-cases and whitespace-splits input into a verb and the
// remaining argument string. No quoting, no escaping.
func Parse(input string) (string, string) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// Dispatch parses the input and runs the matching handler. The verb is
// tried alone first; if the verb combined with the first argument token
// names a multi-word command, that one wins and the tail becomes the
// argument.
func (r *Registry) Dispatch(ctx *Context, input string) Result {
	verb, arg := Parse(input)
	if verb == "" {
		return Result{Type: ResultInfo}
	}

	h := r.handlers[verb]

	if arg != "" {
		first, tail, _ := strings.Cut(arg, " ")
		if mh, ok := r.handlers[verb+" "+first]; ok {
			h = mh
			verb = verb + " " + first
			arg = tail
		}
	}

	if h == nil {
		return Errorf("Comando non riconosciuto.")
	}

	if h.RequiresArg && arg == "" {
		return Errorf(fmt.Sprintf("Devi inserire un argomento. Usa: %s", h.Usage))
	}

	ctx.Verb = verb
	return h.Execute(ctx, arg)
}

// helpText lists every command once, sorted by canonical name.
func (r *Registry) helpText() string {
	seen := map[string]*Handler{}
	for _, h := range r.handlers {
		seen[h.Name] = h
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Comandi disponibili:\n")
	for _, name := range names {
		h := seen[name]
		fmt.Fprintf(&b, "  %-14s %s\n", h.Usage, h.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// registerAll wires up the complete verb set.
func (r *Registry) registerAll() {
	for _, h := range directionHandlers() {
		r.register(h)
	}

	r.register(moveHandler())
	r.register(lookHandler())
	r.register(examineHandler())
	r.register(sayHandler())
	r.register(talkHandler())
	r.register(openDoorHandler())
	r.register(closeDoorHandler())
	r.register(interactHandler())
	r.register(pickupHandler())
	r.register(dropHandler())
	r.register(inventoryHandler())
	r.register(drinkHandler())
	r.register(eatHandler())
	r.register(readHandler())
	r.register(equipHandler())
	r.register(unequipHandler())
	r.register(attackHandler())
	r.register(defendHandler())
	r.register(fleeHandler())
	r.register(statsHandler())
	r.register(experienceHandler())
	r.register(timeHandler())
	r.register(killDebugHandler())
	r.register(helpHandler(r))
}
