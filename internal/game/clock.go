package game

import "fmt"

// Phase is a segment of the day/night cycle.
type Phase string

const (
	PhaseDeepNight Phase = "deep_night" // 00:00-05:00
	PhaseDawn      Phase = "dawn"       // 05:00-07:00
	PhaseMorning   Phase = "morning"    // 07:00-12:00
	PhaseAfternoon Phase = "afternoon"  // 12:00-17:00
	PhaseDusk      Phase = "dusk"       // 17:00-19:00
	PhaseNight     Phase = "night"      // 19:00-00:00
)

// A full virtual day runs in ten real minutes: one virtual hour every
// 25 seconds.
const secondsPerCycle = 600

var phaseSchedule = []struct {
	phase   Phase
	seconds int
}{
	{PhaseDeepNight, 125},
	{PhaseDawn, 50},
	{PhaseMorning, 125},
	{PhaseAfternoon, 125},
	{PhaseDusk, 50},
	{PhaseNight, 125},
}

var phaseNames = map[Phase]string{
	PhaseDeepNight: "Notte Profonda",
	PhaseDawn:      "Alba",
	PhaseMorning:   "Mattina",
	PhaseAfternoon: "Pomeriggio",
	PhaseDusk:      "Tramonto",
	PhaseNight:     "Notte",
}

var phaseMessages = map[Phase]string{
	PhaseDeepNight: "La notte profonda avvolge il mondo...",
	PhaseDawn:      "L'alba sta sorgendo all'orizzonte...",
	PhaseMorning:   "Il sole sorge radioso nel cielo.",
	PhaseAfternoon: "Il sole splende alto nel cielo.",
	PhaseDusk:      "Il tramonto tinge il cielo di arancione...",
	PhaseNight:     "La notte avvolge il mondo nell'oscurità.",
}

// Italian returns the display name of the phase.
func (p Phase) Italian() string {
	if n, ok := phaseNames[p]; ok {
		return n
	}
	return string(p)
}

// ChangeMessage returns the broadcast sent when the world enters this phase.
func (p Phase) ChangeMessage() string {
	if m, ok := phaseMessages[p]; ok {
		return m
	}
	return string(p)
}

// Clock advances the virtual day one second at a time. Not safe for
// concurrent use; the world driver owns it.
type Clock struct {
	totalSeconds int
	phase        Phase
}

// NewClock starts the world at midnight, deep night.
func NewClock() *Clock {
	return &Clock{phase: PhaseDeepNight}
}

// Advance moves the clock forward one second, returning the new phase and
// whether the phase just changed.
func (c *Clock) Advance() (Phase, bool) {
	c.totalSeconds++

	position := c.totalSeconds % secondsPerCycle
	accumulated := 0
	next := c.phase
	for _, entry := range phaseSchedule {
		accumulated += entry.seconds
		if position < accumulated {
			next = entry.phase
			break
		}
	}

	if next != c.phase {
		c.phase = next
		return next, true
	}
	return c.phase, false
}

// Phase returns the current phase.
func (c *Clock) Phase() Phase {
	return c.phase
}

// TimeString renders the virtual time of day as HH:MM.
func (c *Clock) TimeString() string {
	position := c.totalSeconds % secondsPerCycle
	virtualSeconds := position * 86400 / secondsPerCycle
	hours := virtualSeconds / 3600
	minutes := (virtualSeconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
