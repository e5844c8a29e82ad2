package game

import "strings"

// Direction is a canonical exit direction. Catalog files and runtime maps
// always use the canonical (English) form; player input may use Italian
// names or two-letter abbreviations.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

var directionAliases = map[string]Direction{
	"north": North, "nord": North, "n": North,
	"south": South, "sud": South, "s": South,
	"east": East, "est": East, "e": East,
	"west": West, "ovest": West, "o": West, "w": West,
	"up": Up, "alto": Up, "su": Up,
	"down": Down, "basso": Down, "giu": Down, "giù": Down,
}

var oppositeDirections = map[Direction]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Up:    Down,
	Down:  Up,
}

var italianDirections = map[Direction]string{
	North: "nord",
	South: "sud",
	East:  "est",
	West:  "ovest",
	Up:    "alto",
	Down:  "basso",
}

// ParseDirection resolves a player-typed direction word to its canonical
// form. The second return is false if the word is not a direction.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// Opposite returns the direction leading back through the same passage.
func (d Direction) Opposite() Direction {
	if opp, ok := oppositeDirections[d]; ok {
		return opp
	}
	return d
}

// Italian returns the display name used in player-facing messages.
func (d Direction) Italian() string {
	if it, ok := italianDirections[d]; ok {
		return it
	}
	return string(d)
}

func (d Direction) String() string {
	return string(d)
}

// IsDirection reports whether the canonical direction is one of the six
// known values.
func IsDirection(s string) bool {
	_, ok := oppositeDirections[Direction(s)]
	return ok
}
