package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '?' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, N: n}
	}
	for _, suffix := range []string{"steps", "step", "m"} {
		if !strings.HasSuffix(token, suffix) {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSuffix(token, suffix)); err == nil && v >= 0 {
			return &Quantity{Raw: token, N: v}
		}
	}
	return nil
}

func mapDirection(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "n", "north", "up":
		return "north"
	case "s", "south", "down":
		return "south"
	case "e", "east", "right":
		return "east"
	case "w", "west", "left":
		return "west"
	case "ne", "northeast":
		return "northeast"
	case "nw", "northwest":
		return "northwest"
	case "se", "southeast":
		return "southeast"
	case "sw", "southwest":
		return "southwest"
	default:
		return ""
	}
}

var directionVectors = map[string][2]float64{
	"north":     {0, -1},
	"south":     {0, 1},
	"east":      {1, 0},
	"west":      {-1, 0},
	"northeast": {math.Sqrt2 / 2, -math.Sqrt2 / 2},
	"northwest": {-math.Sqrt2 / 2, -math.Sqrt2 / 2},
	"southeast": {math.Sqrt2 / 2, math.Sqrt2 / 2},
	"southwest": {-math.Sqrt2 / 2, math.Sqrt2 / 2},
}

// DirectionVector returns the unit step for a canonical direction. Screen
// coordinates are used, so north is negative y.
func DirectionVector(direction string) (dx, dy float64, ok bool) {
	v, ok := directionVectors[mapDirection(direction)]
	return v[0], v[1], ok
}

func Directions() []string {
	return []string{"north", "south", "east", "west", "northeast", "northwest", "southeast", "southwest"}
}
