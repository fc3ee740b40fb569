package config

import (
	"fmt"
	"strings"
)

// Direction is a grid movement direction
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = map[Direction]string{
	DirectionNone:  "none",
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses a Tiled/YAML direction name. Empty means none.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DirectionNone, nil
	}
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return DirectionNone, fmt.Errorf("unknown direction %q", s)
}

// Delta returns the grid offset of one step in this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// Action returns the movement action bound to this direction
func (d Direction) Action() ActionID {
	switch d {
	case DirectionUp:
		return ActionMoveUp
	case DirectionDown:
		return ActionMoveDown
	case DirectionLeft:
		return ActionMoveLeft
	case DirectionRight:
		return ActionMoveRight
	}
	return ActionNone
}

// DirectionForAction is the inverse of Direction.Action
func DirectionForAction(a ActionID) Direction {
	switch a {
	case ActionMoveUp:
		return DirectionUp
	case ActionMoveDown:
		return DirectionDown
	case ActionMoveLeft:
		return DirectionLeft
	case ActionMoveRight:
		return DirectionRight
	}
	return DirectionNone
}
