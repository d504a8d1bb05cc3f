package access

import (
	"fmt"
	"strings"
)

// Movement is the direction of an access event.
type Movement string

const (
	MovementEntry Movement = "entry"
	MovementExit  Movement = "exit"
)

// ParseMovement parses a string into a Movement (case-insensitive).
func ParseMovement(value string) (Movement, error) {
	switch Movement(strings.ToLower(strings.TrimSpace(value))) {
	case MovementEntry:
		return MovementEntry, nil
	case MovementExit:
		return MovementExit, nil
	default:
		return "", fmt.Errorf("invalid movement type: %s", value)
	}
}

// String returns the string representation of the movement.
func (m Movement) String() string {
	return string(m)
}

// IsEntry reports whether the movement is an entry.
func (m Movement) IsEntry() bool {
	return m == MovementEntry
}
