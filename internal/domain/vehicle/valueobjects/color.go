package valueobjects

import (
	"fmt"
	"strings"
)

// Color is the registered body color of a vehicle.
type Color string

const (
	ColorBlack Color = "black"
	ColorBlue  Color = "blue"
	ColorGray  Color = "gray"
	ColorWhite Color = "white"
	ColorRed   Color = "red"
	ColorOther Color = "other"
)

// ValidColors contains all valid color values.
var ValidColors = map[Color]bool{
	ColorBlack: true,
	ColorBlue:  true,
	ColorGray:  true,
	ColorWhite: true,
	ColorRed:   true,
	ColorOther: true,
}

// ParseColor parses a string into a Color (case-insensitive).
func ParseColor(value string) (Color, error) {
	normalized := Color(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", fmt.Errorf("color cannot be empty")
	}
	if !ValidColors[normalized] {
		return "", fmt.Errorf("invalid color: %s", value)
	}
	return normalized, nil
}

// String returns the string representation of the color.
func (c Color) String() string {
	return string(c)
}
