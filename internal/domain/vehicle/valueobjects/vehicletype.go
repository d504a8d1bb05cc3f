package valueobjects

import (
	"fmt"
	"strings"
)

// VehicleType classifies registered vehicles.
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeOther      VehicleType = "other"
)

// ValidVehicleTypes contains all valid vehicle type values.
var ValidVehicleTypes = map[VehicleType]bool{
	VehicleTypeCar:        true,
	VehicleTypeMotorcycle: true,
	VehicleTypeOther:      true,
}

// ParseVehicleType parses a string into a VehicleType (case-insensitive).
func ParseVehicleType(value string) (VehicleType, error) {
	normalized := VehicleType(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", fmt.Errorf("vehicle type cannot be empty")
	}
	if !ValidVehicleTypes[normalized] {
		return "", fmt.Errorf("invalid vehicle type: %s", value)
	}
	return normalized, nil
}

// String returns the string representation of the vehicle type.
func (t VehicleType) String() string {
	return string(t)
}
