package access

import (
	"context"
	"time"
)

// Repository defines the interface for access record operations. The log is
// append-only, so there is deliberately no update or delete.
type Repository interface {
	// Create appends a new access record.
	Create(ctx context.Context, record *Record) error

	// GetLatestForVehicle returns the most recent record for a vehicle,
	// breaking timestamp ties by the higher ID. Returns nil when the
	// vehicle has no records.
	GetLatestForVehicle(ctx context.Context, vehicleID uint) (*Record, error)

	// ListForVehicle returns a vehicle's records, newest first, capped at
	// limit (0 for no cap).
	ListForVehicle(ctx context.Context, vehicleID uint, limit int) ([]*Record, error)

	// List retrieves a filtered, paginated slice of the log, newest first,
	// together with the total count of the filtered set.
	List(ctx context.Context, filter ListFilter) ([]*Record, int64, error)

	// CountByMovement counts records in the filtered set per movement type.
	CountByMovement(ctx context.Context, filter ListFilter) (entries int64, exits int64, err error)

	// CountSince counts records at or after the given instant.
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// CountVehiclesInside counts active vehicles whose latest record is an
	// entry.
	CountVehiclesInside(ctx context.Context) (int64, error)

	// ListRecent returns the newest records across all vehicles.
	ListRecent(ctx context.Context, limit int) ([]*Record, error)
}

// ListFilter represents filtering and pagination options for the access log.
// From and To are UTC instants already resolved from business-timezone day
// bounds; either may be nil.
type ListFilter struct {
	Page        int
	PageSize    int
	From        *time.Time
	To          *time.Time
	Movement    string
	VehicleType string
	VehicleID   uint
}
