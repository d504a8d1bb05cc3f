package vehicle

import "context"

// Repository defines the interface for vehicle data operations.
type Repository interface {
	// Create creates a new vehicle. A plate collision must surface as a
	// storage-level duplicate error; the unique index closes the race the
	// snapshot check in the use case cannot.
	Create(ctx context.Context, vehicle *Vehicle) error

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id uint) (*Vehicle, error)

	// GetByPlate retrieves a vehicle by its normalized plate.
	GetByPlate(ctx context.Context, plate string) (*Vehicle, error)

	// GetActiveByPlate retrieves a vehicle by plate only when it is active.
	GetActiveByPlate(ctx context.Context, plate string) (*Vehicle, error)

	// Update updates an existing vehicle.
	Update(ctx context.Context, vehicle *Vehicle) error

	// List retrieves a paginated list of vehicles ordered by plate.
	List(ctx context.Context, filter ListFilter) ([]*Vehicle, int64, error)

	// ExistsByPlate checks whether any vehicle, active or not, uses the plate.
	ExistsByPlate(ctx context.Context, plate string) (bool, error)

	// CountActive returns the number of active vehicles.
	CountActive(ctx context.Context) (int64, error)
}

// ListFilter represents filtering and pagination options for vehicle list.
// Search matches plate, brand and model on the vehicle plus full name and
// document number on the owner, case-insensitively.
type ListFilter struct {
	Page            int
	PageSize        int
	Search          string
	VehicleType     string
	IncludeInactive bool
}
