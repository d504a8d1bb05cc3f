package owner

import "context"

// Repository defines the interface for owner data operations.
type Repository interface {
	// Create creates a new owner.
	Create(ctx context.Context, owner *Owner) error

	// GetByID retrieves an owner by ID.
	GetByID(ctx context.Context, id uint) (*Owner, error)

	// GetActiveByID retrieves an owner by ID only when it is active.
	GetActiveByID(ctx context.Context, id uint) (*Owner, error)

	// GetByDocumentNumber retrieves an owner by document number.
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*Owner, error)

	// Update updates an existing owner.
	Update(ctx context.Context, owner *Owner) error

	// List retrieves a paginated list of owners.
	List(ctx context.Context, filter ListFilter) ([]*Owner, int64, error)

	// ExistsActiveWithDocument checks whether an active owner already uses
	// the given document number, excluding the given owner ID (0 for none).
	ExistsActiveWithDocument(ctx context.Context, documentNumber string, excludeID uint) (bool, error)

	// CountActive returns the number of active owners.
	CountActive(ctx context.Context) (int64, error)
}

// ListFilter represents filtering and pagination options for owner list.
type ListFilter struct {
	Page          int
	PageSize      int
	Search        string // matches full name or document number
	IncludeInactive bool
}
