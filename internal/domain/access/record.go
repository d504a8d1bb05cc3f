package access

import (
	"fmt"
	"time"

	"caseta/internal/shared/biztime"
)

// Record represents one entry or exit event for a vehicle. Records are
// append-only: once written they are never updated or deleted, so the log
// remains a trustworthy audit trail.
type Record struct {
	id           uint
	vehicleID    uint
	movement     Movement
	recordedAt   time.Time
	notes        string
	registeredBy string // optional operator name, not part of any invariant
}

// NewRecord creates a new access record stamped with the current time.
func NewRecord(vehicleID uint, movement Movement, notes, registeredBy string) (*Record, error) {
	if vehicleID == 0 {
		return nil, fmt.Errorf("vehicle is required")
	}
	if movement != MovementEntry && movement != MovementExit {
		return nil, fmt.Errorf("invalid movement type: %s", movement)
	}

	return &Record{
		vehicleID:    vehicleID,
		movement:     movement,
		recordedAt:   biztime.NowUTC(),
		notes:        notes,
		registeredBy: registeredBy,
	}, nil
}

// ReconstructRecord reconstructs an access record from persistence.
func ReconstructRecord(
	id uint,
	vehicleID uint,
	movement Movement,
	recordedAt time.Time,
	notes string,
	registeredBy string,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if vehicleID == 0 {
		return nil, fmt.Errorf("vehicle is required")
	}

	return &Record{
		id:           id,
		vehicleID:    vehicleID,
		movement:     movement,
		recordedAt:   recordedAt,
		notes:        notes,
		registeredBy: registeredBy,
	}, nil
}

// ID returns the record ID. IDs are monotonically assigned by storage and
// double as the tiebreak for records sharing a timestamp.
func (r *Record) ID() uint { return r.id }

// SetID sets the ID after persistence assigns it.
func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("record ID already set")
	}
	if id == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	r.id = id
	return nil
}

// VehicleID returns the vehicle the record belongs to.
func (r *Record) VehicleID() uint { return r.vehicleID }

// Movement returns the movement direction.
func (r *Record) Movement() Movement { return r.movement }

// RecordedAt returns the immutable event timestamp.
func (r *Record) RecordedAt() time.Time { return r.recordedAt }

// Notes returns the free-text notes.
func (r *Record) Notes() string { return r.notes }

// RegisteredBy returns the operator name, empty when not supplied.
func (r *Record) RegisteredBy() string { return r.registeredBy }
