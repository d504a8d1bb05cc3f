package owner

import (
	"fmt"
	"time"

	vo "caseta/internal/domain/owner/valueobjects"
	"caseta/internal/shared/biztime"
)

// Owner represents the vehicle owner aggregate root.
// Owners are never hard-deleted because vehicles reference them; the active
// flag is flipped instead.
type Owner struct {
	id             uint
	documentType   vo.DocumentType
	documentNumber *vo.DocumentNumber
	fullName       *vo.FullName
	phone          *vo.Phone
	email          string
	personType     vo.PersonType
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewOwner creates a new owner aggregate with initial values.
// Phone is optional and may be nil.
func NewOwner(
	documentType vo.DocumentType,
	documentNumber *vo.DocumentNumber,
	fullName *vo.FullName,
	phone *vo.Phone,
	email string,
	personType vo.PersonType,
) (*Owner, error) {
	if documentNumber == nil {
		return nil, fmt.Errorf("document number is required")
	}
	if fullName == nil {
		return nil, fmt.Errorf("full name is required")
	}

	now := biztime.NowUTC()
	return &Owner{
		documentType:   documentType,
		documentNumber: documentNumber,
		fullName:       fullName,
		phone:          phone,
		email:          email,
		personType:     personType,
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructOwner reconstructs an owner from persistence.
func ReconstructOwner(
	id uint,
	documentType vo.DocumentType,
	documentNumber *vo.DocumentNumber,
	fullName *vo.FullName,
	phone *vo.Phone,
	email string,
	personType vo.PersonType,
	active bool,
	createdAt, updatedAt time.Time,
) (*Owner, error) {
	if id == 0 {
		return nil, fmt.Errorf("owner ID cannot be zero")
	}
	if documentNumber == nil {
		return nil, fmt.Errorf("document number is required")
	}
	if fullName == nil {
		return nil, fmt.Errorf("full name is required")
	}

	return &Owner{
		id:             id,
		documentType:   documentType,
		documentNumber: documentNumber,
		fullName:       fullName,
		phone:          phone,
		email:          email,
		personType:     personType,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the owner ID.
func (o *Owner) ID() uint { return o.id }

// SetID sets the ID after persistence assigns it.
func (o *Owner) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("owner ID already set")
	}
	if id == 0 {
		return fmt.Errorf("owner ID cannot be zero")
	}
	o.id = id
	return nil
}

// DocumentType returns the document type.
func (o *Owner) DocumentType() vo.DocumentType { return o.documentType }

// DocumentNumber returns the document number.
func (o *Owner) DocumentNumber() *vo.DocumentNumber { return o.documentNumber }

// FullName returns the owner's full name.
func (o *Owner) FullName() *vo.FullName { return o.fullName }

// Phone returns the owner's phone, nil when not provided.
func (o *Owner) Phone() *vo.Phone { return o.phone }

// Email returns the owner's email, empty when not provided.
func (o *Owner) Email() string { return o.email }

// PersonType returns the person type.
func (o *Owner) PersonType() vo.PersonType { return o.personType }

// IsActive reports whether the owner is active.
func (o *Owner) IsActive() bool { return o.active }

// CreatedAt returns the creation timestamp.
func (o *Owner) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last update timestamp.
func (o *Owner) UpdatedAt() time.Time { return o.updatedAt }

// UpdateContact updates the owner's name and contact details.
func (o *Owner) UpdateContact(fullName *vo.FullName, phone *vo.Phone, email string) error {
	if fullName == nil {
		return fmt.Errorf("full name is required")
	}
	o.fullName = fullName
	o.phone = phone
	o.email = email
	o.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate soft-deletes the owner. Vehicles keep referencing the record.
func (o *Owner) Deactivate() {
	o.active = false
	o.updatedAt = biztime.NowUTC()
}

// Activate re-enables a previously deactivated owner.
func (o *Owner) Activate() {
	o.active = true
	o.updatedAt = biztime.NowUTC()
}
