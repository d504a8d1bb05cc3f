package dto

import "time"

// RegisterVehicleRequest represents the request to register a vehicle
type RegisterVehicleRequest struct {
	Plate       string `json:"plate" binding:"required"`
	VehicleType string `json:"vehicle_type,omitempty" binding:"omitempty,oneof=car motorcycle other"`
	Brand       string `json:"brand" binding:"required,max=50"`
	Model       string `json:"model,omitempty" binding:"omitempty,max=50"`
	Color       string `json:"color,omitempty" binding:"omitempty,oneof=black blue gray white red other"`
	Year        int    `json:"year" binding:"required"`
	OwnerID     uint   `json:"owner_id" binding:"required"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateVehicleRequest represents the request to edit a vehicle. The plate
// is absent on purpose; it never changes after registration.
type UpdateVehicleRequest struct {
	VehicleType string `json:"vehicle_type,omitempty" binding:"omitempty,oneof=car motorcycle other"`
	Brand       string `json:"brand" binding:"required,max=50"`
	Model       string `json:"model,omitempty" binding:"omitempty,max=50"`
	Color       string `json:"color,omitempty" binding:"omitempty,oneof=black blue gray white red other"`
	Year        int    `json:"year" binding:"required"`
	OwnerID     uint   `json:"owner_id" binding:"required"`
	Notes       string `json:"notes,omitempty"`
}

// ListVehiclesRequest represents the request to list vehicles
type ListVehiclesRequest struct {
	Page            int    `json:"page" form:"page"`
	Search          string `json:"search,omitempty" form:"search"`
	VehicleType     string `json:"vehicle_type,omitempty" form:"vehicle_type" binding:"omitempty,oneof=car motorcycle other"`
	IncludeInactive bool   `json:"include_inactive,omitempty" form:"include_inactive"`
}

// VehicleResponse represents the response for a vehicle
type VehicleResponse struct {
	ID           uint           `json:"id"`
	Plate        string         `json:"plate"`
	VehicleType  string         `json:"vehicle_type"`
	Brand        string         `json:"brand"`
	Model        string         `json:"model,omitempty"`
	Color        string         `json:"color"`
	Year         int            `json:"year"`
	OwnerID      uint           `json:"owner_id"`
	Owner        *OwnerSummary  `json:"owner,omitempty"`
	Active       bool           `json:"active"`
	Inside       *bool          `json:"inside,omitempty"`
	RegisteredAt time.Time      `json:"registered_at"`
	Notes        string         `json:"notes,omitempty"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// OwnerSummary is the owner projection embedded in vehicle responses
type OwnerSummary struct {
	ID             uint   `json:"id"`
	DocumentNumber string `json:"document_number"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone,omitempty"`
	Active         bool   `json:"active"`
}

// VehicleDetailResponse pairs a vehicle with its presence and recent log
type VehicleDetailResponse struct {
	Vehicle *VehicleResponse  `json:"vehicle"`
	Inside  bool              `json:"inside"`
	Log     []*AccessLogEntry `json:"log"`
}

// AccessLogEntry is one entry or exit event in a vehicle's log
type AccessLogEntry struct {
	ID           uint      `json:"id"`
	Movement     string    `json:"movement"`
	RecordedAt   time.Time `json:"recorded_at"`
	Notes        string    `json:"notes,omitempty"`
	RegisteredBy string    `json:"registered_by,omitempty"`
}

// PlateLookupResponse answers the gate lookup for a plate
type PlateLookupResponse struct {
	Found   bool             `json:"found"`
	Vehicle *VehicleResponse `json:"vehicle,omitempty"`
	Inside  bool             `json:"inside"`
}

// ListVehiclesResponse represents the response for listing vehicles
type ListVehiclesResponse struct {
	Vehicles   []*VehicleResponse `json:"vehicles"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}
