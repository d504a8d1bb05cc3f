package dto

import "time"

// RecordMovementRequest represents the request to log an entry or exit
type RecordMovementRequest struct {
	Plate    string `json:"plate" binding:"required"`
	Movement string `json:"movement" binding:"required,oneof=entry exit"`
	Notes    string `json:"notes,omitempty"`
}

// AccessRecordResponse represents one logged movement
type AccessRecordResponse struct {
	ID           uint      `json:"id"`
	VehicleID    uint      `json:"vehicle_id"`
	Plate        string    `json:"plate,omitempty"`
	Movement     string    `json:"movement"`
	RecordedAt   time.Time `json:"recorded_at"`
	Notes        string    `json:"notes,omitempty"`
	RegisteredBy string    `json:"registered_by,omitempty"`
	Inside       bool      `json:"inside"`
}

// ReportRequest represents the access report query
type ReportRequest struct {
	Page        int    `json:"page" form:"page"`
	StartDate   string `json:"start_date,omitempty" form:"start_date"`
	EndDate     string `json:"end_date,omitempty" form:"end_date"`
	Movement    string `json:"movement,omitempty" form:"movement" binding:"omitempty,oneof=entry exit"`
	VehicleType string `json:"vehicle_type,omitempty" form:"vehicle_type" binding:"omitempty,oneof=car motorcycle other"`
}

// ReportResponse represents the filtered access report
type ReportResponse struct {
	Records    []*AccessRecordResponse `json:"records"`
	Totals     ReportTotals            `json:"totals"`
	Pagination PaginationResponse      `json:"pagination"`
}

// ReportTotals are the aggregate counts over the filtered set, not just
// the current page
type ReportTotals struct {
	Total   int64 `json:"total"`
	Entries int64 `json:"entries"`
	Exits   int64 `json:"exits"`
}

// DashboardResponse represents the dashboard statistics
type DashboardResponse struct {
	ActiveVehicles  int64                   `json:"active_vehicles"`
	ActiveOwners    int64                   `json:"active_owners"`
	VehiclesInside  int64                   `json:"vehicles_inside"`
	MovementsToday  int64                   `json:"movements_today"`
	RecentMovements []*AccessRecordResponse `json:"recent_movements"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}
