package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Fixed page sizes per screen
	VehicleListPageSize = 15
	ReportPageSize      = 20

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderRegisteredBy  = "X-Registered-By"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableOwners        = "owners"
	TableVehicles      = "vehicles"
	TableAccessRecords = "access_records"
	TableSiteSettings  = "site_settings"
)
