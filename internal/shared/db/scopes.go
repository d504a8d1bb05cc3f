// Package db provides database utilities including transaction management
// and query scopes.
package db

import (
	"gorm.io/gorm"
)

// Active is a GORM scope that filters for active records. Owners and
// vehicles are soft-deleted by flipping the active flag so that access
// records keep a valid reference.
//
// Example usage:
//
//	db.Model(&VehicleModel{}).Scopes(db.Active()).Count(&count)
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("active = ?", true)
	}
}

// ActiveWithAlias filters for active records with a table alias, for joins
// that need to specify which table's active flag to check.
func ActiveWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".active = ?", true)
	}
}
