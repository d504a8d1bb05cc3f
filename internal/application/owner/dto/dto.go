package dto

import "time"

// CreateOwnerRequest represents the request to register an owner
type CreateOwnerRequest struct {
	DocumentType   string `json:"document_type,omitempty" binding:"omitempty,oneof=CC CE TI NIT PAS"`
	DocumentNumber string `json:"document_number" binding:"required"`
	FullName       string `json:"full_name" binding:"required,min=2,max=150"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty" binding:"omitempty,email"`
	PersonType     string `json:"person_type,omitempty" binding:"omitempty,oneof=natural legal"`
}

// UpdateOwnerRequest represents the request to update an owner's contact data
type UpdateOwnerRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=150"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
}

// ListOwnersRequest represents the request to list owners
type ListOwnersRequest struct {
	Page            int    `json:"page" form:"page"`
	Search          string `json:"search,omitempty" form:"search"`
	IncludeInactive bool   `json:"include_inactive,omitempty" form:"include_inactive"`
}

// OwnerResponse represents the response for an owner
type OwnerResponse struct {
	ID             uint      `json:"id"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	FullName       string    `json:"full_name"`
	DisplayName    string    `json:"display_name"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	PersonType     string    `json:"person_type"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListOwnersResponse represents the response for listing owners
type ListOwnersResponse struct {
	Owners     []*OwnerResponse   `json:"owners"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}
