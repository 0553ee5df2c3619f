package dto

import (
	"time"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/samber/lo"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	NationalID string `json:"nationalId" binding:"required,max=32"`
	Contact    string `json:"contact" binding:"max=32"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID int64     `json:"customerId"`
	Name       string    `json:"name"`
	NationalID string    `json:"nationalId"`
	Contact    string    `json:"contact"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		NationalID: c.NationalID,
		Contact:    c.Contact,
		CreatedAt:  c.CreatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to a slice of CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	return lo.Map(customers, func(c domain.Customer, _ int) CustomerResponse {
		return ToCustomerResponse(&c)
	})
}
