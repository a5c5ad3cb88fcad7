package service

import (
	"context"
	"time"

	"github.com/chamarasara/cafe-management-backend/model"
)

type CafeInput struct {
	Name        string
	Description string
	Logo        string
	Location    string
}

type EmployeeInput struct {
	Name         string
	EmailAddress string
	PhoneNumber  string
	Gender       string
	CafeID       string
	// StartDate is honored on create only; absent means now.
	StartDate *time.Time
}

// CafeDTO is a café annotated with its current staff count.
type CafeDTO struct {
	model.Cafe
	EmployeeCount int `json:"employeeCount"`
}

type CafeManager interface {
	List(ctx context.Context, location string) ([]CafeDTO, error)
	ListEmployees(ctx context.Context, cafeID string) ([]model.Employee, error)
	Create(ctx context.Context, input CafeInput) (CafeDTO, error)
	Update(ctx context.Context, id string, input CafeInput) (CafeDTO, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeManager interface {
	Create(ctx context.Context, input EmployeeInput) (model.Employee, error)
	Update(ctx context.Context, id string, input EmployeeInput) (model.Employee, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.Employee, error)
}
