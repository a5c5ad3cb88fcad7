package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/chamarasara/cafe-management-backend/apperror"
	"github.com/chamarasara/cafe-management-backend/model"
	"github.com/chamarasara/cafe-management-backend/validation"
)

var employeeRules = []validation.Rule{
	{Field: "name", Message: "Name is required.", Valid: validation.NotEmpty},
	{Field: "email_address", Message: "Valid email address is required.", Valid: validation.IsEmail},
	{Field: "phone_number", Message: "Phone number must start with 8 or 9 and be 8 digits long.", Valid: validation.IsPhoneNumber},
	{Field: "gender", Message: "Gender is required.", Valid: validation.NotEmpty},
	{Field: "cafeId", Message: "Cafe ID is required.", Valid: validation.NotEmpty},
}

const duplicateEmailMessage = "An employee with this email already exists in another cafe."

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// Create validates the input, rejects duplicate email addresses and persists
// a new employee. The id, start date and days_worked are assigned by the
// model hooks during the save.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput) (model.Employee, error) {
	if failed := validation.Apply(employeeRules, employeeValues(input)); failed != nil {
		return model.Employee{}, apperror.NewValidation(failed)
	}

	taken, err := s.emailTaken(ctx, input.EmailAddress, "")
	if err != nil {
		return model.Employee{}, err
	}
	if taken {
		return model.Employee{}, apperror.New(apperror.CodeConflict, duplicateEmailMessage)
	}

	cafeID := input.CafeID
	employee := model.Employee{
		Name:         input.Name,
		EmailAddress: input.EmailAddress,
		PhoneNumber:  input.PhoneNumber,
		Gender:       input.Gender,
		CafeID:       &cafeID,
	}
	if input.StartDate != nil {
		employee.StartDate = *input.StartDate
	}
	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return model.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return employee, nil
}

// Update overwrites every mutable field and recomputes days_worked from the
// unchanged start date.
func (s *EmployeeService) Update(ctx context.Context, id string, input EmployeeInput) (model.Employee, error) {
	if failed := validation.Apply(employeeRules, employeeValues(input)); failed != nil {
		return model.Employee{}, apperror.NewValidation(failed)
	}

	var employee model.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Employee{}, apperror.New(apperror.CodeNotFound, "Employee not found.")
		}
		return model.Employee{}, fmt.Errorf("load employee: %w", err)
	}

	taken, err := s.emailTaken(ctx, input.EmailAddress, id)
	if err != nil {
		return model.Employee{}, err
	}
	if taken {
		return model.Employee{}, apperror.New(apperror.CodeConflict, duplicateEmailMessage)
	}

	cafeID := input.CafeID
	employee.Name = input.Name
	employee.EmailAddress = input.EmailAddress
	employee.PhoneNumber = input.PhoneNumber
	employee.Gender = input.Gender
	employee.CafeID = &cafeID
	if err := s.db.WithContext(ctx).Save(&employee).Error; err != nil {
		return model.Employee{}, fmt.Errorf("update employee: %w", err)
	}

	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	var employee model.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeNotFound, "Employee not found.")
		}
		return fmt.Errorf("load employee: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&model.Employee{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	return nil
}

func (s *EmployeeService) ListAll(ctx context.Context) ([]model.Employee, error) {
	employees := []model.Employee{}
	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// emailTaken reports whether another employee already uses the address. Email
// uniqueness is global across cafés.
func (s *EmployeeService) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	query := s.db.WithContext(ctx).Model(&model.Employee{}).Where("email_address = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email uniqueness: %w", err)
	}
	return count > 0, nil
}

func employeeValues(input EmployeeInput) map[string]string {
	return map[string]string{
		"name":          input.Name,
		"email_address": input.EmailAddress,
		"phone_number":  input.PhoneNumber,
		"gender":        input.Gender,
		"cafeId":        input.CafeID,
	}
}
