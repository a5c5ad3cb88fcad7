package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/chamarasara/cafe-management-backend/apperror"
	"github.com/chamarasara/cafe-management-backend/model"
	"github.com/chamarasara/cafe-management-backend/validation"
)

var cafeRules = []validation.Rule{
	{Field: "name", Message: "Name is required.", Valid: validation.NotEmpty},
	{Field: "location", Message: "Location is required.", Valid: validation.NotEmpty},
}

type CafeService struct {
	db *gorm.DB
}

func NewCafeService(db *gorm.DB) *CafeService {
	return &CafeService{db: db}
}

// List returns every café, optionally narrowed to locations containing the
// given substring (case-sensitive), annotated with employee counts and sorted
// by count descending. The tie-break preserves retrieval order.
func (s *CafeService) List(ctx context.Context, location string) ([]CafeDTO, error) {
	var cafes []model.Cafe
	if err := s.db.WithContext(ctx).Preload("Employees").Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("list cafes: %w", err)
	}

	result := make([]CafeDTO, 0, len(cafes))
	for _, cafe := range cafes {
		// SQL LIKE is case-insensitive on SQLite, so the substring match
		// happens here instead.
		if location != "" && !strings.Contains(cafe.Location, location) {
			continue
		}
		if cafe.Employees == nil {
			cafe.Employees = []model.Employee{}
		}
		result = append(result, CafeDTO{
			Cafe:          cafe,
			EmployeeCount: len(cafe.Employees),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].EmployeeCount > result[j].EmployeeCount
	})

	return result, nil
}

// ListEmployees returns the café's staff, most-tenured first. An existing café
// with no staff yields an empty slice, not an error.
func (s *CafeService) ListEmployees(ctx context.Context, cafeID string) ([]model.Employee, error) {
	if err := s.ensureCafeExists(ctx, cafeID); err != nil {
		return nil, err
	}

	employees := []model.Employee{}
	if err := s.db.WithContext(ctx).
		Where("cafe_id = ?", cafeID).
		Order("days_worked DESC, id ASC").
		Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list cafe employees: %w", err)
	}

	return employees, nil
}

func (s *CafeService) Create(ctx context.Context, input CafeInput) (CafeDTO, error) {
	if failed := validation.Apply(cafeRules, cafeValues(input)); failed != nil {
		return CafeDTO{}, apperror.NewValidation(failed)
	}

	cafe := model.Cafe{
		Name:        input.Name,
		Description: input.Description,
		Logo:        input.Logo,
		Location:    input.Location,
	}
	if err := s.db.WithContext(ctx).Create(&cafe).Error; err != nil {
		return CafeDTO{}, fmt.Errorf("create cafe: %w", err)
	}

	cafe.Employees = []model.Employee{}
	return CafeDTO{Cafe: cafe}, nil
}

// Update overwrites all four mutable fields unconditionally; omitted fields
// are written as empty.
func (s *CafeService) Update(ctx context.Context, id string, input CafeInput) (CafeDTO, error) {
	if failed := validation.Apply(cafeRules, cafeValues(input)); failed != nil {
		return CafeDTO{}, apperror.NewValidation(failed)
	}

	var cafe model.Cafe
	if err := s.db.WithContext(ctx).First(&cafe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CafeDTO{}, apperror.New(apperror.CodeNotFound, "Cafe not found.")
		}
		return CafeDTO{}, fmt.Errorf("load cafe: %w", err)
	}

	cafe.Name = input.Name
	cafe.Description = input.Description
	cafe.Logo = input.Logo
	cafe.Location = input.Location
	if err := s.db.WithContext(ctx).Save(&cafe).Error; err != nil {
		return CafeDTO{}, fmt.Errorf("update cafe: %w", err)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Employee{}).Where("cafe_id = ?", cafe.ID).Count(&count).Error; err != nil {
		return CafeDTO{}, fmt.Errorf("count cafe employees: %w", err)
	}

	cafe.Employees = []model.Employee{}
	return CafeDTO{Cafe: cafe, EmployeeCount: int(count)}, nil
}

// Delete removes the café and all employees referencing it in one
// transaction, so no employee ever survives pointing at a deleted café.
func (s *CafeService) Delete(ctx context.Context, id string) error {
	if err := s.ensureCafeExists(ctx, id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cafe_id = ?", id).Delete(&model.Employee{}).Error; err != nil {
			return fmt.Errorf("delete cafe employees: %w", err)
		}
		if err := tx.Delete(&model.Cafe{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete cafe: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *CafeService) ensureCafeExists(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Cafe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check cafe existence: %w", err)
	}
	if count == 0 {
		return apperror.New(apperror.CodeNotFound, "Cafe not found.")
	}
	return nil
}

func cafeValues(input CafeInput) map[string]string {
	return map[string]string{
		"name":        input.Name,
		"description": input.Description,
		"logo":        input.Logo,
		"location":    input.Location,
	}
}
