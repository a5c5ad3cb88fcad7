package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamarasara/cafe-management-backend/apperror"
	"github.com/chamarasara/cafe-management-backend/model"
)

func validEmployeeInput(cafeID string) EmployeeInput {
	return EmployeeInput{
		Name:         "John Doe",
		EmailAddress: "john.doe@example.com",
		PhoneNumber:  "91234567",
		Gender:       "Male",
		CafeID:       cafeID,
	}
}

func TestEmployeeCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)

	cafe := createCafe(t, db, "Cafe One", "Downtown")

	employee, err := svc.Create(context.Background(), validEmployeeInput(cafe.ID))
	require.NoError(t, err)

	assert.Regexp(t, `^UI[A-Z0-9]{7}$`, employee.ID)
	assert.Equal(t, "John Doe", employee.Name)
	assert.Equal(t, "john.doe@example.com", employee.EmailAddress)
	require.NotNil(t, employee.CafeID)
	assert.Equal(t, cafe.ID, *employee.CafeID)
	assert.WithinDuration(t, time.Now(), employee.StartDate, time.Minute)
	assert.Equal(t, 0, employee.DaysWorked)
}

func TestEmployeeCreateWithSuppliedStartDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)

	cafe := createCafe(t, db, "Cafe One", "Downtown")
	start := time.Now().AddDate(0, 0, -5)

	input := validEmployeeInput(cafe.ID)
	input.StartDate = &start

	employee, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.WithinDuration(t, start, employee.StartDate, time.Second)
	assert.Equal(t, 5, employee.DaysWorked)
}

func TestEmployeeCreateAcceptsOpaqueCafeID(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)

	// The café reference is stored as-is; no UUID shape is imposed on it.
	employee, err := svc.Create(context.Background(), validEmployeeInput("cafe-a"))
	require.NoError(t, err)
	require.NotNil(t, employee.CafeID)
	assert.Equal(t, "cafe-a", *employee.CafeID)

	var stored model.Employee
	require.NoError(t, db.First(&stored, "id = ?", employee.ID).Error)
	require.NotNil(t, stored.CafeID)
	assert.Equal(t, "cafe-a", *stored.CafeID)
}

func TestEmployeeCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)

	_, err := svc.Create(context.Background(), EmployeeInput{
		EmailAddress: "invalid.email",
		PhoneNumber:  "91234567",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
	assert.NotEmpty(t, apperror.GetFields(err))
}

func TestEmployeeCreateRejectsBadPhoneNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)

	input := validEmployeeInput("some-cafe")
	input.PhoneNumber = "12345678"

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))

	fields := apperror.GetFields(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "phone_number", fields[0].Field)
	assert.Equal(t, "Phone number must start with 8 or 9 and be 8 digits long.", fields[0].Message)
}

func TestEmployeeCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	first := createCafe(t, db, "Cafe One", "Downtown")
	second := createCafe(t, db, "Cafe Two", "Uptown")

	_, err := svc.Create(ctx, validEmployeeInput(first.ID))
	require.NoError(t, err)

	// Same address in a different café still conflicts: uniqueness is global.
	duplicate := validEmployeeInput(second.ID)
	duplicate.Name = "John Smith"
	duplicate.PhoneNumber = "98765432"

	_, err = svc.Create(ctx, duplicate)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
	assert.Equal(t, "An employee with this email already exists in another cafe.", err.Error())
}

func TestEmployeeUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	cafe := createCafe(t, db, "Cafe One", "Downtown")
	other := createCafe(t, db, "Cafe Two", "Uptown")
	employee := createEmployee(t, db, "before@example.com", cafe.ID, time.Now().AddDate(0, 0, -7))

	updated, err := svc.Update(ctx, employee.ID, EmployeeInput{
		Name:         "Renamed",
		EmailAddress: "after@example.com",
		PhoneNumber:  "81112222",
		Gender:       "Male",
		CafeID:       other.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, employee.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "after@example.com", updated.EmailAddress)
	require.NotNil(t, updated.CafeID)
	assert.Equal(t, other.ID, *updated.CafeID)
	assert.Equal(t, 7, updated.DaysWorked)
}

func TestEmployeeUpdateRecomputesDaysWorkedIdempotently(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	cafe := createCafe(t, db, "Cafe One", "Downtown")
	employee := createEmployee(t, db, "tenure@example.com", cafe.ID, time.Now().AddDate(0, 0, -12))

	// Pre-set a bogus value; the save must overwrite it.
	require.NoError(t, db.Model(&model.Employee{}).Where("id = ?", employee.ID).Update("days_worked", 999).Error)

	input := EmployeeInput{
		Name:         employee.Name,
		EmailAddress: employee.EmailAddress,
		PhoneNumber:  employee.PhoneNumber,
		Gender:       employee.Gender,
		CafeID:       cafe.ID,
	}

	first, err := svc.Update(ctx, employee.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 12, first.DaysWorked)

	second, err := svc.Update(ctx, employee.ID, input)
	require.NoError(t, err)
	assert.Equal(t, first.DaysWorked, second.DaysWorked)
}

func TestEmployeeUpdateUnknownEmployee(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)

	_, err := svc.Update(context.Background(), "UIMISSING", validEmployeeInput("some-cafe"))
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	assert.Equal(t, "Employee not found.", err.Error())
}

func TestEmployeeDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	cafe := createCafe(t, db, "Cafe One", "Downtown")
	employee := createEmployee(t, db, "gone@example.com", cafe.ID, time.Now())

	require.NoError(t, svc.Delete(ctx, employee.ID))

	var count int64
	require.NoError(t, db.Model(&model.Employee{}).Where("id = ?", employee.ID).Count(&count).Error)
	assert.Zero(t, count)

	err := svc.Delete(ctx, employee.ID)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
}

func TestEmployeeListAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	employees, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
	assert.NotNil(t, employees)

	cafe := createCafe(t, db, "Cafe One", "Downtown")
	createEmployee(t, db, "a@example.com", cafe.ID, time.Now())
	createEmployee(t, db, "b@example.com", "", time.Now())

	employees, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}
