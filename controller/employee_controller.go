package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/chamarasara/cafe-management-backend/apperror"
	"github.com/chamarasara/cafe-management-backend/service"
)

type EmployeeController struct {
	service service.EmployeeManager
}

func NewEmployeeController(svc service.EmployeeManager) *EmployeeController {
	return &EmployeeController{service: svc}
}

type employeeRequest struct {
	Name         string     `json:"name"`
	EmailAddress string     `json:"email_address"`
	PhoneNumber  string     `json:"phone_number"`
	Gender       string     `json:"gender"`
	CafeID       string     `json:"cafeId"`
	StartDate    *time.Time `json:"startDate"`
}

func (r employeeRequest) toInput() service.EmployeeInput {
	return service.EmployeeInput{
		Name:         r.Name,
		EmailAddress: r.EmailAddress,
		PhoneNumber:  r.PhoneNumber,
		Gender:       r.Gender,
		CafeID:       r.CafeID,
		StartDate:    r.StartDate,
	}
}

func (ctl *EmployeeController) GetAllEmployees(c *gin.Context) {
	employees, err := ctl.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "An error occurred while retrieving employees.")
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (ctl *EmployeeController) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	employee, err := ctl.service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err, "Error creating employee")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Employee created successfully",
		"employee": employee,
	})
}

func (ctl *EmployeeController) UpdateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	employee, err := ctl.service.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err, "An error occurred while updating the employee.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Employee updated successfully.",
		"employee": employee,
	})
}

func (ctl *EmployeeController) DeleteEmployee(c *gin.Context) {
	if err := ctl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "An error occurred while deleting the employee.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully."})
}

// BulkImportEmployees creates employees from an uploaded .xlsx file. Row
// layout: header row, then name | email_address | phone_number | gender |
// cafeId. Rows that fail validation or duplicate an email are skipped and
// reported, not fatal.
func (ctl *EmployeeController) BulkImportEmployees(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
		return
	}
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel must have at least one row of data"})
		return
	}

	created := 0
	var skipped []gin.H
	for i, row := range rows[1:] {
		rowNumber := i + 2

		if len(row) < 5 {
			skipped = append(skipped, gin.H{"row": rowNumber, "reason": "incomplete row"})
			continue
		}

		input := service.EmployeeInput{
			Name:         row[0],
			EmailAddress: row[1],
			PhoneNumber:  row[2],
			Gender:       row[3],
			CafeID:       row[4],
		}
		if _, err := ctl.service.Create(c.Request.Context(), input); err != nil {
			skipped = append(skipped, gin.H{"row": rowNumber, "reason": importFailureReason(err)})
			continue
		}
		created++
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Imported %d employees", created),
		"created": created,
		"skipped": skipped,
	})
}

func importFailureReason(err error) string {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		fields := apperror.GetFields(err)
		if len(fields) > 0 {
			return fields[0].Message
		}
		return "validation failed"
	case apperror.CodeConflict:
		return err.Error()
	default:
		return "could not create employee"
	}
}
