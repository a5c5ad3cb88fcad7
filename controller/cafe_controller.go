package controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/chamarasara/cafe-management-backend/apperror"
	"github.com/chamarasara/cafe-management-backend/service"
)

type CafeController struct {
	service service.CafeManager
}

func NewCafeController(svc service.CafeManager) *CafeController {
	return &CafeController{service: svc}
}

type cafeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Location    string `json:"location"`
}

func (r cafeRequest) toInput() service.CafeInput {
	return service.CafeInput{
		Name:        r.Name,
		Description: r.Description,
		Logo:        r.Logo,
		Location:    r.Location,
	}
}

func (ctl *CafeController) GetAllCafes(c *gin.Context) {
	cafes, err := ctl.service.List(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondError(c, err, "Failed to retrieve cafes")
		return
	}

	c.JSON(http.StatusOK, cafes)
}

func (ctl *CafeController) GetEmployeesByCafe(c *gin.Context) {
	employees, err := ctl.service.ListEmployees(c.Request.Context(), c.Param("cafeId"))
	if err != nil {
		respondError(c, err, "An error occurred while retrieving employees.")
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (ctl *CafeController) CreateCafe(c *gin.Context) {
	var req cafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cafe, err := ctl.service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err, "Failed to create cafe")
		return
	}

	c.JSON(http.StatusCreated, cafe)
}

func (ctl *CafeController) UpdateCafe(c *gin.Context) {
	var req cafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cafe, err := ctl.service.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err, "Failed to update cafe.")
		return
	}

	c.JSON(http.StatusOK, cafe)
}

func (ctl *CafeController) DeleteCafe(c *gin.Context) {
	if err := ctl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete cafe and associated employees.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cafe and associated employees deleted successfully."})
}

// ExportCafes streams the café list, with employee counts, as an .xlsx report.
func (ctl *CafeController) ExportCafes(c *gin.Context) {
	cafes, err := ctl.service.List(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondError(c, err, "Failed to retrieve cafes")
		return
	}

	xl := excelize.NewFile()
	sheet := xl.GetSheetName(0)
	headers := []string{"ID", "Name", "Description", "Location", "Employees"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = xl.SetCellValue(sheet, cell, header)
	}
	for i, cafe := range cafes {
		row := i + 2
		_ = xl.SetCellValue(sheet, fmt.Sprintf("A%d", row), cafe.ID)
		_ = xl.SetCellValue(sheet, fmt.Sprintf("B%d", row), cafe.Name)
		_ = xl.SetCellValue(sheet, fmt.Sprintf("C%d", row), cafe.Description)
		_ = xl.SetCellValue(sheet, fmt.Sprintf("D%d", row), cafe.Location)
		_ = xl.SetCellValue(sheet, fmt.Sprintf("E%d", row), cafe.EmployeeCount)
	}

	fileName := fmt.Sprintf("cafes-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xl.Write(c.Writer); err != nil {
		log.Printf("failed to write cafes report: %v", err)
	}
}

// respondError maps service errors to the wire format: aggregated field
// errors and duplicate emails as 400, missing entities as 404, everything
// else as a generic 500 with the detail kept server-side.
func respondError(c *gin.Context, err error, fallback string) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		c.JSON(http.StatusBadRequest, gin.H{"errors": apperror.GetFields(err)})
	case apperror.CodeConflict:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case apperror.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
