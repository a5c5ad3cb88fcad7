package route

import (
	"github.com/gin-gonic/gin"

	"github.com/chamarasara/cafe-management-backend/controller"
)

// Setup registers the API surface.
func Setup(router *gin.Engine, cafes *controller.CafeController, employees *controller.EmployeeController) {
	api := router.Group("/api")
	{
		api.GET("/cafes", cafes.GetAllCafes)
		api.GET("/cafes/export", cafes.ExportCafes)
		api.GET("/cafes/:cafeId/employees", cafes.GetEmployeesByCafe)
		api.POST("/cafe", cafes.CreateCafe)
		api.PUT("/cafe/:id", cafes.UpdateCafe)
		api.DELETE("/cafe/:id", cafes.DeleteCafe)

		api.GET("/employees", employees.GetAllEmployees)
		api.POST("/employees/import", employees.BulkImportEmployees)
		api.POST("/employee", employees.CreateEmployee)
		api.PUT("/employee/:id", employees.UpdateEmployee)
		api.DELETE("/employee/:id", employees.DeleteEmployee)
	}
}
