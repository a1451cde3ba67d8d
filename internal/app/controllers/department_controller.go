package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/app/services"
	"github.com/hariz/collegems/internal/middleware"
)

// DepartmentController handles department admin operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// ListDepartments retrieves all departments
// @Summary List departments
// @Description Returns all department records ordered by creation time descending
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Department "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Description Persists a new department record; the code is stored uppercase
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} models.Department "Department created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or duplicate name/code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name and code are required"))
		return
	}

	department, err := c.departmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, department)
}

// DeleteDepartment deletes a department by ID
// @Summary Delete a department
// @Description Deletes by identifier; unknown identifiers succeed as a no-op
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.SuccessResponse "Department deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid department ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid department ID"))
		return
	}

	if err := c.departmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Department deleted"})
}
