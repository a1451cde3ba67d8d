package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/app/services"
	"github.com/hariz/collegems/internal/middleware"
)

// FacultyController handles faculty admin operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// ListFaculty retrieves all faculty members
// @Summary List faculty
// @Description Returns all faculty records ordered by creation time descending
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Faculty "Faculty retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	members, err := c.facultyService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty member
// @Description Persists a new faculty record; the email is stored lowercase
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} models.Faculty "Faculty created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or duplicate email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email, department, and designation are required"))
		return
	}

	member, err := c.facultyService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

// DeleteFaculty deletes a faculty member by ID
// @Summary Delete a faculty member
// @Description Deletes by identifier; unknown identifiers succeed as a no-op
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.SuccessResponse "Faculty deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid faculty ID"))
		return
	}

	if err := c.facultyService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Faculty deleted"})
}
