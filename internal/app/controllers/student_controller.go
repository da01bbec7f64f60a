package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kerem/studentroster/internal/app/models"
	"github.com/kerem/studentroster/internal/app/models/dto"
	"github.com/kerem/studentroster/internal/middleware"
)

// StudentManager is the service surface the controller depends on
type StudentManager interface {
	Search(ctx context.Context, query, location string) ([]models.Student, error)
	Create(ctx context.Context, req dto.StudentRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.StudentRequest) error
	Delete(ctx context.Context, id int64) error
}

// StudentController handles student record operations
type StudentController struct {
	studentService StudentManager
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService StudentManager) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// SearchStudents lists student records
// @Summary Search students
// @Description Lists students filtered by a free-text query and/or location, newest update first, capped at 500 rows
// @Tags students
// @Produce json
// @Param query query string false "Case-insensitive substring matched against names, email and phone"
// @Param location query string false "Case-insensitive substring matched against current location"
// @Success 200 {object} dto.StudentListResponse "Matching students"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /students [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	// Absent parameters are empty strings, never an error
	query := ctx.Query("query")
	location := ctx.Query("location")

	students, err := c.studentService.Search(ctx.Request.Context(), query, location)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentListResponse(students))
}

// CreateStudent creates a student record
// @Summary Create a student
// @Description Validates the body and inserts a new student record
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student fields"
// @Success 201 {object} dto.StudentCreatedResponse "Generated id"
// @Failure 400 {object} dto.ErrorResponse "Validation failure, first failing field's message"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	id, err := c.studentService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentCreatedResponse{ID: id})
}

// UpdateStudent overwrites a student record
// @Summary Update a student
// @Description Re-validates and re-supplies every editable field of the record; no partial updates
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Param request body dto.StudentRequest true "Student fields"
// @Success 200 {object} dto.OKResponse "Record updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid id or validation failure"
// @Failure 404 {object} dto.ErrorResponse "No record with this id"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	if err := c.studentService.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Description Deletes the record with the given id
// @Tags students
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Success 200 {object} dto.OKResponse "Record deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "No record with this id"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// parseStudentID reads the id path parameter. The id must be a positive
// integer before the body is even looked at; anything else is answered here
// with a 400.
func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return id, true
}
