package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/services"
	"github.com/campushub/placement-portal/internal/middleware"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAllStudents lists every student.
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, ""))
}

// GetStudent retrieves one student by admission number.
func (c *StudentController) GetStudent(ctx *gin.Context) {
	admissionNumber := ctx.Param("admissionNumber")

	student, err := c.studentService.GetStudent(ctx.Request.Context(), admissionNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, ""))
}

// UpdateStudent overwrites a student's profile.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	admissionNumber := ctx.Param("admissionNumber")

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), admissionNumber, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated successfully"))
}

// DeleteStudent removes a student row.
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	admissionNumber := ctx.Param("admissionNumber")

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), admissionNumber); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully"))
}

// UploadResume stores an uploaded resume file for a student.
func (c *StudentController) UploadResume(ctx *gin.Context) {
	admissionNumber := ctx.Param("admissionNumber")

	file, err := ctx.FormFile("resume")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Resume file is required")
		errorDetail = errorDetail.WithDetails("Attach the file under the 'resume' form field").WithField("resume")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	path, err := c.studentService.UploadResume(ctx.Request.Context(), admissionNumber, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ResumeUploadResponse{
		ResumeLink:   path,
		OriginalName: file.Filename,
	}, "Resume uploaded successfully"))
}

// SetResumeLink records a hosted drive link as a student's resume.
func (c *StudentController) SetResumeLink(ctx *gin.Context) {
	admissionNumber := ctx.Param("admissionNumber")

	var req dto.ResumeLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Drive link is required")
		errorDetail = errorDetail.WithDetails(err.Error()).WithField("driveLink")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.SetResumeLink(ctx.Request.Context(), admissionNumber, req.DriveLink); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Resume link saved successfully"))
}

// GetResumeLink reports the stored resume link for a student.
func (c *StudentController) GetResumeLink(ctx *gin.Context) {
	admissionNumber := ctx.Param("admissionNumber")

	resume, err := c.studentService.GetResumeLink(ctx.Request.Context(), admissionNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resume, ""))
}

// FilterStudents lists students matching the optional query filters. A
// numeric filter that fails to parse is rejected rather than ignored.
func (c *StudentController) FilterStudents(ctx *gin.Context) {
	var filter dto.StudentFilter

	if department := ctx.Query("department"); department != "" {
		filter.Department = &department
	}

	if batch := ctx.Query("batch"); batch != "" {
		filter.Batch = &batch
	}

	if minCGPAStr := ctx.Query("minCgpa"); minCGPAStr != "" {
		minCGPA, err := strconv.ParseFloat(minCGPAStr, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid minimum CGPA")
			errorDetail = errorDetail.WithDetails("minCgpa must be a valid number").WithField("minCgpa")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.MinCGPA = &minCGPA
	}

	if maxBacklogsStr := ctx.Query("maxBacklogs"); maxBacklogsStr != "" {
		maxBacklogs, err := strconv.Atoi(maxBacklogsStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid backlog limit")
			errorDetail = errorDetail.WithDetails("maxBacklogs must be a valid integer").WithField("maxBacklogs")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.MaxBacklogs = &maxBacklogs
	}

	students, err := c.studentService.FilterStudents(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, ""))
}
