package services

import (
	"context"
	"mime/multipart"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/filestorage"
	"github.com/campushub/placement-portal/internal/pkg/validation"
)

// MaxResumeSize is the upload limit for resume files.
const MaxResumeSize = 5 << 20 // 5 MiB

// resumeSubdir is the storage subdirectory for uploaded resumes.
const resumeSubdir = "resumes"

// allowedResumeTypes are the accepted resume mime types: PDF and Word.
var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// StudentService handles student profiles, resumes and filtering
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, admissionNumber string) (*models.Student, error)
	UpdateStudent(ctx context.Context, admissionNumber string, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, admissionNumber string) error
	UploadResume(ctx context.Context, admissionNumber string, file *multipart.FileHeader) (string, error)
	SetResumeLink(ctx context.Context, admissionNumber, link string) error
	GetResumeLink(ctx context.Context, admissionNumber string) (*dto.ResumeLinkResponse, error)
	FilterStudents(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	fileStorage filestorage.FileStorage
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, fileStorage filestorage.FileStorage) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		fileStorage: fileStorage,
	}
}

// GetAllStudents retrieves all students ordered by first name.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetStudent retrieves a student by admission number.
func (s *studentServiceImpl) GetStudent(ctx context.Context, admissionNumber string) (*models.Student, error) {
	return s.studentRepo.GetByAdmissionNumber(ctx, admissionNumber)
}

// UpdateStudent overwrites the mutable field set of a student and returns
// the post-update row. The admission number is immutable.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, admissionNumber string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		AdmissionNumber:   admissionNumber,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		FatherName:        req.FatherName,
		MotherName:        req.MotherName,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		MobileNo:          req.MobileNo,
		EmailID:           req.EmailID,
		CollegeEmailID:    req.CollegeEmailID,
		Department:        req.Department,
		Batch:             req.Batch,
		Course:            req.Course,
		UniversityRollNo:  req.UniversityRollNo,
		EnrollmentNo:      req.EnrollmentNo,
		CGPA:              req.CGPA,
		TenthPercentage:   req.TenthPercentage,
		TwelfthPercentage: req.TwelfthPercentage,
		BacklogsCount:     req.BacklogsCount,
		Address:           req.Address,
		ResumeLink:        req.ResumeLink,
		PhotographLink:    req.PhotographLink,
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByAdmissionNumber(ctx, admissionNumber)
}

// DeleteStudent removes a student row.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, admissionNumber string) error {
	return s.studentRepo.Delete(ctx, admissionNumber)
}

// UploadResume validates and stores a resume file, then records its
// accessible path as the student's resume link. The stored filename is a
// generated identifier; the original name is kept only as metadata.
func (s *studentServiceImpl) UploadResume(ctx context.Context, admissionNumber string, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.NewBadRequestError("please select a file to upload")
	}

	if !allowedResumeTypes[file.Header.Get("Content-Type")] {
		return "", apperrors.ErrInvalidFileType
	}

	if file.Size > MaxResumeSize {
		return "", apperrors.ErrFileTooLarge
	}

	// Existence check up front so a missing student doesn't leave an
	// orphaned file behind.
	if _, err := s.studentRepo.GetByAdmissionNumber(ctx, admissionNumber); err != nil {
		return "", err
	}

	path, err := s.fileStorage.SaveFileWithPath(file, resumeSubdir)
	if err != nil {
		return "", err
	}

	if err := s.studentRepo.UpdateResumeLink(ctx, admissionNumber, path, file.Filename); err != nil {
		_ = s.fileStorage.DeleteFile(path)
		return "", err
	}

	return path, nil
}

// SetResumeLink records a hosted resume link for a student.
func (s *studentServiceImpl) SetResumeLink(ctx context.Context, admissionNumber, link string) error {
	if !validation.IsValidResumeLink(link) {
		return apperrors.NewBadRequestError("please provide a valid drive shareable link")
	}

	return s.studentRepo.UpdateResumeLink(ctx, admissionNumber, link, "")
}

// GetResumeLink reports the stored resume link for a student.
func (s *studentServiceImpl) GetResumeLink(ctx context.Context, admissionNumber string) (*dto.ResumeLinkResponse, error) {
	link, err := s.studentRepo.GetResumeLink(ctx, admissionNumber)
	if err != nil {
		return nil, err
	}

	return &dto.ResumeLinkResponse{
		ResumeLink: link,
		HasResume:  link != "",
	}, nil
}

// FilterStudents retrieves students matching the supplied conjunctive
// filters, ordered by first name.
func (s *studentServiceImpl) FilterStudents(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error) {
	return s.studentRepo.Filter(ctx, filter)
}
