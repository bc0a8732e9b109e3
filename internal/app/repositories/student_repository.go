package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/dberrors"
)

// studentColumns is the full column list scanned into models.Student.
const studentColumns = `
	student_admission_number, student_first_name, student_last_name, father_name, mother_name,
	date_of_birth, gender, mobile_no, email_id, college_email_id, department, batch, course,
	student_university_roll_no, student_enrollment_no, cgpa, tenth_percentage, twelfth_percentage,
	back_logs_count, address, resume_link, resume_file_name, photograph_link, password,
	last_login, created_at, updated_at`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.AdmissionNumber, &s.FirstName, &s.LastName, &s.FatherName, &s.MotherName,
		&s.DateOfBirth, &s.Gender, &s.MobileNo, &s.EmailID, &s.CollegeEmailID,
		&s.Department, &s.Batch, &s.Course, &s.UniversityRollNo, &s.EnrollmentNo,
		&s.CGPA, &s.TenthPercentage, &s.TwelfthPercentage, &s.BacklogsCount,
		&s.Address, &s.ResumeLink, &s.ResumeFileName, &s.PhotographLink, &s.Password,
		&s.LastLoginAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Create inserts a new student row. The admission number primary key makes
// duplicates surface as a unique violation, mapped to ErrStudentAlreadyExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			student_admission_number, student_first_name, student_last_name, father_name, mother_name,
			date_of_birth, gender, mobile_no, email_id, college_email_id, department, batch, course,
			student_university_roll_no, student_enrollment_no, cgpa, tenth_percentage, twelfth_percentage,
			password
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query,
		student.AdmissionNumber, student.FirstName, student.LastName, student.FatherName, student.MotherName,
		student.DateOfBirth, student.Gender, student.MobileNo, student.EmailID, student.CollegeEmailID,
		student.Department, student.Batch, student.Course, student.UniversityRollNo, student.EnrollmentNo,
		student.CGPA, student.TenthPercentage, student.TwelfthPercentage, student.Password,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetAll retrieves all students ordered by first name.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + ` FROM students ORDER BY student_first_name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectStudents(rows)
}

// GetByAdmissionNumber retrieves a student by admission number.
func (r *StudentRepository) GetByAdmissionNumber(ctx context.Context, admissionNumber string) (*models.Student, error) {
	query := `SELECT` + studentColumns + ` FROM students WHERE student_admission_number = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, admissionNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// Update overwrites the mutable field set of a student row.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students SET
			student_first_name = $1, student_last_name = $2, father_name = $3, mother_name = $4,
			date_of_birth = $5, gender = $6, mobile_no = $7, email_id = $8, college_email_id = $9,
			department = $10, batch = $11, course = $12, student_university_roll_no = $13,
			student_enrollment_no = $14, cgpa = $15, tenth_percentage = $16, twelfth_percentage = $17,
			back_logs_count = $18, address = $19, resume_link = $20, photograph_link = $21,
			updated_at = NOW()
		WHERE student_admission_number = $22
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.FatherName, student.MotherName,
		student.DateOfBirth, student.Gender, student.MobileNo, student.EmailID, student.CollegeEmailID,
		student.Department, student.Batch, student.Course, student.UniversityRollNo, student.EnrollmentNo,
		student.CGPA, student.TenthPercentage, student.TwelfthPercentage, student.BacklogsCount,
		student.Address, student.ResumeLink, student.PhotographLink,
		student.AdmissionNumber,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student row. Participation rows referencing the student
// are removed by the cascading foreign key.
func (r *StudentRepository) Delete(ctx context.Context, admissionNumber string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_admission_number = $1`, admissionNumber)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateResumeLink stores the resume link and the original file name (empty
// for hosted drive links).
func (r *StudentRepository) UpdateResumeLink(ctx context.Context, admissionNumber, link, originalName string) error {
	query := `
		UPDATE students SET resume_link = $1, resume_file_name = $2, updated_at = NOW()
		WHERE student_admission_number = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, link, originalName, admissionNumber)
	if err != nil {
		return fmt.Errorf("error updating resume link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetResumeLink retrieves the stored resume link for a student.
func (r *StudentRepository) GetResumeLink(ctx context.Context, admissionNumber string) (string, error) {
	var link string
	err := r.db.QueryRow(ctx,
		`SELECT resume_link FROM students WHERE student_admission_number = $1`,
		admissionNumber).Scan(&link)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrStudentNotFound
		}
		return "", fmt.Errorf("error retrieving resume link: %w", err)
	}

	return link, nil
}

// BuildFilterQuery builds the conjunctive WHERE clause for the optional
// student filters. Returned args line up with the $n placeholders.
func BuildFilterQuery(filter dto.StudentFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Department != nil {
		args = append(args, *filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.MinCGPA != nil {
		args = append(args, *filter.MinCGPA)
		conditions = append(conditions, fmt.Sprintf("cgpa >= $%d", len(args)))
	}
	if filter.MaxBacklogs != nil {
		args = append(args, *filter.MaxBacklogs)
		conditions = append(conditions, fmt.Sprintf("back_logs_count <= $%d", len(args)))
	}
	if filter.Batch != nil {
		args = append(args, *filter.Batch)
		conditions = append(conditions, fmt.Sprintf("batch = $%d", len(args)))
	}

	query := `SELECT` + studentColumns + ` FROM students`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY student_first_name ASC"

	return query, args
}

// Filter retrieves students matching the supplied conjunctive filters.
func (r *StudentRepository) Filter(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error) {
	query, args := BuildFilterQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectStudents(rows)
}

// UpdateLastLogin stamps the student's last login time.
func (r *StudentRepository) UpdateLastLogin(ctx context.Context, admissionNumber string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE students SET last_login = NOW() WHERE student_admission_number = $1`,
		admissionNumber)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// Count returns the number of student rows.
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
