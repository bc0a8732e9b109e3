package models

import "time"

// Student defines the student model based on the 'students' table.
// The admission number is the natural primary key, assigned by the college.
type Student struct {
	AdmissionNumber   string     `json:"studentAdmissionNumber" db:"student_admission_number"`
	FirstName         string     `json:"studentFirstName" db:"student_first_name"`
	LastName          string     `json:"studentLastName" db:"student_last_name"`
	FatherName        string     `json:"fatherName" db:"father_name"`
	MotherName        string     `json:"motherName" db:"mother_name"`
	DateOfBirth       string     `json:"dateOfBirth" db:"date_of_birth"`
	Gender            string     `json:"gender" db:"gender"`
	MobileNo          string     `json:"mobileNo" db:"mobile_no"`
	EmailID           string     `json:"emailId" db:"email_id"`
	CollegeEmailID    string     `json:"collegeEmailId" db:"college_email_id"`
	Department        string     `json:"department" db:"department"`
	Batch             string     `json:"batch" db:"batch"`
	Course            string     `json:"course" db:"course"`
	UniversityRollNo  string     `json:"studentUniversityRollNo" db:"student_university_roll_no"`
	EnrollmentNo      string     `json:"studentEnrollmentNo" db:"student_enrollment_no"`
	CGPA              float64    `json:"cgpa" db:"cgpa"`
	TenthPercentage   float64    `json:"tenthPercentage" db:"tenth_percentage"`
	TwelfthPercentage float64    `json:"twelfthPercentage" db:"twelfth_percentage"`
	BacklogsCount     int        `json:"backLogsCount" db:"back_logs_count"`
	Address           string     `json:"address" db:"address"`
	ResumeLink        string     `json:"resumeLink" db:"resume_link"`
	ResumeFileName    string     `json:"resumeFileName,omitempty" db:"resume_file_name"`
	PhotographLink    string     `json:"photographLink" db:"photograph_link"`
	Password          string     `json:"-" db:"password"`
	LastLoginAt       *time.Time `json:"lastLoginAt,omitempty" db:"last_login"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName returns the display name used in token claims.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
