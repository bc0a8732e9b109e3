package dto

import "github.com/campushub/placement-portal/internal/app/models"

// LoginRequest represents login credentials. The role decides which store
// the lookup targets.
type LoginRequest struct {
	UserID   string      `json:"userId" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents a successful login payload: the token plus a
// role-shaped public projection of the user row.
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  interface{}   `json:"user"`
}

// StudentProfile is the public projection of a student row returned on login.
type StudentProfile struct {
	AdmissionNumber  string  `json:"studentAdmissionNumber"`
	FirstName        string  `json:"studentFirstName"`
	LastName         string  `json:"studentLastName"`
	EmailID          string  `json:"emailId"`
	Department       string  `json:"department"`
	MobileNo         string  `json:"mobileNo"`
	DateOfBirth      string  `json:"dateOfBirth"`
	PhotographLink   string  `json:"photographLink"`
	UniversityRollNo string  `json:"studentUniversityRollNo"`
	CGPA             float64 `json:"cgpa"`
	Batch            string  `json:"batch"`
	Course           string  `json:"course"`
}

// AdminProfile is the public projection of an admin row.
type AdminProfile struct {
	AdminID     int64  `json:"adminId"`
	AdminName   string `json:"adminName"`
	Email       string `json:"emailAddress"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Department  string `json:"department"`
	DateOfBirth string `json:"dateOfBirth"`
}

// CompanyProfile is the public projection of a company row.
type CompanyProfile struct {
	CompanyID int64  `json:"companyId"`
	Name      string `json:"companyName"`
	HRName    string `json:"hrName"`
	HREmail   string `json:"hrEmail"`
	HRPhone   string `json:"hrPhone"`
}

// NewStudentProfile builds the login projection from a student row.
func NewStudentProfile(s *models.Student) StudentProfile {
	return StudentProfile{
		AdmissionNumber:  s.AdmissionNumber,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		EmailID:          s.EmailID,
		Department:       s.Department,
		MobileNo:         s.MobileNo,
		DateOfBirth:      s.DateOfBirth,
		PhotographLink:   s.PhotographLink,
		UniversityRollNo: s.UniversityRollNo,
		CGPA:             s.CGPA,
		Batch:            s.Batch,
		Course:           s.Course,
	}
}

// NewAdminProfile builds the login projection from an admin row.
func NewAdminProfile(a *models.Admin) AdminProfile {
	return AdminProfile{
		AdminID:     a.ID,
		AdminName:   a.Name,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		City:        a.City,
		Department:  a.Department,
		DateOfBirth: a.DateOfBirth,
	}
}

// NewCompanyProfile builds the login projection from a company row.
func NewCompanyProfile(c *models.Company) CompanyProfile {
	return CompanyProfile{
		CompanyID: c.ID,
		Name:      c.Name,
		HRName:    c.HRName,
		HREmail:   c.HREmail,
		HRPhone:   c.HRPhone,
	}
}

// RegisterStudentRequest represents student self-registration data.
type RegisterStudentRequest struct {
	AdmissionNumber   string  `json:"studentAdmissionNumber" binding:"required"`
	FirstName         string  `json:"studentFirstName" binding:"required"`
	LastName          string  `json:"studentLastName"`
	FatherName        string  `json:"fatherName"`
	MotherName        string  `json:"motherName"`
	DateOfBirth       string  `json:"dateOfBirth"`
	Gender            string  `json:"gender"`
	MobileNo          string  `json:"mobileNo"`
	EmailID           string  `json:"emailId"`
	CollegeEmailID    string  `json:"collegeEmailId"`
	Department        string  `json:"department"`
	Batch             string  `json:"batch"`
	Course            string  `json:"course"`
	UniversityRollNo  string  `json:"studentUniversityRollNo"`
	EnrollmentNo      string  `json:"studentEnrollmentNo"`
	CGPA              float64 `json:"cgpa"`
	TenthPercentage   float64 `json:"tenthPercentage"`
	TwelfthPercentage float64 `json:"twelfthPercentage"`
	Password          string  `json:"password"`
}

// ForgotPasswordRequest identifies the account requesting a reset.
type ForgotPasswordRequest struct {
	UserID string `json:"userId" binding:"required"`
}
