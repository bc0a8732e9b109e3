package dto

// UpdateStudentRequest is the full-row overwrite payload for a student.
// The admission number comes from the route and is immutable.
type UpdateStudentRequest struct {
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
	BacklogsCount     int     `json:"backLogsCount"`
	Address           string  `json:"address"`
	ResumeLink        string  `json:"resumeLink"`
	PhotographLink    string  `json:"photographLink"`
}

// StudentFilter carries the optional conjunctive filters for student queries.
// Nil fields are not applied.
type StudentFilter struct {
	Department  *string
	MinCGPA     *float64
	MaxBacklogs *int
	Batch       *string
}

// ResumeLinkRequest carries a hosted resume link.
type ResumeLinkRequest struct {
	DriveLink string `json:"driveLink" binding:"required"`
}

// ResumeLinkResponse reports the stored resume link for a student.
type ResumeLinkResponse struct {
	ResumeLink string `json:"resumeLink"`
	HasResume  bool   `json:"hasResume"`
}

// ResumeUploadResponse reports where an uploaded resume was stored.
type ResumeUploadResponse struct {
	ResumeLink   string `json:"resumeLink"`
	OriginalName string `json:"originalFileName"`
}
