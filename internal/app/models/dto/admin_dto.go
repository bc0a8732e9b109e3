package dto

// CreateAdminRequest is the payload for creating an admin account.
type CreateAdminRequest struct {
	AdminName   string `json:"adminName" binding:"required"`
	Email       string `json:"emailAddress" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Department  string `json:"department"`
	DateOfBirth string `json:"dateOfBirth"`
	Password    string `json:"password" binding:"required,min=6"`
}

// UpdateAdminRequest is the profile-update payload. Password changes go
// through ChangePasswordRequest instead.
type UpdateAdminRequest struct {
	AdminName   string `json:"adminName" binding:"required"`
	Email       string `json:"emailAddress" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Department  string `json:"department"`
}

// ChangePasswordRequest carries the current and replacement password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// DashboardCounts holds the aggregate counters for the admin dashboard.
type DashboardCounts struct {
	TotalStudents     int64 `json:"totalStudents"`
	TotalCompanies    int64 `json:"totalCompanies"`
	UpcomingEvents    int64 `json:"upcomingEvents"`
	TotalApplications int64 `json:"totalApplications"`
}

// DashboardStats is the dashboard payload: counters plus the most recent
// applications joined with student and event display fields.
type DashboardStats struct {
	Stats              DashboardCounts     `json:"stats"`
	RecentApplications []RecentApplication `json:"recentApplications"`
}

// RecentApplication is one joined participation row on the dashboard.
type RecentApplication struct {
	StudentAdmissionNumber string `json:"studentAdmissionNumber"`
	StudentFirstName       string `json:"studentFirstName"`
	StudentLastName        string `json:"studentLastName"`
	EventID                int64  `json:"eventId"`
	EventName              string `json:"eventName"`
	OrganizingCompany      string `json:"organizingCompany"`
	Status                 string `json:"participationStatus"`
	CreatedAt              string `json:"createdAt"`
}
