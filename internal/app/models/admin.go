package models

import "time"

// Admin defines the admin model based on the 'admins' table.
type Admin struct {
	ID          int64      `json:"adminId" db:"admin_id"`
	Name        string     `json:"adminName" db:"admin_name"`
	Email       string     `json:"emailAddress" db:"email_address"`
	PhoneNumber string     `json:"phoneNumber" db:"phone_number"`
	City        string     `json:"city" db:"city"`
	Department  string     `json:"department" db:"department"`
	DateOfBirth string     `json:"dateOfBirth" db:"date_of_birth"`
	Password    string     `json:"-" db:"password"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// Company defines the company model based on the 'companies' table.
// Companies have no CRUD surface of their own; rows are seeded or managed
// externally and referenced by logins and events.
type Company struct {
	ID        int64     `json:"companyId" db:"company_id"`
	Name      string    `json:"companyName" db:"company_name"`
	HRName    string    `json:"hrName" db:"hr_name"`
	HREmail   string    `json:"hrEmail" db:"hr_email"`
	HRPhone   string    `json:"hrPhone" db:"hr_phone"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
