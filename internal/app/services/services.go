// Package services contains the business logic between the HTTP controllers
// and the repositories.
//
// Services defined in this package:
// - AuthService: role-based login, student self-registration, password reset stub
// - StudentService: student profile CRUD, resume management and filtering
// - AdminService: admin account management and dashboard statistics
// - EventService: placement event CRUD and filtered views
// - ParticipationService: student-event application lifecycle
// - MessageService: contact-form messages and their review states
package services
