package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository       *StudentRepository
	AdminRepository         *AdminRepository
	CompanyRepository       *CompanyRepository
	EventRepository         *EventRepository
	ParticipationRepository *ParticipationRepository
	MessageRepository       *MessageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:       NewStudentRepository(db),
		AdminRepository:         NewAdminRepository(db),
		CompanyRepository:       NewCompanyRepository(db),
		EventRepository:         NewEventRepository(db),
		ParticipationRepository: NewParticipationRepository(db),
		MessageRepository:       NewMessageRepository(db),
	}
}
