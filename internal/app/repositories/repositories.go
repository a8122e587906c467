package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	DeadlineRepository   *DeadlineRepository
	DepartmentRepository *DepartmentRepository
	RestoRepository      *RestoRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool, lgr zerolog.Logger) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db, lgr),
		CourseRepository:     NewCourseRepository(db, lgr),
		DeadlineRepository:   NewDeadlineRepository(db, lgr),
		DepartmentRepository: NewDepartmentRepository(db, lgr),
		RestoRepository:      NewRestoRepository(db, lgr),
	}
}
