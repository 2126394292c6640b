// Package postgres implements the repository contracts on PostgreSQL.
// It uses pgx directly (no ORM) for transparency and performance.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahalla-hub/community-services/internal/repository"
)

// Store is the PostgreSQL-backed repository.Store.
type Store struct {
	users         *UserRepository
	courses       *CourseRepository
	entrepreneurs *EntrepreneurRepository
	unemployed    *UnemployedRepository
}

// New constructs a Store on top of a pgx connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{
		users:         &UserRepository{db: db},
		courses:       &CourseRepository{db: db},
		entrepreneurs: &EntrepreneurRepository{db: db},
		unemployed:    &UnemployedRepository{db: db},
	}
}

func (s *Store) Users() repository.UserStore                 { return s.users }
func (s *Store) Courses() repository.CourseStore             { return s.courses }
func (s *Store) Entrepreneurs() repository.EntrepreneurStore { return s.entrepreneurs }
func (s *Store) Unemployed() repository.UnemployedStore      { return s.unemployed }
