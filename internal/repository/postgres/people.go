package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
)

// EntrepreneurRepository handles persistence for the business directory.
type EntrepreneurRepository struct {
	db *pgxpool.Pool
}

// List returns all directory entries, newest members first.
func (r *EntrepreneurRepository) List(ctx context.Context) ([]model.Entrepreneur, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, business_name, category, description, contact_info,
		        join_date, created_at
		 FROM entrepreneurs
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list entrepreneurs: %w", err)
	}
	defer rows.Close()

	var entries []model.Entrepreneur
	for rows.Next() {
		var e model.Entrepreneur
		if err := rows.Scan(&e.ID, &e.Name, &e.BusinessName, &e.Category,
			&e.Description, &e.ContactInfo, &e.JoinDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entrepreneur: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID returns a single directory entry or ErrNotFound.
func (r *EntrepreneurRepository) GetByID(ctx context.Context, id string) (*model.Entrepreneur, error) {
	var e model.Entrepreneur
	err := r.db.QueryRow(ctx,
		`SELECT id, name, business_name, category, description, contact_info,
		        join_date, created_at
		 FROM entrepreneurs WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.BusinessName, &e.Category, &e.Description,
		&e.ContactInfo, &e.JoinDate, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get entrepreneur: %w", err)
	}
	return &e, nil
}

// Create inserts a new directory entry.
func (r *EntrepreneurRepository) Create(ctx context.Context, e *model.Entrepreneur) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO entrepreneurs (id, name, business_name, category,
		 description, contact_info, join_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Name, e.BusinessName, e.Category,
		e.Description, e.ContactInfo, e.JoinDate, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entrepreneur: %w", err)
	}
	return nil
}

// UnemployedRepository handles persistence for the unemployment registry.
type UnemployedRepository struct {
	db *pgxpool.Pool
}

// List returns all registry entries, newest registrations first.
func (r *UnemployedRepository) List(ctx context.Context) ([]model.UnemployedPerson, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, age, skills, education, contact_info,
		        registration_date, status, created_at
		 FROM unemployed_people
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list unemployed people: %w", err)
	}
	defer rows.Close()

	var people []model.UnemployedPerson
	for rows.Next() {
		var p model.UnemployedPerson
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Skills, &p.Education,
			&p.ContactInfo, &p.RegistrationDate, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unemployed person: %w", err)
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

// GetByID returns a single registry entry or ErrNotFound.
func (r *UnemployedRepository) GetByID(ctx context.Context, id string) (*model.UnemployedPerson, error) {
	var p model.UnemployedPerson
	err := r.db.QueryRow(ctx,
		`SELECT id, name, age, skills, education, contact_info,
		        registration_date, status, created_at
		 FROM unemployed_people WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Age, &p.Skills, &p.Education,
		&p.ContactInfo, &p.RegistrationDate, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get unemployed person: %w", err)
	}
	return &p, nil
}

// Create inserts a new registry entry.
func (r *UnemployedRepository) Create(ctx context.Context, p *model.UnemployedPerson) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO unemployed_people (id, name, age, skills, education,
		 contact_info, registration_date, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Name, p.Age, p.Skills, p.Education,
		p.ContactInfo, p.RegistrationDate, p.Status, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unemployed person: %w", err)
	}
	return nil
}

// UpdateStatus sets the status field and returns the updated entry.
// No other field is mutated.
func (r *UnemployedRepository) UpdateStatus(ctx context.Context, id string, status model.EmploymentStatus) (*model.UnemployedPerson, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE unemployed_people SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
