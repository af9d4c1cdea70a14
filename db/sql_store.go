// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/college-site/models"
)

// SQLStore implements RecordStore on Postgres or SQLite.
type SQLStore struct {
	db *sql.DB
}

var _ RecordStore = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// DB exposes the connection so the counter store can share it
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func stampRecord(id *string, submittedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if submittedAt.IsZero() {
		*submittedAt = time.Now().UTC()
	}
}

func (s *SQLStore) CreateEnquiry(ctx context.Context, e *models.Enquiry) error {
	stampRecord(&e.ID, &e.SubmittedAt)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO enquiry (id, name, email, subject, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, e.Name, e.Email, e.Subject, e.Message, e.SubmittedAt)
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

func (s *SQLStore) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, submitted_at
		FROM enquiry
		ORDER BY submitted_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := []models.Enquiry{}
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Subject, &e.Message, &e.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enquiries: %w", err)
	}
	return enquiries, nil
}

func (s *SQLStore) GetEnquiry(ctx context.Context, id string) (models.Enquiry, error) {
	var e models.Enquiry
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, subject, message, submitted_at
		FROM enquiry WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.Email, &e.Subject, &e.Message, &e.SubmittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Enquiry{}, ErrNotFound
	}
	if err != nil {
		return models.Enquiry{}, fmt.Errorf("query enquiry: %w", err)
	}
	return e, nil
}

func (s *SQLStore) CreateApplication(ctx context.Context, a *models.Application) error {
	stampRecord(&a.ID, &a.SubmittedAt)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO application (id, full_name, email, phone, course, date_of_birth,
			address, previous_qualification, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, a.ID, a.FullName, a.Email, a.Phone, a.Course, a.DateOfBirth,
		a.Address, a.PreviousQualification, a.Message, a.SubmittedAt)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

const applicationColumns = `id, full_name, email, phone, course, date_of_birth,
	address, previous_qualification, message, submitted_at`

func scanApplication(row interface{ Scan(...any) error }) (models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Course, &a.DateOfBirth,
		&a.Address, &a.PreviousQualification, &a.Message, &a.SubmittedAt)
	return a, err
}

func (s *SQLStore) ListApplications(ctx context.Context) ([]models.Application, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM application
		ORDER BY submitted_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	applications := []models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return applications, nil
}

func (s *SQLStore) GetApplication(ctx context.Context, id string) (models.Application, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM application WHERE id = $1
	`, id)
	a, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Application{}, ErrNotFound
	}
	if err != nil {
		return models.Application{}, fmt.Errorf("query application: %w", err)
	}
	return a, nil
}
