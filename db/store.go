// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"

	"github.com/danielhkuo/college-site/models"
)

var ErrNotFound = errors.New("record not found")

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
	TypeMongo    = "mongo"
)

// RecordStore persists enquiry and application submissions. Records are
// validated before they reach the store.
type RecordStore interface {
	CreateEnquiry(ctx context.Context, e *models.Enquiry) error
	// ListEnquiries returns all enquiries, newest first.
	ListEnquiries(ctx context.Context) ([]models.Enquiry, error)
	GetEnquiry(ctx context.Context, id string) (models.Enquiry, error)

	CreateApplication(ctx context.Context, a *models.Application) error
	// ListApplications returns all applications, newest first.
	ListApplications(ctx context.Context) ([]models.Application, error)
	GetApplication(ctx context.Context, id string) (models.Application, error)

	Close() error
}
