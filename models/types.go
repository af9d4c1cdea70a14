package models

import (
	"strings"
	"time"
)

// Request types

type EnquiryRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Normalize trims every field and lowercases the email address
func (r *EnquiryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

type ApplicationRequest struct {
	FullName              string `json:"fullName" validate:"required,max=200"`
	Email                 string `json:"email" validate:"required,email,max=320"`
	Phone                 string `json:"phone" validate:"required,min=7,max=20"`
	Course                string `json:"course" validate:"required,max=200"`
	DateOfBirth           string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address               string `json:"address" validate:"max=1000"`
	PreviousQualification string `json:"previousQualification" validate:"max=500"`
	Message               string `json:"message" validate:"max=5000"`
}

// Normalize trims every field and lowercases the email address
func (r *ApplicationRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Course = strings.TrimSpace(r.Course)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.Address = strings.TrimSpace(r.Address)
	r.PreviousQualification = strings.TrimSpace(r.PreviousQualification)
	r.Message = strings.TrimSpace(r.Message)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateEnquiryResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EnquiryID string `json:"enquiryId"`
}

type CreateApplicationResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

type ListResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

type ItemResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type CountResponse struct {
	Success bool  `json:"success"`
	Count   int64 `json:"count"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Domain types

type Enquiry struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Subject     string    `json:"subject" bson:"subject"`
	Message     string    `json:"message" bson:"message"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}

type Application struct {
	ID                    string    `json:"id" bson:"_id"`
	FullName              string    `json:"fullName" bson:"fullName"`
	Email                 string    `json:"email" bson:"email"`
	Phone                 string    `json:"phone" bson:"phone"`
	Course                string    `json:"course" bson:"course"`
	DateOfBirth           string    `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Address               string    `json:"address,omitempty" bson:"address,omitempty"`
	PreviousQualification string    `json:"previousQualification,omitempty" bson:"previousQualification,omitempty"`
	Message               string    `json:"message,omitempty" bson:"message,omitempty"`
	SubmittedAt           time.Time `json:"submittedAt" bson:"submittedAt"`
}

// VisitCounter is a named counter; exactly one exists per key
type VisitCounter struct {
	Key   string `json:"key" bson:"key"`
	Count int64  `json:"count" bson:"count"`
}

// Error response

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}
