package service

import (
	"context"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
)

// EnrolledClassLookup joins enrollments with their classes and instructors.
type EnrolledClassLookup interface {
	EnrolledClasses(ctx context.Context, email string) ([]model.EnrolledClass, error)
}

// EnrollmentService handles enrollment reads.
type EnrollmentService struct {
	enrollments EnrolledClassLookup
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollments EnrolledClassLookup) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments}
}

// EnrolledClasses lists the classes a user is enrolled in.
func (s *EnrollmentService) EnrolledClasses(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	return s.enrollments.EnrolledClasses(ctx, email)
}
