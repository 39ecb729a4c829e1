package service

import (
	"context"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
)

// ApplicationStore is the instructor application storage.
type ApplicationStore interface {
	Create(ctx context.Context, a *model.InstructorApplication) (model.InsertAck, error)
	GetByEmail(ctx context.Context, email string) (*model.InstructorApplication, error)
}

// ApplicationService handles instructor applications.
type ApplicationService struct {
	applications ApplicationStore
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applications ApplicationStore) *ApplicationService {
	return &ApplicationService{applications: applications}
}

// Apply stores an application to become an instructor.
func (s *ApplicationService) Apply(ctx context.Context, req *model.ApplyInstructorRequest) (model.InsertAck, error) {
	return s.applications.Create(ctx, &model.InstructorApplication{
		Name:       req.Name,
		Email:      req.Email,
		Experience: req.Experience,
		PhotoURL:   req.PhotoURL,
		Date:       time.Now().UTC(),
	})
}

// GetByEmail returns the application submitted with email.
func (s *ApplicationService) GetByEmail(ctx context.Context, email string) (*model.InstructorApplication, error) {
	return s.applications.GetByEmail(ctx, email)
}
