package service

import (
	"context"
	"fmt"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
)

// ClassCounter counts classes by status. An empty status counts all classes.
type ClassCounter interface {
	Count(ctx context.Context, status model.ClassStatus) (int64, error)
}

// RoleCounter counts users holding a role.
type RoleCounter interface {
	CountByRole(ctx context.Context, role model.Role) (int64, error)
}

// EnrollmentCounter counts enrollment records.
type EnrollmentCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsService builds the admin dashboard summary.
type StatsService struct {
	classes     ClassCounter
	users       RoleCounter
	enrollments EnrollmentCounter
}

// NewStatsService creates a new StatsService.
func NewStatsService(classes ClassCounter, users RoleCounter, enrollments EnrollmentCounter) *StatsService {
	return &StatsService{classes: classes, users: users, enrollments: enrollments}
}

// AdminStats counts classes per status, instructors and enrollments.
func (s *StatsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	var (
		stats model.AdminStats
		err   error
	)
	if stats.ApprovedClasses, err = s.classes.Count(ctx, model.ClassStatusApproved); err != nil {
		return nil, fmt.Errorf("count approved classes: %w", err)
	}
	if stats.PendingClasses, err = s.classes.Count(ctx, model.ClassStatusPending); err != nil {
		return nil, fmt.Errorf("count pending classes: %w", err)
	}
	if stats.TotalClasses, err = s.classes.Count(ctx, ""); err != nil {
		return nil, fmt.Errorf("count classes: %w", err)
	}
	if stats.Instructors, err = s.users.CountByRole(ctx, model.RoleInstructor); err != nil {
		return nil, fmt.Errorf("count instructors: %w", err)
	}
	if stats.TotalEnrolled, err = s.enrollments.Count(ctx); err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}
	return &stats, nil
}
