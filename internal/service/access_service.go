package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
)

// Role gate outcomes. Both deny access; they are kept apart so callers can log them distinctly.
var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrForbidden       = errors.New("role not permitted")
)

// RoleLookup resolves the stored role of a subject by email.
type RoleLookup interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AccessService decides whether a verified identity may continue.
type AccessService struct {
	users RoleLookup
}

// NewAccessService creates a new AccessService.
func NewAccessService(users RoleLookup) *AccessService {
	return &AccessService{users: users}
}

// Authorize permits only when the stored role of email equals required.
func (s *AccessService) Authorize(ctx context.Context, email string, required model.Role) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubjectNotFound
		}
		return fmt.Errorf("lookup role: %w", err)
	}
	if u == nil {
		return ErrSubjectNotFound
	}
	if u.Role != required {
		return fmt.Errorf("%w: have %q, need %q", ErrForbidden, u.Role, required)
	}
	return nil
}
