package service

import (
	"context"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the user storage the service needs.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (model.InsertAck, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateUserRequest) (model.UpdateAck, error)
	Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteAck, error)
}

// ListingInvalidator drops cached listings.
type ListingInvalidator interface {
	Invalidate(ctx context.Context, keys ...string)
}

// UserService handles user business logic.
type UserService struct {
	users UserStore
	cache ListingInvalidator
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, cache ListingInvalidator) *UserService {
	return &UserService{users: users, cache: cache}
}

// Register creates a student account.
func (s *UserService) Register(ctx context.Context, req *model.CreateUserRequest) (model.InsertAck, error) {
	u := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     model.RoleStudent,
		Gender:   req.Gender,
		Address:  req.Address,
		Phone:    req.Phone,
		About:    req.About,
		Skills:   req.Skills,
	}
	return s.users.Create(ctx, u)
}

// List retrieves all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Instructors retrieves every user with the instructor role.
func (s *UserService) Instructors(ctx context.Context) ([]model.User, error) {
	return s.users.ListByRole(ctx, model.RoleInstructor)
}

// GetByID retrieves a user by hex id.
func (s *UserService) GetByID(ctx context.Context, hexID string) (*model.User, error) {
	id, err := repository.ParseObjectID(hexID)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// Update replaces a user's profile fields.
func (s *UserService) Update(ctx context.Context, hexID string, req *model.UpdateUserRequest) (model.UpdateAck, error) {
	id, err := repository.ParseObjectID(hexID)
	if err != nil {
		return model.UpdateAck{}, err
	}
	ack, err := s.users.Update(ctx, id, req)
	if err != nil {
		return ack, err
	}
	s.cache.Invalidate(ctx, config.CacheKey.PopularInstructorsKey())
	return ack, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, hexID string) (model.DeleteAck, error) {
	id, err := repository.ParseObjectID(hexID)
	if err != nil {
		return model.DeleteAck{}, err
	}
	ack, err := s.users.Delete(ctx, id)
	if err != nil {
		return ack, err
	}
	s.cache.Invalidate(ctx, config.CacheKey.PopularInstructorsKey())
	return ack, nil
}
