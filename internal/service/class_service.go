package service

import (
	"context"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PopularLimit is the size of the popular classes and instructors listings.
const PopularLimit = 6

// ClassStore is the class storage the service needs.
type ClassStore interface {
	Create(ctx context.Context, c *model.Class) (model.InsertAck, error)
	List(ctx context.Context, status model.ClassStatus) ([]model.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]model.Class, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Class, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Class, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ClassStatus, reason string) (model.UpdateAck, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, req *model.UpdateClassRequest) (model.UpdateAck, error)
	Popular(ctx context.Context, limit int64) ([]model.Class, error)
	PopularInstructors(ctx context.Context, limit int64) ([]model.PopularInstructor, error)
}

// ClassService handles class business logic.
type ClassService struct {
	classes ClassStore
	cache   *CacheService
}

// NewClassService creates a new ClassService.
func NewClassService(classes ClassStore, cache *CacheService) *ClassService {
	return &ClassService{classes: classes, cache: cache}
}

// Create inserts a class owned by the instructor identified by email. New
// classes always start pending with no enrollments.
func (s *ClassService) Create(ctx context.Context, instructorEmail string, req *model.CreateClassRequest) (model.InsertAck, error) {
	c := &model.Class{
		Name:            req.Name,
		Image:           req.Image,
		Description:     req.Description,
		Price:           req.Price,
		InstructorName:  req.InstructorName,
		InstructorEmail: instructorEmail,
		Status:          model.ClassStatusPending,
		AvailableSeats:  req.AvailableSeats,
		VideoLink:       req.VideoLink,
		Submitted:       time.Now().UTC(),
	}
	ack, err := s.classes.Create(ctx, c)
	if err != nil {
		return ack, err
	}
	s.cache.Invalidate(ctx, config.CacheKey.ListingKeys()...)
	return ack, nil
}

// Approved retrieves the approved classes through the cache.
func (s *ClassService) Approved(ctx context.Context) ([]model.Class, error) {
	return cached(ctx, s.cache, config.CacheKey.ApprovedClassesKey(), func(ctx context.Context) ([]model.Class, error) {
		return s.classes.List(ctx, model.ClassStatusApproved)
	})
}

// All retrieves every class regardless of status.
func (s *ClassService) All(ctx context.Context) ([]model.Class, error) {
	return s.classes.List(ctx, "")
}

// ByInstructor retrieves the classes of one instructor.
func (s *ClassService) ByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return s.classes.ListByInstructor(ctx, email)
}

// GetByID retrieves a class by hex id.
func (s *ClassService) GetByID(ctx context.Context, hexID string) (*model.Class, error) {
	id, err := repository.ParseObjectID(hexID)
	if err != nil {
		return nil, err
	}
	return s.classes.GetByID(ctx, id)
}

// ChangeStatus moderates a class.
func (s *ClassService) ChangeStatus(ctx context.Context, hexID string, req *model.ChangeStatusRequest) (model.UpdateAck, error) {
	id, err := repository.ParseObjectID(hexID)
	if err != nil {
		return model.UpdateAck{}, err
	}
	ack, err := s.classes.UpdateStatus(ctx, id, req.Status, req.Reason)
	if err != nil {
		return ack, err
	}
	s.cache.Invalidate(ctx, config.CacheKey.ListingKeys()...)
	return ack, nil
}

// Update replaces a class's details and resets it to pending.
func (s *ClassService) Update(ctx context.Context, hexID string, req *model.UpdateClassRequest) (model.UpdateAck, error) {
	id, err := repository.ParseObjectID(hexID)
	if err != nil {
		return model.UpdateAck{}, err
	}
	ack, err := s.classes.UpdateDetails(ctx, id, req)
	if err != nil {
		return ack, err
	}
	s.cache.Invalidate(ctx, config.CacheKey.ListingKeys()...)
	return ack, nil
}

// Popular retrieves the most enrolled classes through the cache.
func (s *ClassService) Popular(ctx context.Context) ([]model.Class, error) {
	return cached(ctx, s.cache, config.CacheKey.PopularClassesKey(), s.loadPopular)
}

// PopularInstructors retrieves the instructors with most enrollments through the cache.
func (s *ClassService) PopularInstructors(ctx context.Context) ([]model.PopularInstructor, error) {
	return cached(ctx, s.cache, config.CacheKey.PopularInstructorsKey(), s.loadPopularInstructors)
}

// RefreshPopular recomputes both popular listings and overwrites the cache.
func (s *ClassService) RefreshPopular(ctx context.Context) error {
	classes, err := s.loadPopular(ctx)
	if err != nil {
		return err
	}
	instructors, err := s.loadPopularInstructors(ctx)
	if err != nil {
		return err
	}
	s.cache.Set(ctx, config.CacheKey.PopularClassesKey(), classes)
	s.cache.Set(ctx, config.CacheKey.PopularInstructorsKey(), instructors)
	return nil
}

func (s *ClassService) loadPopular(ctx context.Context) ([]model.Class, error) {
	return s.classes.Popular(ctx, PopularLimit)
}

func (s *ClassService) loadPopularInstructors(ctx context.Context) ([]model.PopularInstructor, error) {
	return s.classes.PopularInstructors(ctx, PopularLimit)
}
