package service

import (
	"context"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartStore is the cart storage the service needs.
type CartStore interface {
	Create(ctx context.Context, item *model.CartItem) (model.InsertAck, error)
	FindItem(ctx context.Context, classID, email string) (*model.CartItem, error)
	ClassIDsByUser(ctx context.Context, email string) ([]string, error)
	DeleteByClassID(ctx context.Context, classID, email string) (model.DeleteAck, error)
}

// CartClassLookup resolves cart class ids to classes.
type CartClassLookup interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Class, error)
}

// CartService handles cart business logic.
type CartService struct {
	cart    CartStore
	classes CartClassLookup
}

// NewCartService creates a new CartService.
func NewCartService(cart CartStore, classes CartClassLookup) *CartService {
	return &CartService{cart: cart, classes: classes}
}

// Add puts a class in a user's cart.
func (s *CartService) Add(ctx context.Context, req *model.AddToCartRequest) (model.InsertAck, error) {
	return s.cart.Create(ctx, &model.CartItem{
		ClassID:  req.ClassID,
		UserMail: req.UserMail,
		Date:     time.Now().UTC(),
	})
}

// Item returns the cart entry for a class and user.
func (s *CartService) Item(ctx context.Context, classID, email string) (*model.CartItem, error) {
	return s.cart.FindItem(ctx, classID, email)
}

// Classes returns the classes currently in a user's cart. Entries whose
// class id is malformed or whose class no longer exists are skipped.
func (s *CartService) Classes(ctx context.Context, email string) ([]model.Class, error) {
	hexIDs, err := s.cart.ClassIDsByUser(ctx, email)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		if id, err := repository.ParseObjectID(h); err == nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []model.Class{}, nil
	}
	return s.classes.GetByIDs(ctx, ids)
}

// Remove deletes one of the user's cart entries for a class.
func (s *CartService) Remove(ctx context.Context, classID, email string) (model.DeleteAck, error) {
	return s.cart.DeleteByClassID(ctx, classID, email)
}
