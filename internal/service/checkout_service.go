package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Checkout errors.
var (
	ErrEmptyCheckout   = errors.New("checkout has no classes")
	ErrSoldOut         = errors.New("class has no available seats")
	ErrCheckoutAborted = errors.New("checkout aborted")
	ErrClassNotInOrder = errors.New("class id is not part of the purchased classes")
)

// compensationTimeout bounds each undo step. Undo steps run on a fresh
// context, not the request's.
const compensationTimeout = 10 * time.Second

// CheckoutClassStore is the class storage the checkout needs.
type CheckoutClassStore interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Class, error)
	ReserveSeat(ctx context.Context, id primitive.ObjectID) (bool, error)
	ReleaseSeat(ctx context.Context, id primitive.ObjectID) error
	SetTotals(ctx context.Context, ids []primitive.ObjectID, totalEnrolled, availableSeats int) (model.UpdateAck, error)
	RestoreTotals(ctx context.Context, classes []model.Class) error
}

// CheckoutEnrollmentStore is the enrollment storage the checkout needs.
type CheckoutEnrollmentStore interface {
	Create(ctx context.Context, e *model.EnrollmentRecord) (model.InsertAck, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CheckoutCartStore is the cart storage the checkout needs.
type CheckoutCartStore interface {
	FindForCheckout(ctx context.Context, email string, classIDs []string) ([]model.CartItem, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (model.DeleteAck, error)
	Restore(ctx context.Context, items []model.CartItem) error
}

// CheckoutPaymentStore is the payment storage the checkout needs.
type CheckoutPaymentStore interface {
	Create(ctx context.Context, p *model.PaymentRecord) (model.InsertAck, error)
}

// CheckoutService turns a confirmed payment into enrollment, updated class
// counters, a cleared cart and a payment record.
type CheckoutService struct {
	classes     CheckoutClassStore
	enrollments CheckoutEnrollmentStore
	cart        CheckoutCartStore
	payments    CheckoutPaymentStore
	cache       *CacheService
	counterMode string
	log         zerolog.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	classes CheckoutClassStore,
	enrollments CheckoutEnrollmentStore,
	cart CheckoutCartStore,
	payments CheckoutPaymentStore,
	cache *CacheService,
	counterMode string,
	log zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		classes:     classes,
		enrollments: enrollments,
		cart:        cart,
		payments:    payments,
		cache:       cache,
		counterMode: counterMode,
		log:         log.With().Str("component", "checkout_service").Logger(),
	}
}

// Checkout runs the checkout steps in order. singleClassID is set for a
// direct single-item purchase and restricts the cart cleanup to that class.
//
// Every write registers its undo. When a later step fails the undos run in
// reverse and the error wraps ErrCheckoutAborted. Replaying the same
// transaction id is not detected.
func (s *CheckoutService) Checkout(ctx context.Context, req *model.PaymentInfoRequest, singleClassID string) (*model.CheckoutResult, error) {
	hexIDs := req.ClassesID
	if len(hexIDs) == 0 && singleClassID != "" {
		hexIDs = []string{singleClassID}
	}
	hexIDs = uniqueStrings(hexIDs)
	if len(hexIDs) == 0 {
		return nil, ErrEmptyCheckout
	}
	if singleClassID != "" && !containsString(hexIDs, singleClassID) {
		return nil, fmt.Errorf("class %s: %w", singleClassID, ErrClassNotInOrder)
	}

	ids, err := repository.ParseObjectIDs(hexIDs)
	if err != nil {
		return nil, err
	}

	// 1. Resolve the purchased classes.
	classes, err := s.classes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve classes: %w", err)
	}
	if len(classes) != len(ids) {
		return nil, fmt.Errorf("resolve classes: %d of %d found: %w", len(classes), len(ids), repository.ErrNotFound)
	}

	log := s.log.With().
		Str("transaction_id", req.TransactionID).
		Str("user_email", req.UserEmail).
		Int("classes", len(ids)).
		Logger()
	sg := &saga{log: log}
	result := &model.CheckoutResult{}

	// 2. Build the single enrollment record for this checkout.
	enrollment := &model.EnrollmentRecord{
		UserEmail:     req.UserEmail,
		ClassesID:     ids,
		TransactionID: req.TransactionID,
	}

	// 3-4. Update class counters.
	if s.counterMode == config.CounterModeAggregate {
		result.UpdatedResult, err = s.applyAggregateTotals(ctx, sg, classes, ids)
	} else {
		result.UpdatedResult, err = s.reserveSeats(ctx, sg, classes)
	}
	if err != nil {
		return nil, sg.abort(err)
	}

	// 5. Insert the enrollment.
	result.EnrolledResult, err = s.enrollments.Create(ctx, enrollment)
	if err != nil {
		return nil, sg.abort(fmt.Errorf("insert enrollment: %w", err))
	}
	sg.onUndo("delete enrollment", func(ctx context.Context) error {
		return s.enrollments.Delete(ctx, enrollment.ID)
	})

	// 6. Clear the purchased items from the user's cart.
	cartIDs := hexIDs
	if singleClassID != "" {
		cartIDs = []string{singleClassID}
	}
	items, err := s.cart.FindForCheckout(ctx, req.UserEmail, cartIDs)
	if err != nil {
		return nil, sg.abort(fmt.Errorf("find cart items: %w", err))
	}
	itemIDs := make([]primitive.ObjectID, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.ID)
	}
	result.DeleteResult, err = s.cart.DeleteByIDs(ctx, itemIDs)
	if err != nil {
		return nil, sg.abort(fmt.Errorf("delete cart items: %w", err))
	}
	if len(items) > 0 {
		sg.onUndo("restore cart items", func(ctx context.Context) error {
			return s.cart.Restore(ctx, items)
		})
	}

	// 7. Record the payment.
	payment := &model.PaymentRecord{
		TransactionID: req.TransactionID,
		UserEmail:     req.UserEmail,
		UserName:      req.UserName,
		ClassesID:     hexIDs,
		Price:         req.Price,
		Quantity:      req.Quantity,
		PaymentStatus: req.PaymentStatus,
		Date:          req.Date,
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	result.PaymentResult, err = s.payments.Create(ctx, payment)
	if err != nil {
		return nil, sg.abort(fmt.Errorf("insert payment: %w", err))
	}

	s.cache.Invalidate(ctx, config.CacheKey.ListingKeys()...)

	log.Info().
		Int64("cart_items_removed", result.DeleteResult.DeletedCount).
		Str("counter_mode", s.counterMode).
		Msg("checkout completed")

	return result, nil
}

// reserveSeats takes one seat on each class with a conditional update.
func (s *CheckoutService) reserveSeats(ctx context.Context, sg *saga, classes []model.Class) (model.UpdateAck, error) {
	ack := model.UpdateAck{Acknowledged: true}
	for _, c := range classes {
		id := c.ID
		ok, err := s.classes.ReserveSeat(ctx, id)
		if err != nil {
			return ack, fmt.Errorf("reserve seat on %s: %w", id.Hex(), err)
		}
		if !ok {
			return ack, fmt.Errorf("class %s: %w", id.Hex(), ErrSoldOut)
		}
		ack.MatchedCount++
		ack.ModifiedCount++
		sg.onUndo("release seat "+id.Hex(), func(ctx context.Context) error {
			return s.classes.ReleaseSeat(ctx, id)
		})
	}
	return ack, nil
}

// applyAggregateTotals sums the counters across every purchased class and
// writes the same result to all of them.
func (s *CheckoutService) applyAggregateTotals(ctx context.Context, sg *saga, classes []model.Class, ids []primitive.ObjectID) (model.UpdateAck, error) {
	totalEnrolled, availableSeats := aggregateTotals(classes)
	ack, err := s.classes.SetTotals(ctx, ids, totalEnrolled, availableSeats)
	if err != nil {
		return ack, fmt.Errorf("set class totals: %w", err)
	}
	snapshot := append([]model.Class(nil), classes...)
	sg.onUndo("restore class totals", func(ctx context.Context) error {
		return s.classes.RestoreTotals(ctx, snapshot)
	})
	return ack, nil
}

func aggregateTotals(classes []model.Class) (totalEnrolled, availableSeats int) {
	for _, c := range classes {
		totalEnrolled += c.TotalEnrolled
		availableSeats += c.AvailableSeats
	}
	return totalEnrolled + 1, availableSeats - 1
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok || s == "" {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type undoStep struct {
	name string
	fn   func(context.Context) error
}

// saga collects undo steps for committed writes.
type saga struct {
	log   zerolog.Logger
	steps []undoStep
}

func (sg *saga) onUndo(name string, fn func(context.Context) error) {
	sg.steps = append(sg.steps, undoStep{name: name, fn: fn})
}

// abort undoes every registered step in reverse and returns cause wrapped in
// ErrCheckoutAborted. Undo failures are logged and do not stop the rollback.
func (sg *saga) abort(cause error) error {
	for i := len(sg.steps) - 1; i >= 0; i-- {
		step := sg.steps[i]
		ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
		if err := step.fn(ctx); err != nil {
			sg.log.Error().Err(err).Str("step", step.name).Msg("checkout compensation failed")
		}
		cancel()
	}
	if len(sg.steps) > 0 {
		sg.log.Warn().Err(cause).Int("compensated", len(sg.steps)).Msg("checkout rolled back")
	}
	return fmt.Errorf("%w: %w", ErrCheckoutAborted, cause)
}
