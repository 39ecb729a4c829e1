package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/payment"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memUsers struct {
	created []model.User
	updated map[primitive.ObjectID]*model.UpdateUserRequest
}

func (m *memUsers) Create(_ context.Context, u *model.User) (model.InsertAck, error) {
	u.ID = primitive.NewObjectID()
	m.created = append(m.created, *u)
	return model.InsertAck{Acknowledged: true, InsertedID: u.ID.Hex()}, nil
}
func (m *memUsers) List(context.Context) ([]model.User, error) { return m.created, nil }
func (m *memUsers) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	var out []model.User
	for _, u := range m.created {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
func (m *memUsers) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	for i := range m.created {
		if m.created[i].ID == id {
			return &m.created[i], nil
		}
	}
	return nil, repository.ErrNotFound
}
func (m *memUsers) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, repository.ErrNotFound
}
func (m *memUsers) Update(_ context.Context, id primitive.ObjectID, req *model.UpdateUserRequest) (model.UpdateAck, error) {
	if m.updated == nil {
		m.updated = make(map[primitive.ObjectID]*model.UpdateUserRequest)
	}
	m.updated[id] = req
	return model.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}
func (m *memUsers) Delete(context.Context, primitive.ObjectID) (model.DeleteAck, error) {
	return model.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

func TestRegisterAlwaysCreatesStudent(t *testing.T) {
	users := &memUsers{}
	svc := NewUserService(users, &recordingInvalidator{})

	ack, err := svc.Register(context.Background(), &model.CreateUserRequest{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if !ack.Acknowledged || ack.InsertedID == "" {
		t.Fatalf("unexpected ack %+v", ack)
	}
	if users.created[0].Role != model.RoleStudent {
		t.Fatalf("expected student role, got %q", users.created[0].Role)
	}

	instructors, err := svc.Instructors(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(instructors) != 0 {
		t.Fatalf("expected no instructors, got %d", len(instructors))
	}
}

func TestUserServiceRejectsMalformedID(t *testing.T) {
	svc := NewUserService(&memUsers{}, &recordingInvalidator{})
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, "nope"); !errors.Is(err, repository.ErrInvalidID) {
		t.Fatalf("GetByID: expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.Update(ctx, "nope", &model.UpdateUserRequest{}); !errors.Is(err, repository.ErrInvalidID) {
		t.Fatalf("Update: expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.Delete(ctx, "nope"); !errors.Is(err, repository.ErrInvalidID) {
		t.Fatalf("Delete: expected ErrInvalidID, got %v", err)
	}
}

type recordingInvalidator struct {
	keys []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, keys ...string) {
	r.keys = append(r.keys, keys...)
}

func TestUserChangesDropPopularInstructors(t *testing.T) {
	cache := &recordingInvalidator{}
	svc := NewUserService(&memUsers{}, cache)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	req := &model.UpdateUserRequest{Name: "Ana", Email: "ana@example.com", Role: model.RoleInstructor, Gender: "female"}
	if _, err := svc.Update(ctx, id, req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}

	want := config.CacheKey.PopularInstructorsKey()
	if len(cache.keys) != 2 || cache.keys[0] != want || cache.keys[1] != want {
		t.Fatalf("invalidated %v, want %s twice", cache.keys, want)
	}
}

type memClasses struct {
	created     []model.Class
	statusSet   model.ClassStatus
	reason      string
	popularHits int
}

func (m *memClasses) Create(_ context.Context, c *model.Class) (model.InsertAck, error) {
	c.ID = primitive.NewObjectID()
	m.created = append(m.created, *c)
	return model.InsertAck{Acknowledged: true, InsertedID: c.ID.Hex()}, nil
}
func (m *memClasses) List(_ context.Context, status model.ClassStatus) ([]model.Class, error) {
	var out []model.Class
	for _, c := range m.created {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}
func (m *memClasses) ListByInstructor(_ context.Context, email string) ([]model.Class, error) {
	var out []model.Class
	for _, c := range m.created {
		if c.InstructorEmail == email {
			out = append(out, c)
		}
	}
	return out, nil
}
func (m *memClasses) GetByID(context.Context, primitive.ObjectID) (*model.Class, error) {
	return nil, repository.ErrNotFound
}
func (m *memClasses) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Class, error) {
	var out []model.Class
	for _, id := range ids {
		for _, c := range m.created {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}
func (m *memClasses) UpdateStatus(_ context.Context, _ primitive.ObjectID, status model.ClassStatus, reason string) (model.UpdateAck, error) {
	m.statusSet, m.reason = status, reason
	return model.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}
func (m *memClasses) UpdateDetails(context.Context, primitive.ObjectID, *model.UpdateClassRequest) (model.UpdateAck, error) {
	return model.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}
func (m *memClasses) Popular(context.Context, int64) ([]model.Class, error) {
	m.popularHits++
	return m.created, nil
}
func (m *memClasses) PopularInstructors(context.Context, int64) ([]model.PopularInstructor, error) {
	return []model.PopularInstructor{{TotalEnrolled: 3}}, nil
}

func TestCreateClassStartsPendingForCaller(t *testing.T) {
	classes := &memClasses{}
	svc := NewClassService(classes, NewCacheService(nil, time.Minute, zerolog.Nop()))

	_, err := svc.Create(context.Background(), "coach@example.com", &model.CreateClassRequest{
		Name:           "Vinyasa",
		Price:          20,
		AvailableSeats: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	c := classes.created[0]
	if c.Status != model.ClassStatusPending {
		t.Fatalf("expected pending, got %q", c.Status)
	}
	if c.InstructorEmail != "coach@example.com" {
		t.Fatalf("expected instructor email from caller, got %q", c.InstructorEmail)
	}
	if c.TotalEnrolled != 0 || c.Submitted.IsZero() {
		t.Fatalf("unexpected defaults %+v", c)
	}

	approved, err := svc.Approved(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 0 {
		t.Fatalf("pending class must not be listed as approved")
	}
	mine, err := svc.ByInstructor(context.Background(), "coach@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected one class for instructor, got %d", len(mine))
	}
}

func TestChangeStatusPassesReason(t *testing.T) {
	classes := &memClasses{}
	svc := NewClassService(classes, NewCacheService(nil, time.Minute, zerolog.Nop()))

	id := primitive.NewObjectID().Hex()
	if _, err := svc.ChangeStatus(context.Background(), id, &model.ChangeStatusRequest{Status: model.ClassStatusRejected, Reason: "blurry video"}); err != nil {
		t.Fatal(err)
	}
	if classes.statusSet != model.ClassStatusRejected || classes.reason != "blurry video" {
		t.Fatalf("unexpected status update %q %q", classes.statusSet, classes.reason)
	}
	if _, err := svc.ChangeStatus(context.Background(), "bad", &model.ChangeStatusRequest{}); !errors.Is(err, repository.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestRefreshPopularLoadsBothListings(t *testing.T) {
	classes := &memClasses{}
	svc := NewClassService(classes, NewCacheService(nil, time.Minute, zerolog.Nop()))

	if err := svc.RefreshPopular(context.Background()); err != nil {
		t.Fatal(err)
	}
	if classes.popularHits != 1 {
		t.Fatalf("expected one popular load, got %d", classes.popularHits)
	}
	top, err := svc.PopularInstructors(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].TotalEnrolled != 3 {
		t.Fatalf("unexpected ranking %+v", top)
	}
}

type memCart struct {
	ids       []string
	deletedBy string
}

func (m *memCart) Create(context.Context, *model.CartItem) (model.InsertAck, error) {
	return model.InsertAck{Acknowledged: true}, nil
}
func (m *memCart) FindItem(context.Context, string, string) (*model.CartItem, error) {
	return nil, repository.ErrNotFound
}
func (m *memCart) ClassIDsByUser(context.Context, string) ([]string, error) { return m.ids, nil }
func (m *memCart) DeleteByClassID(_ context.Context, _, email string) (model.DeleteAck, error) {
	m.deletedBy = email
	return model.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

func TestCartClassesSkipsMalformedIDs(t *testing.T) {
	classes := &memClasses{}
	_, _ = classes.Create(context.Background(), &model.Class{Name: "Hatha"})
	known := classes.created[0].ID.Hex()

	svc := NewCartService(&memCart{ids: []string{known, "garbage", primitive.NewObjectID().Hex()}}, classes)
	got, err := svc.Classes(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Hatha" {
		t.Fatalf("unexpected cart classes %+v", got)
	}

	empty := NewCartService(&memCart{}, classes)
	got, err = empty.Classes(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestCartRemoveIsScopedToUser(t *testing.T) {
	cart := &memCart{}
	svc := NewCartService(cart, &memClasses{})
	if _, err := svc.Remove(context.Background(), primitive.NewObjectID().Hex(), "ana@example.com"); err != nil {
		t.Fatal(err)
	}
	if cart.deletedBy != "ana@example.com" {
		t.Fatalf("delete scoped to %q, want ana@example.com", cart.deletedBy)
	}
}

type recordingProcessor struct {
	amount   int64
	currency string
	err      error
}

func (r *recordingProcessor) CreateIntent(_ context.Context, amount int64, currency string) (*payment.Intent, error) {
	r.amount, r.currency = amount, currency
	if r.err != nil {
		return nil, r.err
	}
	return &payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: amount, Currency: currency}, nil
}

type memHistory struct{}

func (memHistory) ListByEmail(context.Context, string) ([]model.PaymentRecord, error) {
	return []model.PaymentRecord{{TransactionID: "tx2"}, {TransactionID: "tx1"}}, nil
}
func (memHistory) CountByEmail(context.Context, string) (int64, error) { return 2, nil }

func TestCreateIntentTruncatesToWholeDollars(t *testing.T) {
	proc := &recordingProcessor{}
	svc := NewPaymentService(proc, memHistory{})

	intent, err := svc.CreateIntent(context.Background(), &model.PaymentIntentRequest{Price: 19.99})
	if err != nil {
		t.Fatal(err)
	}
	if proc.amount != 1900 || proc.currency != "usd" {
		t.Fatalf("unexpected processor call amount=%d currency=%q", proc.amount, proc.currency)
	}
	if intent.ClientSecret != "pi_1_secret" {
		t.Fatalf("unexpected client secret %q", intent.ClientSecret)
	}

	n, err := svc.HistoryCount(context.Background(), "ana@example.com")
	if err != nil || n != 2 {
		t.Fatalf("unexpected count %d, %v", n, err)
	}
}

func TestCreateIntentPropagatesProviderError(t *testing.T) {
	svc := NewPaymentService(&recordingProcessor{err: payment.ErrProvider}, memHistory{})
	if _, err := svc.CreateIntent(context.Background(), &model.PaymentIntentRequest{Price: 5}); !errors.Is(err, payment.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

type countStub struct {
	byStatus map[model.ClassStatus]int64
	err      error
}

func (c countStub) Count(_ context.Context, status model.ClassStatus) (int64, error) {
	return c.byStatus[status], c.err
}

type roleCountStub int64

func (r roleCountStub) CountByRole(context.Context, model.Role) (int64, error) { return int64(r), nil }

type enrollCountStub int64

func (e enrollCountStub) Count(context.Context) (int64, error) { return int64(e), nil }

func TestAdminStats(t *testing.T) {
	classes := countStub{byStatus: map[model.ClassStatus]int64{
		model.ClassStatusApproved: 4,
		model.ClassStatusPending:  2,
		"":                        7,
	}}
	svc := NewStatsService(classes, roleCountStub(3), enrollCountStub(11))

	stats, err := svc.AdminStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := model.AdminStats{ApprovedClasses: 4, PendingClasses: 2, TotalClasses: 7, Instructors: 3, TotalEnrolled: 11}
	if *stats != want {
		t.Fatalf("got %+v, want %+v", *stats, want)
	}

	failing := NewStatsService(countStub{err: repository.ErrStoreUnavailable}, roleCountStub(0), enrollCountStub(0))
	if _, err := failing.AdminStats(context.Background()); !errors.Is(err, repository.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
