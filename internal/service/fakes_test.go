package service

import (
	"context"
	"sync"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"github.com/TauhidOSD/yoga-master-server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUsers is an in-memory RoleLookup keyed by email.
type fakeUsers struct {
	byEmail map[string]*model.User
	err     error
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

// fakeClasses is an in-memory checkout class store. ReserveSeat is atomic
// under mu, matching the conditional update in ClassRepository.
type fakeClasses struct {
	mu      sync.Mutex
	classes map[primitive.ObjectID]*model.Class

	setTotalsErr error
	reserveErrOn primitive.ObjectID
}

func newFakeClasses(cs ...model.Class) *fakeClasses {
	f := &fakeClasses{classes: make(map[primitive.ObjectID]*model.Class)}
	for i := range cs {
		c := cs[i]
		f.classes[c.ID] = &c
	}
	return f
}

func (f *fakeClasses) get(id primitive.ObjectID) model.Class {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.classes[id]
}

func (f *fakeClasses) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Class, 0, len(ids))
	for _, id := range ids {
		if c, ok := f.classes[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeClasses) ReserveSeat(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == f.reserveErrOn {
		return false, repository.ErrStoreUnavailable
	}
	c, ok := f.classes[id]
	if !ok || c.AvailableSeats < 1 {
		return false, nil
	}
	c.AvailableSeats--
	c.TotalEnrolled++
	return true, nil
}

func (f *fakeClasses) ReleaseSeat(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.classes[id]; ok {
		c.AvailableSeats++
		c.TotalEnrolled--
	}
	return nil
}

func (f *fakeClasses) SetTotals(_ context.Context, ids []primitive.ObjectID, totalEnrolled, availableSeats int) (model.UpdateAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setTotalsErr != nil {
		return model.UpdateAck{}, f.setTotalsErr
	}
	var n int64
	for _, id := range ids {
		if c, ok := f.classes[id]; ok {
			c.TotalEnrolled = totalEnrolled
			c.AvailableSeats = availableSeats
			n++
		}
	}
	return model.UpdateAck{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (f *fakeClasses) RestoreTotals(_ context.Context, classes []model.Class) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, snap := range classes {
		if c, ok := f.classes[snap.ID]; ok {
			c.TotalEnrolled = snap.TotalEnrolled
			c.AvailableSeats = snap.AvailableSeats
		}
	}
	return nil
}

type fakeEnrollments struct {
	mu        sync.Mutex
	records   []model.EnrollmentRecord
	createErr error
}

func (f *fakeEnrollments) Create(_ context.Context, e *model.EnrollmentRecord) (model.InsertAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return model.InsertAck{}, f.createErr
	}
	e.ID = primitive.NewObjectID()
	f.records = append(f.records, *e)
	return model.InsertAck{Acknowledged: true, InsertedID: e.ID.Hex()}, nil
}

func (f *fakeEnrollments) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeEnrollments) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

type fakeCart struct {
	mu    sync.Mutex
	items []model.CartItem
}

func (f *fakeCart) add(classID, email string) {
	f.items = append(f.items, model.CartItem{ID: primitive.NewObjectID(), ClassID: classID, UserMail: email})
}

func (f *fakeCart) FindForCheckout(_ context.Context, email string, classIDs []string) ([]model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := make(map[string]bool, len(classIDs))
	for _, id := range classIDs {
		want[id] = true
	}
	var out []model.CartItem
	for _, it := range f.items {
		if it.UserMail == email && want[it.ClassID] {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCart) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (model.DeleteAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	drop := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.items[:0]
	var n int64
	for _, it := range f.items {
		if drop[it.ID] {
			n++
			continue
		}
		kept = append(kept, it)
	}
	f.items = kept
	return model.DeleteAck{Acknowledged: true, DeletedCount: n}, nil
}

func (f *fakeCart) Restore(_ context.Context, items []model.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeCart) countFor(classID, email string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, it := range f.items {
		if it.ClassID == classID && it.UserMail == email {
			n++
		}
	}
	return n
}

type fakePayments struct {
	mu        sync.Mutex
	records   []model.PaymentRecord
	createErr error
}

func (f *fakePayments) Create(_ context.Context, p *model.PaymentRecord) (model.InsertAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return model.InsertAck{}, f.createErr
	}
	p.ID = primitive.NewObjectID()
	f.records = append(f.records, *p)
	return model.InsertAck{Acknowledged: true, InsertedID: p.ID.Hex()}, nil
}

func (f *fakePayments) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}
