package repository

import (
	"context"

	"github.com/TauhidOSD/yoga-master-server/internal/database"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository handles payment record data access.
type PaymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(database.CollectionPayments)}
}

// Create appends a payment record.
func (r *PaymentRepository) Create(ctx context.Context, p *model.PaymentRecord) (model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return model.InsertAck{}, translate("insert payment", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return insertAck(res), nil
}

// ListByEmail returns a user's payments, newest first.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]model.PaymentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, translate("list payments", err)
	}
	payments := make([]model.PaymentRecord, 0)
	if err := cur.All(ctx, &payments); err != nil {
		return nil, translate("list payments", err)
	}
	return payments, nil
}

// CountByEmail counts a user's payments.
func (r *PaymentRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"userEmail": email})
	return n, translate("count payments", err)
}
