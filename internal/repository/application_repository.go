package repository

import (
	"context"

	"github.com/TauhidOSD/yoga-master-server/internal/database"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationRepository handles instructor application data access.
type ApplicationRepository struct {
	coll *mongo.Collection
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(database.CollectionApplied)}
}

// Create inserts an application.
func (r *ApplicationRepository) Create(ctx context.Context, a *model.InstructorApplication) (model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return model.InsertAck{}, translate("insert application", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = id
	}
	return insertAck(res), nil
}

// GetByEmail retrieves the application submitted with email.
func (r *ApplicationRepository) GetByEmail(ctx context.Context, email string) (*model.InstructorApplication, error) {
	a := &model.InstructorApplication{}
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(a); err != nil {
		return nil, translate("get application", err)
	}
	return a, nil
}
