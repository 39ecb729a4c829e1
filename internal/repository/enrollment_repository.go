package repository

import (
	"context"

	"github.com/TauhidOSD/yoga-master-server/internal/database"
	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnrollmentRepository handles enrollment record data access.
type EnrollmentRepository struct {
	coll *mongo.Collection
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{coll: db.Collection(database.CollectionEnrolled)}
}

// Create appends an enrollment record.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.EnrollmentRecord) (model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return model.InsertAck{}, translate("insert enrollment", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = id
	}
	return insertAck(res), nil
}

// Delete removes an enrollment record. Only checkout compensation calls this.
func (r *EnrollmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return translate("delete enrollment", err)
}

// Count counts every enrollment record.
func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translate("count enrollments", err)
}

// EnrolledClasses joins a user's enrollments with their classes and each
// class's instructor.
func (r *EnrollmentRepository) EnrolledClasses(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userEmail", Value: email}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionClasses},
			{Key: "localField", Value: "classesId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "classes"},
		}}},
		{{Key: "$unwind", Value: "$classes"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionUsers},
			{Key: "localField", Value: "classes.instructorEmail"},
			{Key: "foreignField", Value: "email"},
			{Key: "as", Value: "instructor"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "instructor", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$instructor", 0}}}},
			{Key: "classes", Value: 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translate("enrolled classes", err)
	}
	out := make([]model.EnrolledClass, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, translate("decode enrolled classes", err)
	}
	return out, nil
}
