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

// ClassRepository handles class data access.
type ClassRepository struct {
	coll *mongo.Collection
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{coll: db.Collection(database.CollectionClasses)}
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) (model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return model.InsertAck{}, translate("insert class", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return insertAck(res), nil
}

// List retrieves classes, optionally restricted to one status.
func (r *ClassRepository) List(ctx context.Context, status model.ClassStatus) ([]model.Class, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, "list classes", filter)
}

// ListByInstructor retrieves every class owned by an instructor email.
func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return r.find(ctx, "list classes by instructor", bson.M{"instructorEmail": email})
}

// GetByID retrieves a class by its ID.
func (r *ClassRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Class, error) {
	c := &model.Class{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(c); err != nil {
		return nil, translate("get class", err)
	}
	return c, nil
}

// GetByIDs retrieves every class whose id is in ids. Unknown ids are skipped.
func (r *ClassRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Class, error) {
	return r.find(ctx, "get classes by ids", bson.M{"_id": bson.M{"$in": ids}})
}

// UpdateStatus sets the moderation status and reason, inserting the class when it is absent.
func (r *ClassRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ClassStatus, reason string) (model.UpdateAck, error) {
	update := bson.M{"$set": bson.M{"status": status, "reason": reason}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateAck{}, translate("update class status", err)
	}
	return updateAck(res), nil
}

// UpdateDetails replaces the editable fields and sends the class back to review.
func (r *ClassRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, req *model.UpdateClassRequest) (model.UpdateAck, error) {
	update := bson.M{"$set": bson.M{
		"name":           req.Name,
		"description":    req.Description,
		"price":          req.Price,
		"availableSeats": req.AvailableSeats,
		"videoLink":      req.VideoLink,
		"status":         model.ClassStatusPending,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateAck{}, translate("update class", err)
	}
	return updateAck(res), nil
}

// Popular returns the classes with the most enrollments.
func (r *ClassRepository) Popular(ctx context.Context, limit int64) ([]model.Class, error) {
	opts := options.Find().SetSort(bson.D{{Key: "totalEnrolled", Value: -1}}).SetLimit(limit)
	return r.find(ctx, "popular classes", bson.M{}, opts)
}

// PopularInstructors ranks instructors by the summed enrollments of their classes
// and joins each with its user document.
func (r *ClassRepository) PopularInstructors(ctx context.Context, limit int64) ([]model.PopularInstructor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$instructorEmail"},
			{Key: "totalEnrolled", Value: bson.D{{Key: "$sum", Value: "$totalEnrolled"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionUsers},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "email"},
			{Key: "as", Value: "instructor"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "instructor", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$instructor", 0}}}},
			{Key: "totalEnrolled", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalEnrolled", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translate("popular instructors", err)
	}
	out := make([]model.PopularInstructor, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, translate("decode popular instructors", err)
	}
	return out, nil
}

// Count counts classes, optionally restricted to one status.
func (r *ClassRepository) Count(ctx context.Context, status model.ClassStatus) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	return n, translate("count classes", err)
}

// ReserveSeat takes one seat and adds one enrollment in a single conditional
// update. It reports false when the class has no seat left.
func (r *ClassRepository) ReserveSeat(ctx context.Context, id primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "availableSeats": bson.M{"$gte": 1}}
	update := bson.M{"$inc": bson.M{"availableSeats": -1, "totalEnrolled": 1}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, translate("reserve seat", err)
	}
	return res.ModifiedCount == 1, nil
}

// ReleaseSeat reverses ReserveSeat.
func (r *ClassRepository) ReleaseSeat(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$inc": bson.M{"availableSeats": 1, "totalEnrolled": -1}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return translate("release seat", err)
}

// SetTotals writes the same counter values onto every class in ids.
func (r *ClassRepository) SetTotals(ctx context.Context, ids []primitive.ObjectID, totalEnrolled, availableSeats int) (model.UpdateAck, error) {
	update := bson.M{"$set": bson.M{"totalEnrolled": totalEnrolled, "availableSeats": availableSeats}}
	res, err := r.coll.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, update, options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateAck{}, translate("set class totals", err)
	}
	return updateAck(res), nil
}

// RestoreTotals writes back the counters captured in classes, one update per class.
func (r *ClassRepository) RestoreTotals(ctx context.Context, classes []model.Class) error {
	for _, c := range classes {
		update := bson.M{"$set": bson.M{"totalEnrolled": c.TotalEnrolled, "availableSeats": c.AvailableSeats}}
		if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": c.ID}, update); err != nil {
			return translate("restore class totals", err)
		}
	}
	return nil
}

func (r *ClassRepository) find(ctx context.Context, op string, filter interface{}, opts ...*options.FindOptions) ([]model.Class, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, translate(op, err)
	}
	classes := make([]model.Class, 0)
	if err := cur.All(ctx, &classes); err != nil {
		return nil, translate(op, err)
	}
	return classes, nil
}
