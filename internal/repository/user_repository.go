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

// UserRepository handles user data access.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(database.CollectionUsers)}
}

// Create inserts a new user. A second user with the same email fails with ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u *model.User) (model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return model.InsertAck{}, translate("insert user", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return insertAck(res), nil
}

// List retrieves every user.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return r.find(ctx, "list users", bson.M{})
}

// ListByRole retrieves every user holding role.
func (r *UserRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	return r.find(ctx, "list users by role", bson.M{"role": role})
}

// CountByRole counts users holding role.
func (r *UserRepository) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"role": role})
	return n, translate("count users by role", err)
}

// GetByID retrieves a user by its ID.
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, "get user", bson.M{"_id": id})
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "get user by email", bson.M{"email": email})
}

// Update replaces the profile fields of a user, inserting the user when absent.
func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateUserRequest) (model.UpdateAck, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, userUpdate(req), options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateAck{}, translate("update user", err)
	}
	return updateAck(res), nil
}

func userUpdate(req *model.UpdateUserRequest) bson.M {
	return bson.M{"$set": bson.M{
		"name":     req.Name,
		"email":    req.Email,
		"role":     req.Role,
		"gender":   req.Gender,
		"address":  req.Address,
		"phone":    req.Phone,
		"about":    req.About,
		"photoUrl": req.PhotoURL,
		"skills":   req.Skills,
	}}
}

// UpsertAdmin creates or promotes the user with email to the admin role.
func (r *UserRepository) UpsertAdmin(ctx context.Context, name, email string) (model.UpdateAck, error) {
	update := bson.M{
		"$set":         bson.M{"role": model.RoleAdmin},
		"$setOnInsert": bson.M{"name": name},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateAck{}, translate("upsert admin", err)
	}
	return updateAck(res), nil
}

// Delete removes a user by its ID.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteAck, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return model.DeleteAck{}, translate("delete user", err)
	}
	return deleteAck(res), nil
}

func (r *UserRepository) findOne(ctx context.Context, op string, filter interface{}) (*model.User, error) {
	u := &model.User{}
	if err := r.coll.FindOne(ctx, filter).Decode(u); err != nil {
		return nil, translate(op, err)
	}
	return u, nil
}

func (r *UserRepository) find(ctx context.Context, op string, filter interface{}) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, translate(op, err)
	}
	users := make([]model.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, translate(op, err)
	}
	return users, nil
}
