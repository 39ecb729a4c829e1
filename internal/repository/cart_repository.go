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

// CartRepository handles cart item data access.
type CartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository creates a new CartRepository.
func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(database.CollectionCart)}
}

// Create inserts a cart item. Duplicates are allowed.
func (r *CartRepository) Create(ctx context.Context, item *model.CartItem) (model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return model.InsertAck{}, translate("insert cart item", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = id
	}
	return insertAck(res), nil
}

// FindItem returns the cart entry for a class and user, projected to its classId.
func (r *CartRepository) FindItem(ctx context.Context, classID, email string) (*model.CartItem, error) {
	opts := options.FindOne().SetProjection(bson.M{"classId": 1})
	item := &model.CartItem{}
	if err := r.coll.FindOne(ctx, bson.M{"classId": classID, "userMail": email}, opts).Decode(item); err != nil {
		return nil, translate("find cart item", err)
	}
	return item, nil
}

// ClassIDsByUser returns the class ids in a user's cart, in insertion order.
func (r *CartRepository) ClassIDsByUser(ctx context.Context, email string) ([]string, error) {
	items, err := r.find(ctx, "list cart", bson.M{"userMail": email}, options.Find().SetProjection(bson.M{"classId": 1}))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ClassID)
	}
	return ids, nil
}

// DeleteByClassID removes one of the user's cart entries for a class.
func (r *CartRepository) DeleteByClassID(ctx context.Context, classID, email string) (model.DeleteAck, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"classId": classID, "userMail": email})
	if err != nil {
		return model.DeleteAck{}, translate("delete cart item", err)
	}
	return deleteAck(res), nil
}

// FindForCheckout returns the user's cart entries for any of classIDs.
func (r *CartRepository) FindForCheckout(ctx context.Context, email string, classIDs []string) ([]model.CartItem, error) {
	return r.find(ctx, "find checkout cart", bson.M{"userMail": email, "classId": bson.M{"$in": classIDs}})
}

// DeleteByIDs removes the given cart entries.
func (r *CartRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (model.DeleteAck, error) {
	if len(ids) == 0 {
		return model.DeleteAck{Acknowledged: true}, nil
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return model.DeleteAck{}, translate("delete cart items", err)
	}
	return deleteAck(res), nil
}

// Restore re-inserts previously deleted cart entries with their original ids.
func (r *CartRepository) Restore(ctx context.Context, items []model.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for i := range items {
		docs = append(docs, items[i])
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return translate("restore cart items", err)
}

func (r *CartRepository) find(ctx context.Context, op string, filter interface{}, opts ...*options.FindOptions) ([]model.CartItem, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, translate(op, err)
	}
	items := make([]model.CartItem, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, translate(op, err)
	}
	return items, nil
}
