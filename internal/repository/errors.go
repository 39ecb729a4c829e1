package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/TauhidOSD/yoga-master-server/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store-level errors surfaced to services and handlers.
var (
	ErrNotFound         = errors.New("document not found")
	ErrDuplicate        = errors.New("duplicate key")
	ErrStoreUnavailable = errors.New("document store unavailable")
	ErrInvalidID        = errors.New("invalid object id")
)

// translate maps driver errors onto the repository sentinels. The original
// error stays in the chain for logging.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
	case mongo.IsNetworkError(err),
		mongo.IsTimeout(err),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// ParseObjectID converts a hex id from a URL or payload into an ObjectID.
func ParseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", hex, ErrInvalidID)
	}
	return id, nil
}

// ParseObjectIDs converts every hex id, failing on the first malformed one.
func ParseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := ParseObjectID(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func hexOf(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

func insertAck(res *mongo.InsertOneResult) model.InsertAck {
	return model.InsertAck{Acknowledged: true, InsertedID: hexOf(res.InsertedID)}
}

func updateAck(res *mongo.UpdateResult) model.UpdateAck {
	return model.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    hexOf(res.UpsertedID),
	}
}

func deleteAck(res *mongo.DeleteResult) model.DeleteAck {
	return model.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}
}
