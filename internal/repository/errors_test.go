package repository

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"no documents", mongo.ErrNoDocuments, ErrNotFound},
		{"deadline", context.DeadlineExceeded, ErrStoreUnavailable},
		{"disconnected", mongo.ErrClientDisconnected, ErrStoreUnavailable},
		{"duplicate", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}, ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translate("op", tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("translate(%v) = %v, want wrapping %v", tc.err, got, tc.want)
			}
		})
	}

	if translate("op", nil) != nil {
		t.Fatal("translate(nil) should be nil")
	}

	other := errors.New("boom")
	if got := translate("op", other); !errors.Is(got, other) {
		t.Fatalf("unknown errors should stay in the chain, got %v", got)
	}
}

func TestParseObjectIDs(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	ids, err := ParseObjectIDs([]string{a.Hex(), b.Hex()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Fatalf("unexpected ids %v", ids)
	}

	if _, err := ParseObjectIDs([]string{a.Hex(), "not-an-id"}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestHexOf(t *testing.T) {
	id := primitive.NewObjectID()
	if hexOf(id) != id.Hex() {
		t.Error("ObjectID should render as hex")
	}
	if hexOf(nil) != "" {
		t.Error("nil should render empty")
	}
	if hexOf("abc") != "abc" {
		t.Error("strings pass through")
	}
}
