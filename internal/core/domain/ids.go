package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID validates an opaque identity reference. A malformed id is a client
// error; whether a well-formed id points at anything is for the caller to
// find out.
func ParseID(field, raw string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, InvalidInput("%s is required", field)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, InvalidInput("%s is not a valid id", field)
	}
	return id, nil
}
