package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const GlobalRoleUser = "user"

// UnknownDisplayName is shown when a referenced user no longer resolves.
const UnknownDisplayName = "Unknown"

// User is owned by the identity directory; the core only reads it.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	DisplayName  string             `json:"display_name" bson:"display_name"`
	GlobalRole   string             `json:"global_role" bson:"global_role"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}
