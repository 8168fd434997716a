package domain

import (
	"errors"
	"time"
)

// RoleUser is the role assigned to users created without an explicit role.
const RoleUser = "user"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("email already exists")

// User is a registered account.
type User struct {
	ID        int        `json:"id" bson:"_id"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Role      string     `json:"role" bson:"role"`
	CreatedAt time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}
