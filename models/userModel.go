package models

// User is a mess member. Email uniqueness is not enforced here.
type User struct {
	Name     *string `json:"name" bson:"name" validate:"required" description:"Full name"`
	Email    *string `json:"email" bson:"email" validate:"required" description:"Email address"`
	Role     *string `json:"role" bson:"role" validate:"omitempty,oneof=student admin" default:"student" description:"User role"`
	IsActive *bool   `json:"is_active" bson:"is_active" default:"true" description:"Whether user is active"`
}
