package models

import "time"

// User is keyed by email (unique index). Role is "admin" or empty.
type User struct {
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Role      string    `json:"role,omitempty" bson:"role,omitempty"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Education string    `json:"education,omitempty" bson:"education,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
