package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Roles a user can hold.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	Password          string    `json:"-" gorm:"not null"` // bcrypt hash, opaque to this core
	Role              string    `json:"role" gorm:"size:20;default:'USER';not null"`
	Enabled           bool      `json:"enabled" gorm:"default:true;not null"` // false = banned
	ProfilePictureURL string    `json:"profile_picture_url"`
	Bio               string    `json:"bio" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserCompact is the trimmed user shape embedded in enriched responses.
type UserCompact struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:                u.ID,
		Username:          u.Username,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}

// UserProfile is the full profile shape with relationship counts.
type UserProfile struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	Enabled           bool   `json:"enabled"`
	ProfilePictureURL string `json:"profile_picture_url"`
	Bio               string `json:"bio"`
	FollowersCount    int64  `json:"followers_count"`
	FollowingCount    int64  `json:"following_count"`
	PostsCount        int64  `json:"posts_count"`
}

// RegisterRequest defines the request body for local registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInRequest defines the request body for local authentication
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateBioRequest defines the request body for a bio update
type UpdateBioRequest struct {
	Bio string `json:"bio" validate:"max=500"`
}

// UpdateProfilePictureRequest defines the request body for a picture update
type UpdateProfilePictureRequest struct {
	ProfilePictureURL string `json:"profile_picture_url" validate:"required,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
