package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a teacher. Remember asks
// for a persistent session backed by an opaque server-side token; raw
// credentials are never stored client-side.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// RegisterRequest carries the sign-up form payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Country  string `json:"country" validate:"required"`
	Age      int    `json:"age" validate:"required,gte=18"`
	Gender   string `json:"gender" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterResponse acknowledges account creation.
type RegisterResponse struct {
	Message string  `json:"message"`
	Teacher Teacher `json:"teacher"`
}

// Session is the result of a successful login or session restore.
type Session struct {
	AccessToken   string        `json:"-"`
	RememberToken string        `json:"-"`
	ExpiresIn     time.Duration `json:"-"`
	Teacher       Teacher       `json:"teacher"`
}

// RememberToken is the persisted half of a "remember me" session. Only a
// bcrypt hash of the secret is stored; the cookie carries "<id>.<secret>".
type RememberToken struct {
	ID         string     `db:"id"`
	TeacherID  int64      `db:"teacher_id"`
	SecretHash string     `db:"secret_hash"`
	ExpiresAt  time.Time  `db:"expires_at"`
	CreatedAt  time.Time  `db:"created_at"`
	Revoked    bool       `db:"revoked"`
	RevokedAt  *time.Time `db:"revoked_at"`
}

// JWTClaims are the registered claims plus the authenticated teacher identity.
type JWTClaims struct {
	TeacherID int64  `json:"tid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
