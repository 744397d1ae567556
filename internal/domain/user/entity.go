package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Point balance mutations never go through this struct: they are
// atomic conditional updates owned by the repository layer so that concurrent
// credits and debits linearize at the database.
type User struct {
	id           uuid.UUID
	fullName     FullName
	email        Email
	passwordHash string
	role         Role
	referralCode string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(fullName FullName, email Email, passwordHash, referralCode string) *User {
	return &User{
		id:           uuid.New(),
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         RoleUser,
		referralCode: referralCode,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FullName() FullName   { return u.fullName }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) ReferralCode() string { return u.referralCode }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
