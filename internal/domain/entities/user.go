package entities

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Id        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Email     string
	// Password holds the plaintext until HashPassword runs, the bcrypt
	// digest afterwards. It never leaves the process either way.
	Password string
}

func NewUser(username, email, password string) *User {
	now := time.Now()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Email:     email,
		Password:  password,
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a candidate plaintext against the stored digest.
// A malformed digest reports as a mismatch, not a panic.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) UpdateProfile(username, email string) error {
	u.Username = username
	u.Email = email
	u.UpdatedAt = time.Now()
	return u.validate()
}
