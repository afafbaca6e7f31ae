package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatedUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  string
	}{
		{"valid", "alice", "alice@example.com", "secret", ""},
		{"missing username", "", "alice@example.com", "secret", "username must not be empty"},
		{"missing email", "alice", "", "secret", "email must not be empty"},
		{"missing password", "alice", "alice@example.com", "", "password must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidatedUser(NewUser(tt.username, tt.email, tt.password))
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "secret")
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, user.CheckPassword("secret"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestHashPasswordIsSalted(t *testing.T) {
	a := NewUser("alice", "alice@example.com", "secret")
	b := NewUser("bob", "bob@example.com", "secret")
	require.NoError(t, a.HashPassword())
	require.NoError(t, b.HashPassword())

	assert.NotEqual(t, a.Password, b.Password)
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "secret")
	user.Password = "not-a-bcrypt-digest"

	// A corrupt stored digest is a mismatch, never a panic.
	assert.Error(t, user.CheckPassword("secret"))
}

func TestUpdateProfileRejectsEmptyFields(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "secret")

	assert.Error(t, user.UpdateProfile("", "alice@example.com"))
	assert.Error(t, user.UpdateProfile("alice", ""))
	assert.NoError(t, user.UpdateProfile("alice2", "alice2@example.com"))
	assert.Equal(t, "alice2", user.Username)
}
