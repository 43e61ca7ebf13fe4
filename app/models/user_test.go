package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDefaults(t *testing.T) {
	user, err := CreateUser("Budi Santoso", "budi@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, ROLE_STUDENT, user.Role)
	assert.Equal(t, STATUS_INACTIVE, user.Status)
	assert.False(t, user.IsActive())
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserRejectsInvalidInput(t *testing.T) {
	_, err := CreateUser("Budi", "not-an-email", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("Budi", "budi@example.com", "short")
	assert.Error(t, err)
}

func TestGenerateActivationToken(t *testing.T) {
	user := &User{Name: "Sari", Email: "sari@example.com"}
	require.NoError(t, user.GenerateActivationToken())

	assert.Len(t, user.ActivationToken, 32)
	assert.NotNil(t, user.ActivationSentAt)

	prev := user.ActivationToken
	require.NoError(t, user.GenerateActivationToken())
	assert.NotEqual(t, prev, user.ActivationToken)
}
