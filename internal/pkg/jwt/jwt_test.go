//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-management-api/internal/domain/user"
	"hotel-management-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleOperator)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "operator", claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewService("test-secret", -time.Minute).GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("test-secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("test-secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("test-secret", time.Hour).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
