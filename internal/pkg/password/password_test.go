//go:build unit

package password_test

import (
	"testing"

	"hotel-management-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("reception-2024")
	require.NoError(t, err)
	assert.NotEqual(t, "reception-2024", hash)

	assert.NoError(t, password.ComparePassword(hash, "reception-2024"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "reception-2024"), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
