package bcrypt_test

import (
	"testing"

	"retailops/internal/adapters/out/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbcrypt "golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := bcrypt.NewHasher(xbcrypt.MinCost)

	hash, err := h.Hash("123")
	require.NoError(t, err)
	assert.NotEqual(t, "123", hash)

	require.NoError(t, h.Compare(hash, "123"))
	require.ErrorIs(t, h.Compare(hash, "1234"), xbcrypt.ErrMismatchedHashAndPassword)
}

func TestNewHasher_OutOfRangeCostFallsBack(t *testing.T) {
	h := bcrypt.NewHasher(99)

	hash, err := h.Hash("secret")
	require.NoError(t, err)

	cost, err := xbcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, xbcrypt.DefaultCost, cost)
}
