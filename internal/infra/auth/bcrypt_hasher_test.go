package auth

import (
	"testing"

	"ezstudy/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func hasherWithCost(cost int) *bcryptHasher {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = cost

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := &bcryptHasher{cost: bcrypt.MinCost} // Lower cost for faster testing

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password
	assert.NoError(t, hasher.Check(password, hash))

	// Incorrect password
	assert.Error(t, hasher.Check("WrongPassword123!", hash))

	// Empty password
	assert.Error(t, hasher.Check("", hash))

	// Invalid hash
	assert.Error(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := &bcryptHasher{cost: bcrypt.MinCost}

	first, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)
	second, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	customCost := 11
	hasher := hasherWithCost(customCost)

	assert.Equal(t, customCost, hasher.cost)

	hash, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_WeakCostFallsBackToDefault(t *testing.T) {
	// Anything under cost 10 would weaken stored hashes, so the
	// configured value is ignored in favor of the default.
	for _, weakCost := range []int{0, bcrypt.MinCost, 6, 9} {
		hasher := hasherWithCost(weakCost)

		assert.Equal(t, bcrypt.DefaultCost, hasher.cost, "configured cost %d", weakCost)
	}
}
