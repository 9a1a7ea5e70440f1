package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeMovesFunds(t *testing.T) {
	m := NewMemory()
	m.Deposit("player", 100)

	require.NoError(t, m.Charge("player", "game", 25))
	assert.Equal(t, uint64(75), m.Balance("player"))
	assert.Equal(t, uint64(25), m.Balance("game"))
}

func TestChargeInsufficientFunds(t *testing.T) {
	m := NewMemory()
	m.Deposit("player", 10)

	err := m.Charge("player", "game", 25)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, uint64(10), m.Balance("player"))
	assert.Equal(t, uint64(0), m.Balance("game"))
}

func TestReleaseReturnsDepositToOwner(t *testing.T) {
	m := NewMemory()
	m.Deposit("player", 50)
	require.NoError(t, m.Charge("player", "game", 50))

	require.NoError(t, m.Release("game", "owner"))
	assert.Equal(t, uint64(50), m.Balance("owner"))
	assert.Equal(t, uint64(0), m.Balance("game"))
}
