// Package ledger provides an in-memory stand-in for the platform ledger,
// good enough for tests and local demos.
package ledger

import "sync"

type merr string

func (e merr) Error() string { return string(e) }

var ErrInsufficientFunds = merr("insufficient funds")

// Memory tracks balances in a plain map. Unknown accounts start at zero,
// so charging them fails until someone deposits.
type Memory struct {
	mu       sync.Mutex
	balances map[string]uint64
}

func NewMemory() *Memory {
	return &Memory{balances: make(map[string]uint64)}
}

// Deposit credits an account. Test/demo helper.
func (m *Memory) Deposit(id string, amount uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[id] += amount
}

// Balance returns the current balance of id.
func (m *Memory) Balance(id string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[id]
}

// Charge moves amount from the player to the game's wallet key.
func (m *Memory) Charge(playerID, gameKey string, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.balances[playerID] < amount {
		return ErrInsufficientFunds
	}
	m.balances[playerID] -= amount
	m.balances[gameKey] += amount
	return nil
}

// Release hands whatever the game's key accumulated back to its owner.
func (m *Memory) Release(gameKey, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[ownerID] += m.balances[gameKey]
	delete(m.balances, gameKey)
	return nil
}
