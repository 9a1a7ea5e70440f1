// Package ports declares the boundaries the arcade core depends on but
// does not implement. The surrounding ledger platform provides the real
// thing; adapters under internal/adapters supply test/demo versions.
package ports

// Ledger moves credits around and reclaims per-game storage. The core
// only sequences calls ("payment happens at join time, before the line
// moves"); it never does payout math itself.
type Ledger interface {
	// Charge debits player by amount in favor of the game's wallet.
	Charge(playerID, gameKey string, amount uint64) error
	// Release returns a deleted game's storage deposit to its owner.
	Release(gameKey, ownerID string) error
}
