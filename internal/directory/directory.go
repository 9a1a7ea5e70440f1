// Package directory maintains the arcade's game list: one aggregate per
// game (seats, leaderboard, owner) linked newest-first in a doubly linked
// list, the way cabinets line up against the wall.
package directory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/n8cade/arcade/internal/leaderboard"
	"github.com/n8cade/arcade/internal/seat"
)

const maxTitleLen = 30

type derr string

func (e derr) Error() string { return string(e) }

var (
	ErrGameNotFound = derr("game not found")
	ErrTitleTooLong = derr("game title is limited to 30 characters")
	ErrNotGameOwner = derr("cannot delete another user's game")
	ErrBadNeighbors = derr("neighbor games do not link to the game being deleted")
)

// Game is the aggregate root for one arcade machine. Seats is nil until
// the first InitSeats for the game.
type Game struct {
	Key         string
	Title       string
	WebGLHash   string
	GameArtHash string
	OwnerID     string
	WalletID    string

	// directory links, newest game first
	EarlierKey string // the game posted after this one (more recent)
	LaterKey   string // the game posted before this one (less recent)

	Board *leaderboard.Board
	Seats *seat.Set

	mu sync.Mutex
}

// Do runs fn while holding the game's lock. All seat, board and link
// mutations for one game go through here so operations never interleave.
func (g *Game) Do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}

// Directory is the shared list of games, keyed by game key and threaded
// newest-first.
type Directory struct {
	mu         sync.Mutex
	games      map[string]*Game
	mostRecent string
	authority  string
}

func New(authority string) *Directory {
	return &Directory{
		games:     make(map[string]*Game),
		authority: authority,
	}
}

// Authority returns the identity that initialized the arcade.
func (d *Directory) Authority() string { return d.authority }

// MostRecent returns the key of the newest game, or "" when the arcade
// is empty.
func (d *Directory) MostRecent() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mostRecent
}

// Get looks a game up by key.
func (d *Directory) Get(key string) (*Game, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	g, ok := d.games[key]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Create inserts a new game at the head of the list with a freshly seeded
// leaderboard and no seats. The new game points "later" at the previous
// head; a game with no earlier neighbor links to itself.
func (d *Directory) Create(title, webGLHash, gameArtHash, ownerID, walletID string) (*Game, error) {
	if len(title) > maxTitleLen {
		return nil, ErrTitleTooLong
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	g := &Game{
		Key:         uuid.NewString(),
		Title:       title,
		WebGLHash:   webGLHash,
		GameArtHash: gameArtHash,
		OwnerID:     ownerID,
		WalletID:    walletID,
		Board:       leaderboard.New(walletID),
	}
	g.EarlierKey = g.Key
	if d.mostRecent == "" {
		g.LaterKey = g.Key
	} else {
		g.LaterKey = d.mostRecent
		d.games[d.mostRecent].EarlierKey = g.Key
	}
	d.games[g.Key] = g
	d.mostRecent = g.Key
	return g, nil
}

// Delete removes a game from the middle of the list. The caller names both
// neighbors; the delete only goes through when the links agree, and only
// for the game's owner.
func (d *Directory) Delete(key, earlierKey, laterKey, callerID string) (*Game, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.games[key]
	if !ok {
		return nil, ErrGameNotFound
	}
	if g.OwnerID != callerID {
		return nil, ErrNotGameOwner
	}
	earlier, ok := d.games[earlierKey]
	if !ok {
		return nil, ErrBadNeighbors
	}
	later, ok := d.games[laterKey]
	if !ok {
		return nil, ErrBadNeighbors
	}
	if earlier.LaterKey != key || later.EarlierKey != key {
		return nil, ErrBadNeighbors
	}

	earlier.LaterKey = later.Key
	later.EarlierKey = earlier.Key
	delete(d.games, key)
	return g, nil
}

// DeleteMostRecent removes the head game. The surviving head becomes
// self-parented and the directory pointer moves down one.
func (d *Directory) DeleteMostRecent(key, laterKey, callerID string) (*Game, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.games[key]
	if !ok {
		return nil, ErrGameNotFound
	}
	if g.OwnerID != callerID {
		return nil, ErrNotGameOwner
	}
	if d.mostRecent != key {
		return nil, ErrBadNeighbors
	}
	if laterKey == key {
		// the head was the only game; self-link marks the end of the list
		if g.LaterKey != key {
			return nil, ErrBadNeighbors
		}
		d.mostRecent = ""
		delete(d.games, key)
		return g, nil
	}
	later, ok := d.games[laterKey]
	if !ok || g.LaterKey != later.Key || later.EarlierKey != key {
		return nil, ErrBadNeighbors
	}

	later.EarlierKey = later.Key
	d.mostRecent = later.Key
	delete(d.games, key)
	return g, nil
}

// Keys returns all game keys newest-first by walking the list.
func (d *Directory) Keys() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []string
	key := d.mostRecent
	for key != "" {
		g, ok := d.games[key]
		if !ok {
			break
		}
		out = append(out, key)
		if g.LaterKey == key {
			break // oldest game links to itself
		}
		key = g.LaterKey
	}
	return out
}
