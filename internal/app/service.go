// Package app wires the arcade together: the directory of games, the
// matchmaking engine, the ledger boundary and the notice bus. Every
// operation on one game runs under that game's lock, so callers get the
// same all-or-nothing, serialized behavior the on-ledger platform would
// enforce with transaction atomicity.
package app

import (
	"github.com/holiman/uint256"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/n8cade/arcade/internal/directory"
	"github.com/n8cade/arcade/internal/domain/events"
	"github.com/n8cade/arcade/internal/engine"
	"github.com/n8cade/arcade/internal/ports"
	"github.com/n8cade/arcade/internal/seat"
)

type aerr string

func (e aerr) Error() string { return string(e) }

var (
	ErrSeatsNotInitialized = aerr("game has no seat set yet")
	ErrSeatsLive           = aerr("game already has live seats")
)

// AutoSeat re-exported so callers don't need to import the engine.
const AutoSeat = engine.AutoSeat

// Service is the single entry point for arcade operations.
type Service struct {
	dir     *directory.Directory
	ledger  ports.Ledger
	log     zerolog.Logger
	joinFee uint64
}

func NewService(dir *directory.Directory, l ports.Ledger, log zerolog.Logger, joinFee uint64) *Service {
	return &Service{dir: dir, ledger: l, log: log, joinFee: joinFee}
}

// Directory exposes the underlying game list for read-side callers.
func (s *Service) Directory() *directory.Directory { return s.dir }

// CreateGame registers a new machine at the head of the directory.
func (s *Service) CreateGame(title, webGLHash, gameArtHash, ownerID, walletID string) (string, error) {
	prevHead := s.dir.MostRecent()
	g, err := s.dir.Create(title, webGLHash, gameArtHash, ownerID, walletID)
	if err != nil {
		return "", eris.Wrap(err, "create game")
	}

	s.log.Info().Str("game", g.Key).Str("title", title).Str("owner", ownerID).Msg("game created")
	events.Publish(events.GameNotice{
		Label:        "CREATE",
		GameID:       g.Key,
		LessRecentID: prevHead,
	})
	return g.Key, nil
}

// DeleteGame unsplices a game; the caller must name both directory
// neighbors. Storage goes back to the owner through the ledger.
func (s *Service) DeleteGame(key, earlierKey, laterKey, callerID string) error {
	g, err := s.dir.Delete(key, earlierKey, laterKey, callerID)
	if err != nil {
		return eris.Wrap(err, "delete game")
	}
	if err := s.ledger.Release(g.WalletID, g.OwnerID); err != nil {
		s.log.Error().Err(err).Str("game", key).Msg("storage release failed")
	}

	s.log.Info().Str("game", key).Msg("game deleted")
	events.Publish(events.GameNotice{
		Label:        "DELETE",
		GameID:       key,
		MoreRecentID: earlierKey,
		LessRecentID: laterKey,
	})
	return nil
}

// DeleteMostRecentGame removes the directory head.
func (s *Service) DeleteMostRecentGame(key, laterKey, callerID string) error {
	g, err := s.dir.DeleteMostRecent(key, laterKey, callerID)
	if err != nil {
		return eris.Wrap(err, "delete most recent game")
	}
	if err := s.ledger.Release(g.WalletID, g.OwnerID); err != nil {
		s.log.Error().Err(err).Str("game", key).Msg("storage release failed")
	}

	s.log.Info().Str("game", key).Msg("head game deleted")
	events.Publish(events.GameNotice{
		Label:        "DELETE",
		GameID:       key,
		LessRecentID: laterKey,
	})
	return nil
}

// InitSeats creates (or revives) the game's seat set and seats the paying
// first player. An existing set must be fully finished before it can be
// reused.
func (s *Service) InitSeats(gameKey string, seatCount int, mode seat.Mode, firstPlayer string) error {
	g, err := s.dir.Get(gameKey)
	if err != nil {
		return eris.Wrap(err, "init seats")
	}

	err = g.Do(func() error {
		if g.Seats != nil {
			for i := 0; i < g.Seats.Len(); i++ {
				if !g.Seats.Empty(i) {
					return ErrSeatsLive
				}
			}
		}
		set, err := seat.NewSet(seatCount, mode)
		if err != nil {
			return err
		}
		// fee before any line moves; the set isn't attached yet so a
		// failed charge leaves the game untouched
		if err := s.ledger.Charge(firstPlayer, g.WalletID, s.joinFee); err != nil {
			return err
		}
		hint := engine.AutoSeat
		if mode != seat.Normal {
			hint = 0
		}
		if _, err := engine.Join(set, firstPlayer, hint); err != nil {
			return err
		}
		g.Seats = set
		return nil
	})
	if err != nil {
		return eris.Wrap(err, "init seats")
	}

	s.log.Info().Str("game", gameKey).Int("seats", seatCount).Stringer("mode", mode).Msg("seats initialized")
	events.Publish(events.QueueNotice{
		GameID:        gameKey,
		Operation:     "INIT",
		Seats:         []int{0},
		Finished:      []string{""},
		NewOccupants:  []string{firstPlayer},
		WaitingCounts: []int{0},
	})
	return nil
}

// Join seats a player, charging the join fee before the line moves.
// hint is AutoSeat for normal games; king-of-the-hill games address a
// seat explicitly.
func (s *Service) Join(gameKey, player string, hint int) (int, error) {
	g, err := s.dir.Get(gameKey)
	if err != nil {
		return 0, eris.Wrap(err, "join")
	}

	var (
		idx      int
		occupant string
		waiting  int
	)
	err = g.Do(func() error {
		if g.Seats == nil {
			return ErrSeatsNotInitialized
		}
		// validate before charging so a rejected join costs nothing
		if g.Seats.Contains(player) {
			return engine.ErrAlreadyQueued
		}
		if g.Seats.Mode() != seat.Normal || hint != engine.AutoSeat {
			if hint < 0 || hint >= g.Seats.Len() {
				return seat.ErrUnknownSeat
			}
		}
		if err := s.ledger.Charge(player, g.WalletID, s.joinFee); err != nil {
			return err
		}
		var err error
		idx, err = engine.Join(g.Seats, player, hint)
		if err != nil {
			return err
		}
		occupant = g.Seats.Occupant(idx)
		waiting = g.Seats.Waiting(idx)
		return nil
	})
	if err != nil {
		return 0, eris.Wrap(err, "join")
	}

	s.log.Debug().Str("game", gameKey).Str("player", player).Int("seat", idx).Msg("player joined")
	events.Publish(events.QueueNotice{
		GameID:        gameKey,
		Operation:     "JOIN",
		Seats:         []int{idx},
		Finished:      []string{""},
		NewOccupants:  []string{occupant},
		WaitingCounts: []int{waiting},
	})
	return idx, nil
}

// AdvanceNormal rotates every seat in lockstep.
func (s *Service) AdvanceNormal(gameKey string, current []string) error {
	return s.advance(gameKey, func(set *seat.Set) (engine.Result, error) {
		return engine.AdvanceNormal(set, current)
	})
}

// AdvanceKingOfHill rotates only the losing seats.
func (s *Service) AdvanceKingOfHill(gameKey, winner string, losers []string) error {
	return s.advance(gameKey, func(set *seat.Set) (engine.Result, error) {
		return engine.AdvanceKingOfHill(set, winner, losers)
	})
}

// AdvanceTeamKingOfHill rotates the losing team's pair of seats.
func (s *Service) AdvanceTeamKingOfHill(gameKey string, winners, losers [2]string) error {
	return s.advance(gameKey, func(set *seat.Set) (engine.Result, error) {
		return engine.AdvanceTeamKingOfHill(set, winners, losers)
	})
}

func (s *Service) advance(gameKey string, fn func(*seat.Set) (engine.Result, error)) error {
	g, err := s.dir.Get(gameKey)
	if err != nil {
		return eris.Wrap(err, "advance")
	}

	var res engine.Result
	err = g.Do(func() error {
		if g.Seats == nil {
			return ErrSeatsNotInitialized
		}
		var err error
		res, err = fn(g.Seats)
		return err
	})
	if err != nil {
		return eris.Wrap(err, "advance")
	}

	s.log.Debug().Str("game", gameKey).Ints("seats", res.Seats).Strs("finished", res.Finished).Msg("seats advanced")
	events.Publish(events.QueueNotice{
		GameID:        gameKey,
		Operation:     "ADVANCE",
		Seats:         res.Seats,
		Finished:      res.Finished,
		NewOccupants:  res.NewOccupants,
		WaitingCounts: res.WaitingCounts,
	})
	return nil
}

// FinishSeats tears the seat set down. Idempotent; missing seats are fine.
func (s *Service) FinishSeats(gameKey string) error {
	g, err := s.dir.Get(gameKey)
	if err != nil {
		return eris.Wrap(err, "finish seats")
	}

	var res engine.Result
	err = g.Do(func() error {
		if g.Seats == nil {
			return nil
		}
		res = engine.Finish(g.Seats)
		return nil
	})
	if err != nil {
		return eris.Wrap(err, "finish seats")
	}

	s.log.Info().Str("game", gameKey).Msg("seats finished")
	events.Publish(events.QueueNotice{
		GameID:        gameKey,
		Operation:     "FINISH",
		Seats:         res.Seats,
		Finished:      res.Finished,
		NewOccupants:  res.NewOccupants,
		WaitingCounts: res.WaitingCounts,
	})
	return nil
}

// RecordScore offers a finished player's score to the game's leaderboard.
func (s *Service) RecordScore(gameKey, name, playerID string, score *uint256.Int) error {
	g, err := s.dir.Get(gameKey)
	if err != nil {
		return eris.Wrap(err, "record score")
	}

	var changed bool
	err = g.Do(func() error {
		var err error
		changed, err = g.Board.Record(name, playerID, score)
		return err
	})
	if err != nil {
		return eris.Wrap(err, "record score")
	}
	if !changed {
		return nil
	}

	first, second, third := g.Board.Names()
	s.log.Info().Str("game", gameKey).Str("player", name).Msg("leaderboard updated")
	events.Publish(events.LeaderboardNotice{
		GameID:     gameKey,
		PlayerName: name,
		First:      first,
		Second:     second,
		Third:      third,
	})
	return nil
}
