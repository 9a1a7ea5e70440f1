// Package engine - advance.go
// Round-end rotation under each policy. Classification happens up front;
// only once every seat has a role do we start popping occupants.
package engine

import (
	"sort"

	"github.com/n8cade/arcade/internal/seat"
)

// AdvanceNormal rotates every seat in lockstep. current names the occupant
// the caller believes is seated at each index; a stale name rejects the
// whole advance before any seat moves.
func AdvanceNormal(s *seat.Set, current []string) (Result, error) {
	if s.Mode() != seat.Normal {
		return Result{}, ErrWrongPolicy
	}
	if len(current) != s.Len() {
		return Result{}, seat.ErrEmptySeatAdvance
	}
	for i, want := range current {
		if s.Empty(i) || s.Occupant(i) != want {
			return Result{}, seat.ErrEmptySeatAdvance
		}
	}

	var res Result
	for i := 0; i < s.Len(); i++ {
		finished, _, err := s.PopActive(i)
		if err != nil {
			// unreachable after validation above
			return Result{}, err
		}
		res.record(s, i, finished)
	}
	return res, nil
}

// AdvanceKingOfHill rotates only the losing seats: each loser is popped
// and, if its line ran dry while the winner still has challengers queued,
// the winner's whole surplus line is transplanted over so nobody is left
// stranded behind a seat that never rotates. The winner keeps the seat.
func AdvanceKingOfHill(s *seat.Set, winner string, losers []string) (Result, error) {
	if s.Mode() != seat.KingOfHill {
		return Result{}, ErrWrongPolicy
	}
	if len(losers) != s.Len()-1 {
		return Result{}, ErrRoleMismatch
	}

	winSeat, loseSeats, err := classify(s, []string{winner}, losers)
	if err != nil {
		return Result{}, err
	}
	// losing seats rotate in ascending seat order; the winner's line can
	// only feed one of them, so the order is part of the contract
	sort.Ints(loseSeats)

	var res Result
	for _, i := range loseSeats {
		finished, next, err := s.PopActive(i)
		if err != nil {
			return Result{}, err
		}
		if next == "" && s.Transplant(i, winSeat[0]) {
			res.record(s, winSeat[0], "")
		}
		res.record(s, i, finished)
	}
	return res, nil
}

// AdvanceTeamKingOfHill rotates the two losing-team seats of a 4-seat set.
// Rebalancing is pairwise: the seat vacated by losers[i] may only pull
// from winners[i]'s line. Winning seats never move.
func AdvanceTeamKingOfHill(s *seat.Set, winners, losers [2]string) (Result, error) {
	if s.Mode() != seat.TeamKingOfHill {
		return Result{}, ErrWrongPolicy
	}

	winSeats, loseSeats, err := classify(s, winners[:], losers[:])
	if err != nil {
		return Result{}, err
	}

	var res Result
	for k, i := range loseSeats {
		finished, next, err := s.PopActive(i)
		if err != nil {
			return Result{}, err
		}
		if next == "" && s.Transplant(i, winSeats[k]) {
			res.record(s, winSeats[k], "")
		}
		res.record(s, i, finished)
	}
	return res, nil
}

// classify maps reported winners and losers onto seat indices by occupant
// identity. Every seat must match exactly one reported player; anything
// else is a role mismatch and aborts before mutation.
func classify(s *seat.Set, winners, losers []string) (winSeats, loseSeats []int, err error) {
	winSeats = make([]int, len(winners))
	loseSeats = make([]int, len(losers))
	for i := range winSeats {
		winSeats[i] = -1
	}
	for i := range loseSeats {
		loseSeats[i] = -1
	}

	for i := 0; i < s.Len(); i++ {
		occ := s.Occupant(i)
		if occ == "" {
			return nil, nil, ErrRoleMismatch
		}
		matched := false
		for w, id := range winners {
			if occ == id && winSeats[w] == -1 {
				winSeats[w] = i
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for l, id := range losers {
			if occ == id && loseSeats[l] == -1 {
				loseSeats[l] = i
				matched = true
				break
			}
		}
		if !matched {
			return nil, nil, ErrRoleMismatch
		}
	}
	for _, i := range winSeats {
		if i == -1 {
			return nil, nil, ErrRoleMismatch
		}
	}
	for _, i := range loseSeats {
		if i == -1 {
			return nil, nil, ErrRoleMismatch
		}
	}
	return winSeats, loseSeats, nil
}
