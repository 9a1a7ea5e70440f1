// Package engine orchestrates joins, round advances and teardown over a
// seat set under one of three rotation policies. Every operation validates
// the caller's view of the world before touching a single seat, so a
// precondition failure never leaves a half-rotated set behind.
package engine

import "github.com/n8cade/arcade/internal/seat"

// AutoSeat asks Join to pick the seat itself (normal policy only).
const AutoSeat = -1

// Result describes what one mutating operation did to the set. It feeds
// the per-operation notice published by the app layer.
type Result struct {
	Seats         []int
	Finished      []string
	NewOccupants  []string
	WaitingCounts []int
}

func (r *Result) record(s *seat.Set, i int, finished string) {
	r.Seats = append(r.Seats, i)
	r.Finished = append(r.Finished, finished)
	r.NewOccupants = append(r.NewOccupants, s.Occupant(i))
	r.WaitingCounts = append(r.WaitingCounts, s.Waiting(i))
}

// Join seats player in the set and returns the seat index used.
//
// Under the normal policy a hint of AutoSeat lets the engine pick: the
// lowest-indexed empty seat wins, otherwise the seat with the shortest
// line (ties to the lowest index). An explicit hint is validated and used
// as-is. King-of-the-hill policies always require an explicit hint, since
// seats are fixed competitive positions there.
func Join(s *seat.Set, player string, hint int) (int, error) {
	if s.Contains(player) {
		return 0, ErrAlreadyQueued
	}

	target := hint
	if s.Mode() == seat.Normal && hint == AutoSeat {
		target = pickSeat(s)
	}
	if target < 0 || target >= s.Len() {
		return 0, seat.ErrUnknownSeat
	}
	if err := s.Enqueue(target, player); err != nil {
		return 0, err
	}
	return target, nil
}

// pickSeat implements the normal-policy balancing rule.
func pickSeat(s *seat.Set) int {
	for i := 0; i < s.Len(); i++ {
		if s.Empty(i) {
			return i
		}
	}
	best := 0
	for i := 1; i < s.Len(); i++ {
		if s.Waiting(i) < s.Waiting(best) {
			best = i
		}
	}
	return best
}

// Finish resets every seat, discarding occupants and waiters alike.
// It always succeeds and is safe to call repeatedly.
func Finish(s *seat.Set) Result {
	var res Result
	for i := 0; i < s.Len(); i++ {
		res.Seats = append(res.Seats, i)
		res.Finished = append(res.Finished, s.Occupant(i))
	}
	s.Reset()
	for range res.Seats {
		res.NewOccupants = append(res.NewOccupants, "")
		res.WaitingCounts = append(res.WaitingCounts, 0)
	}
	return res
}
