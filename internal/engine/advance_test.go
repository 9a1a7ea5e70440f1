package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8cade/arcade/internal/seat"
)

func kothSet(t *testing.T, lines ...[]string) *seat.Set {
	t.Helper()
	mode := seat.KingOfHill
	if len(lines) == 4 {
		mode = seat.TeamKingOfHill
	}
	s, err := seat.NewSet(len(lines), mode)
	require.NoError(t, err)
	for i, line := range lines {
		for _, id := range line {
			require.NoError(t, s.Enqueue(i, id))
		}
	}
	return s
}

func TestAdvanceNormalLockstep(t *testing.T) {
	s, _ := seat.NewSet(2, seat.Normal)
	for _, id := range []string{"a", "b", "c"} {
		_, err := Join(s, id, AutoSeat)
		require.NoError(t, err)
	}
	// seat 0: [a c], seat 1: [b]

	res, err := AdvanceNormal(s, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Seats)
	assert.Equal(t, []string{"a", "b"}, res.Finished)
	assert.Equal(t, []string{"c", ""}, res.NewOccupants)
	assert.Equal(t, "c", s.Occupant(0))
	assert.True(t, s.Empty(1))
}

func TestAdvanceNormalRejectsStaleOccupants(t *testing.T) {
	s, _ := seat.NewSet(2, seat.Normal)
	_, _ = Join(s, "a", AutoSeat)
	_, _ = Join(s, "b", AutoSeat)

	_, err := AdvanceNormal(s, []string{"a", "nope"})
	assert.ErrorIs(t, err, seat.ErrEmptySeatAdvance)

	// nothing moved
	assert.Equal(t, "a", s.Occupant(0))
	assert.Equal(t, "b", s.Occupant(1))

	_, err = AdvanceNormal(s, []string{"a"})
	assert.ErrorIs(t, err, seat.ErrEmptySeatAdvance)
}

func TestAdvanceNormalWrongPolicy(t *testing.T) {
	s, _ := seat.NewSet(2, seat.KingOfHill)
	_, err := AdvanceNormal(s, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrWrongPolicy)
}

func TestKingOfHillRebalanceTransplant(t *testing.T) {
	// seat 0: W with [X, Y] waiting, seat 1: L with nobody behind.
	// W wins: X takes seat 1 and brings Y with him, W holds seat 0 alone.
	s := kothSet(t, []string{"W", "X", "Y"}, []string{"L"})

	res, err := AdvanceKingOfHill(s, "W", []string{"L"})
	require.NoError(t, err)

	assert.Equal(t, "X", s.Occupant(1))
	assert.Equal(t, "Y", s.Tail(1))
	assert.Equal(t, 1, s.Waiting(1))
	assert.Equal(t, "W", s.Occupant(0))
	assert.Equal(t, 0, s.Waiting(0))
	assert.Contains(t, res.Finished, "L")
}

func TestKingOfHillLoserSuccessorWins(t *testing.T) {
	// loser has his own challenger queued: no transplant happens
	s := kothSet(t, []string{"W", "X"}, []string{"L", "M"})

	_, err := AdvanceKingOfHill(s, "W", []string{"L"})
	require.NoError(t, err)

	assert.Equal(t, "M", s.Occupant(1))
	assert.Equal(t, "W", s.Occupant(0))
	assert.Equal(t, 1, s.Waiting(0)) // X still waiting behind the king
}

func TestKingOfHillBothLinesEmpty(t *testing.T) {
	s := kothSet(t, []string{"W"}, []string{"L"})

	res, err := AdvanceKingOfHill(s, "W", []string{"L"})
	require.NoError(t, err)

	assert.True(t, s.Empty(1))
	assert.Equal(t, "W", s.Occupant(0))
	assert.Equal(t, []string{"L"}, res.Finished)
	assert.Equal(t, []string{""}, res.NewOccupants)
}

func TestKingOfHillThreeSeats(t *testing.T) {
	// winner in the middle with two challengers; losers on both sides with
	// empty lines. Only the lowest-indexed emptied seat gets the surplus.
	s := kothSet(t, []string{"L1"}, []string{"W", "X", "Y"}, []string{"L2"})

	_, err := AdvanceKingOfHill(s, "W", []string{"L1", "L2"})
	require.NoError(t, err)

	assert.Equal(t, "X", s.Occupant(0))
	assert.Equal(t, "Y", s.Tail(0))
	assert.Equal(t, "W", s.Occupant(1))
	assert.Equal(t, 0, s.Waiting(1))
	assert.True(t, s.Empty(2))
}

func TestKingOfHillRoleMismatch(t *testing.T) {
	s := kothSet(t, []string{"W"}, []string{"L"})

	_, err := AdvanceKingOfHill(s, "W", []string{"stranger"})
	assert.ErrorIs(t, err, ErrRoleMismatch)

	_, err = AdvanceKingOfHill(s, "stranger", []string{"L"})
	assert.ErrorIs(t, err, ErrRoleMismatch)

	_, err = AdvanceKingOfHill(s, "W", []string{})
	assert.ErrorIs(t, err, ErrRoleMismatch)

	// untouched on every failure
	assert.Equal(t, "W", s.Occupant(0))
	assert.Equal(t, "L", s.Occupant(1))
}

func TestKingOfHillEmptySeatIsMismatch(t *testing.T) {
	s, _ := seat.NewSet(2, seat.KingOfHill)
	require.NoError(t, s.Enqueue(0, "W"))

	_, err := AdvanceKingOfHill(s, "W", []string{"L"})
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestTeamKingOfHillPairwiseRebalance(t *testing.T) {
	// seats: 0=W1 [A], 1=W2, 2=L1, 3=L2 [B]
	s := kothSet(t,
		[]string{"W1", "A"},
		[]string{"W2"},
		[]string{"L1"},
		[]string{"L2", "B"},
	)

	_, err := AdvanceTeamKingOfHill(s, [2]string{"W1", "W2"}, [2]string{"L1", "L2"})
	require.NoError(t, err)

	// L1's seat had no successor: pulls from W1's line specifically
	assert.Equal(t, "A", s.Occupant(2))
	assert.Equal(t, 0, s.Waiting(0))
	// L2's own successor takes over, W2 untouched
	assert.Equal(t, "B", s.Occupant(3))
	assert.Equal(t, "W1", s.Occupant(0))
	assert.Equal(t, "W2", s.Occupant(1))
}

func TestTeamKingOfHillEmptyMatchingWinnerLine(t *testing.T) {
	// L2's matching winner W2 has nobody queued, so the seat goes empty
	// even though W1 still has a full line.
	s := kothSet(t,
		[]string{"W1", "A", "B"},
		[]string{"W2"},
		[]string{"L1"},
		[]string{"L2"},
	)

	_, err := AdvanceTeamKingOfHill(s, [2]string{"W1", "W2"}, [2]string{"L1", "L2"})
	require.NoError(t, err)

	assert.Equal(t, "A", s.Occupant(2)) // from W1, pairwise
	assert.True(t, s.Empty(3))          // W2 had nothing to give
	assert.Equal(t, 0, s.Waiting(0))
	assert.Equal(t, "B", s.Tail(2))
}

func TestTeamKingOfHillRoleMismatch(t *testing.T) {
	s := kothSet(t,
		[]string{"W1"}, []string{"W2"}, []string{"L1"}, []string{"L2"},
	)

	_, err := AdvanceTeamKingOfHill(s, [2]string{"W1", "nope"}, [2]string{"L1", "L2"})
	assert.ErrorIs(t, err, ErrRoleMismatch)

	for i, want := range []string{"W1", "W2", "L1", "L2"} {
		assert.Equal(t, want, s.Occupant(i))
	}
}

func TestTeamKingOfHillWrongPolicy(t *testing.T) {
	s, _ := seat.NewSet(2, seat.KingOfHill)
	_, err := AdvanceTeamKingOfHill(s, [2]string{"a", "b"}, [2]string{"c", "d"})
	assert.ErrorIs(t, err, ErrWrongPolicy)

	s4, _ := seat.NewSet(4, seat.TeamKingOfHill)
	_, err = AdvanceKingOfHill(s4, "a", []string{"b", "c", "d"})
	assert.ErrorIs(t, err, ErrWrongPolicy)
}
