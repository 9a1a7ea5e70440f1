// Package seat implements the per-game seat set: a fixed collection of
// competitive slots, each holding one active occupant plus a FIFO line of
// waiting challengers.
//
// Waiting-line nodes live in a small arena owned by the Set and are linked
// by stable indices rather than pointers. That keeps the one genuinely
// tricky mutation - moving a whole line from one seat to another during a
// king-of-the-hill rebalance - down to swapping a couple of indices.
package seat

// Mode selects the rotation contract the seats were created under.
type Mode int

const (
	Normal Mode = iota
	KingOfHill
	TeamKingOfHill
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case KingOfHill:
		return "king-of-hill"
	case TeamKingOfHill:
		return "team-king-of-hill"
	}
	return "unknown"
}

// none marks an absent arena index (empty seat, end of line).
const none = -1

// entry is one waiting-line node: a player identity and a forward link.
type entry struct {
	id   string
	next int
}

// Seat is one competitive slot. active and tail are arena indices;
// tail == active whenever the line behind the occupant is empty.
type Seat struct {
	active  int
	tail    int
	waiting int
}

// Set is the fixed group of 1-4 seats belonging to one game, plus the
// arena backing every seat's waiting line.
type Set struct {
	entries []entry
	free    []int
	seats   []Seat
	mode    Mode
}

// NewSet creates a set of seatCount empty seats under the given mode.
func NewSet(seatCount int, mode Mode) (*Set, error) {
	if seatCount < 1 || seatCount > 4 {
		return nil, ErrBadSeatCount
	}
	if mode == TeamKingOfHill && seatCount != 4 {
		return nil, ErrTeamNeedsFour
	}
	s := &Set{
		seats: make([]Seat, seatCount),
		mode:  mode,
	}
	for i := range s.seats {
		s.seats[i] = Seat{active: none, tail: none}
	}
	return s, nil
}

func (s *Set) alloc(id string) int {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.entries[idx] = entry{id: id, next: none}
		return idx
	}
	s.entries = append(s.entries, entry{id: id, next: none})
	return len(s.entries) - 1
}

func (s *Set) release(idx int) {
	s.entries[idx] = entry{next: none}
	s.free = append(s.free, idx)
}

// Len returns the number of seats; seat indices run [0, Len).
func (s *Set) Len() int { return len(s.seats) }

// Mode returns the rotation mode the set was created with.
func (s *Set) Mode() Mode { return s.mode }

func (s *Set) valid(i int) bool { return i >= 0 && i < len(s.seats) }

// Occupant returns the identity currently playing seat i, or "" if the
// seat is empty.
func (s *Set) Occupant(i int) string {
	if !s.valid(i) || s.seats[i].active == none {
		return ""
	}
	return s.entries[s.seats[i].active].id
}

// Tail returns the identity of the last entry in seat i's line. It equals
// Occupant(i) when nobody is waiting.
func (s *Set) Tail(i int) string {
	if !s.valid(i) || s.seats[i].tail == none {
		return ""
	}
	return s.entries[s.seats[i].tail].id
}

// Waiting returns the number of players queued behind seat i's occupant.
func (s *Set) Waiting(i int) int {
	if !s.valid(i) {
		return 0
	}
	return s.seats[i].waiting
}

// Empty reports whether seat i has no active occupant.
func (s *Set) Empty(i int) bool {
	return s.valid(i) && s.seats[i].active == none
}

// Contains reports whether id is anywhere in the set, active or waiting.
func (s *Set) Contains(id string) bool {
	for i := range s.seats {
		for idx := s.seats[i].active; idx != none; idx = s.entries[idx].next {
			if s.entries[idx].id == id {
				return true
			}
		}
	}
	return false
}

// Enqueue appends id to seat i's line. If the seat is empty the player
// becomes the active occupant immediately and the waiting count stays 0.
func (s *Set) Enqueue(i int, id string) error {
	if !s.valid(i) {
		return ErrUnknownSeat
	}
	idx := s.alloc(id)
	st := &s.seats[i]
	if st.active == none {
		st.active = idx
		st.tail = idx
		return nil
	}
	s.entries[st.tail].next = idx
	st.tail = idx
	st.waiting++
	return nil
}

// PopActive removes seat i's occupant and promotes the next waiter.
// It returns the finished identity and the new occupant ("" if the seat
// is now empty).
func (s *Set) PopActive(i int) (finished, next string, err error) {
	if !s.valid(i) {
		return "", "", ErrUnknownSeat
	}
	st := &s.seats[i]
	if st.active == none {
		return "", "", ErrEmptySeatAdvance
	}
	finished = s.entries[st.active].id
	succ := s.entries[st.active].next
	s.release(st.active)
	if succ == none {
		st.active = none
		st.tail = none
		st.waiting = 0
		return finished, "", nil
	}
	st.active = succ
	st.waiting--
	return finished, s.entries[succ].id, nil
}

// Transplant moves the whole waiting line of seat from onto empty seat to:
// the head waiter becomes to's occupant and the rest of the line follows.
// Seat from keeps its occupant with an empty line. No-op unless to is
// empty and from has at least one waiter.
func (s *Set) Transplant(to, from int) bool {
	if !s.valid(to) || !s.valid(from) || to == from {
		return false
	}
	src := &s.seats[from]
	dst := &s.seats[to]
	if dst.active != none || src.active == none || src.waiting == 0 {
		return false
	}
	head := s.entries[src.active].next
	dst.active = head
	dst.tail = src.tail
	dst.waiting = src.waiting - 1
	s.entries[src.active].next = none
	src.tail = src.active
	src.waiting = 0
	return true
}

// Reset empties every seat and frees the arena. Idempotent.
func (s *Set) Reset() {
	for i := range s.seats {
		s.seats[i] = Seat{active: none, tail: none}
	}
	s.entries = s.entries[:0]
	s.free = s.free[:0]
}

// Line returns the identities in seat i front to back, occupant first.
// Intended for snapshots and invariant checks.
func (s *Set) Line(i int) []string {
	if !s.valid(i) {
		return nil
	}
	var out []string
	for idx := s.seats[i].active; idx != none; idx = s.entries[idx].next {
		out = append(out, s.entries[idx].id)
	}
	return out
}
