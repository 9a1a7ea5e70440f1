// Package seat - errors.go
// Centralized, comparable error values shared with the engine layer.
package seat

// serr is a lightweight comparable error type.
// Using constants of this type allows errors.Is to work as expected.
type serr string

func (e serr) Error() string { return string(e) }

var (
	ErrBadSeatCount     = serr("seat count must be between 1 and 4")
	ErrTeamNeedsFour    = serr("team king of hill requires exactly 4 seats")
	ErrUnknownSeat      = serr("seat index does not match a live seat")
	ErrEmptySeatAdvance = serr("cannot advance a seat with no active occupant")
)
