// Package engine - errors.go
package engine

type eerr string

func (e eerr) Error() string { return string(e) }

var (
	ErrWrongPolicy   = eerr("advance does not match the seat set's rotation policy")
	ErrRoleMismatch  = eerr("reported winners/losers do not match the seated players")
	ErrAlreadyQueued = eerr("player is already seated or waiting in this game")
)
