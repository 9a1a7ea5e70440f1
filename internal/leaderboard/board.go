// Package leaderboard keeps the classic three-slot arcade scoreboard per
// game: three-letter names, a wallet identity to pay out to, and scores
// that stay sorted high to low.
package leaderboard

import (
	"strings"
	"unicode/utf8"

	"github.com/holiman/uint256"
)

type lerr string

func (e lerr) Error() string { return string(e) }

var (
	ErrIllegalName   = lerr("name must be 1 to 3 characters")
	ErrScoreTooLarge = lerr("score does not fit in 128 bits")
)

// Place is one slot on the board.
type Place struct {
	Name  string
	ID    string
	Score *uint256.Int
}

// Board is the ranked triple. First.Score >= Second.Score >= Third.Score
// holds at all times.
type Board struct {
	First  Place
	Second Place
	Third  Place
}

// New seeds a fresh board with the traditional placeholder entries, all
// attributed to the game's own wallet.
func New(walletID string) *Board {
	return &Board{
		First:  Place{Name: "AAA", ID: walletID, Score: uint256.NewInt(100)},
		Second: Place{Name: "BBB", ID: walletID, Score: uint256.NewInt(50)},
		Third:  Place{Name: "CCC", ID: walletID, Score: uint256.NewInt(25)},
	}
}

// normalizeName pads short names with trailing spaces to exactly three
// characters, arcade style. Zero or more than three is rejected.
func normalizeName(name string) (string, error) {
	switch utf8.RuneCountInString(name) {
	case 1:
		return name + "  ", nil
	case 2:
		return name + " ", nil
	case 3:
		return name, nil
	}
	return "", ErrIllegalName
}

// Record offers a new score to the board. It returns true when the board
// changed. Scores are unsigned 128-bit values; anything wider is rejected.
func (b *Board) Record(name, id string, score *uint256.Int) (bool, error) {
	name, err := normalizeName(name)
	if err != nil {
		return false, err
	}
	if score == nil || score.BitLen() > 128 {
		return false, ErrScoreTooLarge
	}

	if !score.Gt(b.Third.Score) {
		return false, nil
	}

	place := Place{Name: name, ID: id, Score: score.Clone()}
	switch {
	case score.Gt(b.First.Score):
		b.Third = b.Second
		b.Second = b.First
		b.First = place
	case score.Gt(b.Second.Score):
		b.Third = b.Second
		b.Second = place
	default:
		b.Third = place
	}
	return true, nil
}

// Names returns the three place names top down, for event payloads.
func (b *Board) Names() (first, second, third string) {
	return b.First.Name, b.Second.Name, b.Third.Name
}

// String renders the board in the usual one-line arcade form.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.First.Name + ":" + b.First.Score.Dec())
	sb.WriteString(" " + b.Second.Name + ":" + b.Second.Score.Dec())
	sb.WriteString(" " + b.Third.Name + ":" + b.Third.Score.Dec())
	return sb.String()
}
