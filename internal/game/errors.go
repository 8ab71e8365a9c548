package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChoice  = errors.New("invalid choice")
	ErrNoDecision     = errors.New("no decision pending")
	ErrBattleOver     = errors.New("battle is over")
	ErrLocked         = errors.New("locked into a move")
	ErrTrapped        = errors.New("cannot switch out")
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
	ErrUnknownItem    = errors.New("unknown item")
	ErrUnknownAbility = errors.New("unknown ability")
	ErrUnknownMod     = errors.New("unknown mod")
	ErrBadRoster      = errors.New("bad roster")
	ErrUnsupportedGen = errors.New("unsupported generation")
	ErrNoHandler      = errors.New("no handler for move")
	ErrBattleBroken   = errors.New("battle aborted after an internal error")
)

// ChoiceError is returned when a player's submission is rejected. The
// battle state is unchanged.
type ChoiceError struct {
	Player string
	Reason string
	Err    error
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Player, e.Reason, e.Err)
}

func (e *ChoiceError) Unwrap() error { return e.Err }

func rejectChoice(p *Player, err error, format string, args ...any) error {
	return &ChoiceError{Player: p.ID, Reason: fmt.Sprintf(format, args...), Err: err}
}
