package game

import "errors"

var (
	ErrOutOfBoard     = errors.New("position outside board shape")
	ErrEmptyTile      = errors.New("no piece on tile")
	ErrNoAbility      = errors.New("piece has no ability")
	ErrWrongInfo      = errors.New("wrong ability payload")
	ErrCannotUse      = errors.New("ability cannot be used")
	ErrUnknownAction  = errors.New("unknown action")
	ErrPlayerNotFound = errors.New("player not found")
	ErrEmptyDeck      = errors.New("empty deck")
	ErrNotImplemented = errors.New("not implemented")
)
