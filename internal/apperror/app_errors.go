package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrUnknownPlayer = errors.New("unknown player")

	ErrInvalidPosition      = errors.New("invalid position")
	ErrInvalidBoardSize     = errors.New("invalid board size")
	ErrInsufficientPlayers  = errors.New("at least two players are required")
	ErrDuplicatePlayerLabel = errors.New("duplicate player label")
	ErrInvalidPlayerLabel   = errors.New("invalid player label")
)
