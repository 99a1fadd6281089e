package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrInvalidColumn    = errors.New("invalid column label")
	ErrInvalidCell      = errors.New("invalid cell label")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrColumnFull       = errors.New("column is already full")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInputClosed      = errors.New("input is closed")
)
