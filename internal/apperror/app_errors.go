package apperror

import "errors"

var (
	ErrAlreadyFilled        = errors.New("cell is already occupied")
	ErrWrongBoard           = errors.New("move is not on the board the player was sent to")
	ErrBoardAlreadyFinished = errors.New("board is already finished")
	ErrInvalidIndex         = errors.New("index out of range")
	ErrGameFinished         = errors.New("game is already finished")
)
