package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a single session between two players on one board.
type Game struct {
	Board       *Board
	Players     [2]*Player
	Current     *Player
	Other       *Player
	Winner      *Player
	Status      string
	TurnCounter int
}

func NewGame(first, second *Player) *Game {
	return &Game{
		Board:   NewBoard(),
		Players: [2]*Player{first, second},
		Status:  StatusWaiting,
	}
}

// ChooseFirstPlayer picks who moves first and starts the game.
func (that *Game) ChooseFirstPlayer(rng *rand.Rand) *Player {
	if rng.Intn(2) == 0 {
		that.Current, that.Other = that.Players[0], that.Players[1]
	} else {
		that.Current, that.Other = that.Players[1], that.Players[0]
	}

	that.Status = StatusOngoing

	return that.Current
}

// MakeTurn drops the current player's mark into the column and updates the status.
// It does not switch players, so Current is still the mover afterwards.
func (that *Game) MakeTurn(columnLabel string) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	full, err := that.Board.IsColumnFull(columnLabel)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if full {
		return fmt.Errorf("invalid turn: %w: column %s", apperror.ErrColumnFull, columnLabel)
	}

	if _, err = that.Board.DropMark(columnLabel, that.Current.Mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.TurnCounter++
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	switch {
	case that.IsWin():
		that.Winner = that.Current
		that.Status = StatusFinished
	case that.IsDraw():
		that.Winner = nil
		that.Status = StatusFinished
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) SwitchPlayers() {
	that.Current, that.Other = that.Other, that.Current
}

func (that *Game) IsWin() bool {
	if that.Current == nil {
		return false
	}

	return that.Board.HasWin(that.Current.Mark)
}

func (that *Game) IsDraw() bool {
	return (that.TurnCounter >= Capacity || that.Board.IsFull()) && !that.IsWin()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
