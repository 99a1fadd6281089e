package connectfour

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	// maxLineLength bounds a single input line; longer lines are discarded as invalid.
	maxLineLength = 256

	invalidInputMessage = "Your input is invalid or the column is already full. Please enter a different column between 01-07: "
	drawMessage         = "It's a draw!"
)

var errLineTooLong = errors.New("input line is too long")

// GameController drives one console game: it reads moves from in and writes the board to out.
type GameController struct {
	logger *slog.Logger

	in  *bufio.Reader
	out io.Writer
	rng *rand.Rand
}

func NewGameController(logger *slog.Logger, in io.Reader, out io.Writer, rng *rand.Rand) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),
		in:     bufio.NewReader(in),
		out:    out,
		rng:    rng,
	}
}

// Run plays the game until someone wins or the board is full.
func (that *GameController) Run(game *entity.Game) error {
	if game.IsWaiting() {
		that.ChooseFirstPlayer(game)
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("can't run game: %w", err)
	}

	that.printBoard(game)

	for game.IsOngoing() {
		if err := that.PlayTurn(game); err != nil {
			return fmt.Errorf("failed to play turn: %w", err)
		}

		that.printBoard(game)

		if game.IsFinished() {
			break
		}

		game.SwitchPlayers()
	}

	that.announceResult(game)

	return nil
}

func (that *GameController) ChooseFirstPlayer(game *entity.Game) {
	first := game.ChooseFirstPlayer(that.rng)

	that.logger.Debug("first player chosen", "name", first.Name, "mark", first.Mark)
	that.printf("\n%s with mark type %s goes first!\n", first.Name, first.Mark)
}

// PlayTurn asks the current player for a column until a valid one is given.
func (that *GameController) PlayTurn(game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	player := game.Current
	that.printf("%s, please choose a column between (01-07) to drop your mark (%s): ", player.Name, player.Mark)

	for {
		input, err := that.readLine()
		if err == nil {
			err = game.MakeTurn(input)
		}

		if err == nil {
			that.logger.Debug("turn made", "player", player.Name, "column", input, "turn", game.TurnCounter)
			return nil
		}

		if !isInvalidMove(err) {
			return fmt.Errorf("turn aborted: %w", err)
		}

		that.logger.Debug("invalid move rejected", "player", player.Name, "input", input, "error", err)
		that.printf(invalidInputMessage)
	}
}

// AskName prompts for a player name. A blank or over-long answer yields fallback.
func (that *GameController) AskName(prompt, fallback string) (string, error) {
	that.printf("%s\nName: ", prompt)

	name, err := that.readLine()
	if err != nil && !errors.Is(err, errLineTooLong) {
		return "", err
	}

	if name == "" {
		return fallback, nil
	}

	return name, nil
}

func isInvalidMove(err error) bool {
	return errors.Is(err, errLineTooLong) ||
		errors.Is(err, apperror.ErrInvalidColumn) ||
		errors.Is(err, apperror.ErrColumnFull)
}

// readLine returns the next trimmed line. An over-long line is consumed up to
// its end and reported as errLineTooLong, so the next read starts on a fresh line.
func (that *GameController) readLine() (string, error) {
	var line []byte
	tooLong := false

	for {
		chunk, isPrefix, err := that.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", apperror.ErrInputClosed
		}

		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineLength {
				tooLong, line = true, nil
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}

	return strings.TrimSpace(string(line)), nil
}

func (that *GameController) announceResult(game *entity.Game) {
	if game.Winner == nil {
		that.logger.Info("game finished", "result", "draw", "turns", game.TurnCounter)
		that.printf("%s\n", drawMessage)

		return
	}

	that.logger.Info("game finished", "result", "win", "winner", game.Winner.Name, "turns", game.TurnCounter)
	that.printf("%s wins with mark type %s!\n", game.Winner.Name, game.Winner.Mark)
}

func (that *GameController) printBoard(game *entity.Game) {
	that.printf("\n%s\n\n", game.Board.Render())
}

func (that *GameController) printf(format string, args ...any) {
	// console writes are best effort; there is nothing left to report to
	_, _ = fmt.Fprintf(that.out, format, args...)
}
