package entity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawMoves fills the board without ever giving either player four in a line.
const drawMoves = "06 05 06 01 07 03 05 06 06 01 05 02 02 01 05 06 07 06 04 02 02 " +
	"03 03 07 03 07 07 04 07 03 01 04 01 04 04 05 04 02 05 03 02 01"

func startedGame(t *testing.T) (*Game, *Player, *Player) {
	t.Helper()

	alice, bob := NewPlayer("Alice", markX), NewPlayer("Bob", markO)
	game := NewGame(alice, bob)
	game.Current, game.Other = alice, bob
	game.Status = StatusOngoing

	return game, alice, bob
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	alice, bob := NewPlayer("Alice", markX), NewPlayer("Bob", markO)
	game := NewGame(alice, bob)

	// Then: it is waiting with an empty board and no turns
	expectedGame := &Game{
		Board:   NewBoard(),
		Players: [2]*Player{alice, bob},
		Status:  StatusWaiting,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_ChooseFirstPlayer(t *testing.T) {
	t.Run("Starts the game with one of the two players", func(t *testing.T) {
		alice, bob := NewPlayer("Alice", markX), NewPlayer("Bob", markO)
		game := NewGame(alice, bob)

		first := game.ChooseFirstPlayer(rand.New(rand.NewSource(1)))

		assert.True(t, game.IsOngoing())
		assert.Same(t, first, game.Current)
		assert.Contains(t, []*Player{alice, bob}, first)
		assert.NotSame(t, game.Current, game.Other)
		assert.Contains(t, []*Player{alice, bob}, game.Other)
	})

	t.Run("Same seed gives the same choice", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			a := NewGame(NewPlayer("Alice", markX), NewPlayer("Bob", markO))
			b := NewGame(NewPlayer("Alice", markX), NewPlayer("Bob", markO))

			firstA := a.ChooseFirstPlayer(rand.New(rand.NewSource(seed)))
			firstB := b.ChooseFirstPlayer(rand.New(rand.NewSource(seed)))

			assert.Equal(t, firstA.Name, firstB.Name)
		}
	})

	t.Run("Both players get to start", func(t *testing.T) {
		// Given: one random source shared by many games
		rng := rand.New(rand.NewSource(42))
		starts := map[string]int{}

		// When: choosing the first player many times
		for range 200 {
			game := NewGame(NewPlayer("Alice", markX), NewPlayer("Bob", markO))
			starts[game.ChooseFirstPlayer(rng).Name]++
		}

		// Then: each player started at least once
		assert.Positive(t, starts["Alice"])
		assert.Positive(t, starts["Bob"])
	})
}

func TestGame_SwitchPlayers(t *testing.T) {
	game, alice, bob := startedGame(t)

	game.SwitchPlayers()

	assert.Same(t, bob, game.Current)
	assert.Same(t, alice, game.Other)
	assert.Zero(t, game.TurnCounter)
	assert.True(t, game.IsOngoing())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful turn", func(t *testing.T) {
		// Given: a started game with Alice to move
		game, alice, _ := startedGame(t)

		// When: Alice drops into column 4
		err := game.MakeTurn("04")

		// Then: the mark is at the bottom and the counter moved on
		require.NoError(t, err)
		assert.Equal(t, alice.Mark, game.Board.Cell(Rows-1, 3).Mark)
		assert.Equal(t, 1, game.TurnCounter)
		assert.Same(t, alice, game.Current)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Invalid column leaves the game unchanged", func(t *testing.T) {
		game, _, _ := startedGame(t)

		err := game.MakeTurn("12")

		require.ErrorIs(t, err, apperror.ErrInvalidColumn)
		assert.Zero(t, game.TurnCounter)
		assert.Equal(t, NewBoard(), game.Board)
	})

	t.Run("Full column leaves the game unchanged", func(t *testing.T) {
		// Given: column 2 filled by alternating players
		game, _, _ := startedGame(t)
		for range Rows {
			require.NoError(t, game.MakeTurn("02"))
			game.SwitchPlayers()
		}

		full, err := game.Board.IsColumnFull("02")
		require.NoError(t, err)
		require.True(t, full)
		before := game.Board.Render()

		// When: one more mark is dropped into column 2
		err = game.MakeTurn("02")

		// Then: ErrColumnFull is returned and neither the counter nor the board changed
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.Equal(t, Rows, game.TurnCounter)
		assert.Equal(t, before, game.Board.Render())
	})

	t.Run("Error when game is not started", func(t *testing.T) {
		game := NewGame(NewPlayer("Alice", markX), NewPlayer("Bob", markO))

		err := game.MakeTurn("01")

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Vertical four wins the game", func(t *testing.T) {
		// Given: Alice and Bob alternate between columns 1 and 2
		game, alice, _ := startedGame(t)
		for _, column := range []string{"01", "02", "01", "02", "01", "02"} {
			require.NoError(t, game.MakeTurn(column))
			require.False(t, game.IsWin())
			game.SwitchPlayers()
		}

		// When: Alice drops her fourth mark into column 1
		err := game.MakeTurn("01")

		// Then: Alice wins and the game is finished
		require.NoError(t, err)
		assert.True(t, game.IsWin())
		assert.False(t, game.IsDraw())
		assert.True(t, game.IsFinished())
		assert.Same(t, alice, game.Winner)
		assert.Equal(t, 7, game.TurnCounter)
	})

	t.Run("Error on turn after the game is finished", func(t *testing.T) {
		game, _, _ := startedGame(t)
		game.Status = StatusFinished

		err := game.MakeTurn("03")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a started game
		game, _, _ := startedGame(t)
		moves := strings.Fields(drawMoves)
		require.Len(t, moves, Capacity)

		// When: all 42 moves are played
		for i, column := range moves {
			require.True(t, game.IsOngoing(), "move %d", i)
			require.NoError(t, game.MakeTurn(column), "move %d", i)
			game.SwitchPlayers()
		}

		// Then: the game is a finished draw with no winner
		assert.Equal(t, Capacity, game.TurnCounter)
		assert.True(t, game.IsDraw())
		assert.True(t, game.IsFinished())
		assert.Nil(t, game.Winner)
		assert.True(t, game.Board.IsFull())
	})
}

func TestGame_IsDraw(t *testing.T) {
	t.Run("Counter below capacity is not a draw", func(t *testing.T) {
		game, _, _ := startedGame(t)
		game.TurnCounter = Capacity - 1

		assert.False(t, game.IsDraw())
	})

	t.Run("Counter at capacity is a draw", func(t *testing.T) {
		game, _, _ := startedGame(t)
		game.TurnCounter = Capacity

		assert.True(t, game.IsDraw())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: the board was filled without any line while the counter lags behind
		game, alice, bob := startedGame(t)
		for i, column := range strings.Fields(drawMoves) {
			mark := alice.Mark
			if i%2 == 1 {
				mark = bob.Mark
			}

			_, err := game.Board.DropMark(column, mark)
			require.NoError(t, err)
		}

		// Then: a full board alone ends the game in a draw
		assert.Less(t, game.TurnCounter, Capacity)
		assert.True(t, game.IsDraw())
	})

	t.Run("Win on the last move is not a draw", func(t *testing.T) {
		game, alice, _ := startedGame(t)
		game.TurnCounter = Capacity
		for _, label := range []string{"01", "02", "03", "04"} {
			require.NoError(t, game.Board.SetCell(label, alice.Mark))
		}

		assert.False(t, game.IsDraw())
		assert.True(t, game.IsWin())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}
