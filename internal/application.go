package application

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	firstNamePrompt  = "Player 1, please set your name!"
	secondNamePrompt = "Now you, Player 2! Please set your name."

	firstDefaultName  = "Player 1"
	secondDefaultName = "Player 2"
)

// RunApp - runs one console game reading moves from in and printing to out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Debug("random source seeded", "seed", seed)

	controller := connectfour.NewGameController(logger, in, out, rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok

	first, err := askPlayer(controller, conf.FirstPlayer(), firstNamePrompt, firstDefaultName)
	if err != nil {
		return fmt.Errorf("could not set up first player: %w", err)
	}

	second, err := askPlayer(controller, conf.SecondPlayer(), secondNamePrompt, secondDefaultName)
	if err != nil {
		return fmt.Errorf("could not set up second player: %w", err)
	}

	log.Info("starting game", "first", first.Name, "second", second.Name)

	game := entity.NewGame(first, second)
	if err = controller.Run(game); err != nil {
		return fmt.Errorf("game run failed: %w", err)
	}

	return nil
}

// askPlayer - uses the configured name when there is one, otherwise asks for it.
func askPlayer(controller *connectfour.GameController, conf config.Player, prompt, fallback string) (*entity.Player, error) {
	if conf.Name != "" {
		return entity.NewPlayer(conf.Name, conf.Mark), nil
	}

	name, err := controller.AskName(prompt, fallback)
	if err != nil {
		return nil, fmt.Errorf("could not read name: %w", err)
	}

	return entity.NewPlayer(name, conf.Mark), nil
}
