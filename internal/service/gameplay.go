package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/bot"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GamePlayService interface {
	NewGame(gameType string, level bot.Difficulty) (*entity.Game, error)
	MakeHumanTurn(game *entity.Game, mark string, move entity.Move, level bot.Difficulty) error
}

type gamePlayService struct {
	logger *slog.Logger

	botService bot.Service
}

func NewGamePlayService(logger *slog.Logger, botService bot.Service) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
	}
}

// NewGame starts an ongoing in-memory game. In a game against the computer
// the marks are assigned at random, and the bot opens when it drew X.
func (that *gamePlayService) NewGame(gameType string, level bot.Difficulty) (*entity.Game, error) {
	game := entity.NewGame(gameType)

	if !game.IsWithBot() {
		game.Players = []*entity.Player{
			{Name: "Player 1", Mark: entity.PlayerX},
			{Name: "Player 2", Mark: entity.PlayerO},
		}
		game.Status = entity.StatusOngoing

		return game, nil
	}

	humanMark, botMark := game.GetRandomMarks()
	game.Players = []*entity.Player{
		{Name: "Player", Mark: humanMark},
		entity.NewBotPlayer(botMark),
	}
	game.Status = entity.StatusOngoing

	that.logger.Debug("new game against the computer", "difficulty", level.String(), "bot_mark", botMark)

	if botMark == entity.PlayerX {
		if err := that.botService.MakeTurn(game, level); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	return game, nil
}

// MakeHumanTurn applies the human move and, in a bot game, lets the computer
// reply. Validation errors come back unwrapped from the game so the caller
// can re-prompt on an occupied cell or an out-of-turn move.
func (that *gamePlayService) MakeHumanTurn(game *entity.Game, mark string, move entity.Move, level bot.Difficulty) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := game.MakeTurn(mark, move); err != nil {
		return err
	}

	if game.IsFinished() || !game.IsWithBot() {
		return nil
	}

	if err := that.botService.MakeTurn(game, level); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
