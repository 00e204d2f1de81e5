package bot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"golang.org/x/exp/rand"
)

var ErrBotNotFound = errors.New("bot player not found")

// Difficulty selects which search decides the bot's move.
type Difficulty int

const (
	DifficultyRandom Difficulty = iota
	DifficultyEasy
	DifficultyHard
	DifficultyOptimal
)

func (that Difficulty) String() string {
	switch that {
	case DifficultyRandom:
		return "random"
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	case DifficultyOptimal:
		return "optimal"
	default:
		return "unknown"
	}
}

type Config struct {
	EasyIterations int
	HardIterations int
	Exploration    float64
}

type Service interface {
	ChooseMove(board entity.Board, botMark string, level Difficulty) (entity.Move, error)
	MakeTurn(game *entity.Game, level Difficulty) error
}

type botService struct {
	logger *slog.Logger
	rng    *rand.Rand

	iterations  map[Difficulty]int
	exploration float64
}

func New(logger *slog.Logger, rng *rand.Rand, conf Config) Service {
	return &botService{
		logger: logger.With("component", "bot"),
		rng:    rng,
		iterations: map[Difficulty]int{
			DifficultyEasy: conf.EasyIterations,
			DifficultyHard: conf.HardIterations,
		},
		exploration: conf.Exploration,
	}
}

// ChooseMove runs the search the difficulty maps to. The board is passed by
// value, so the caller's board is never mutated by a search.
func (that *botService) ChooseMove(board entity.Board, botMark string, level Difficulty) (entity.Move, error) {
	switch level {
	case DifficultyRandom:
		return that.randomMove(board)
	case DifficultyEasy, DifficultyHard:
		return that.searchMCTS(board, botMark, that.iterations[level])
	case DifficultyOptimal:
		return that.searchMinimax(board, botMark)
	default:
		return entity.NoMove, fmt.Errorf("%w: %d", apperror.ErrUnknownDifficulty, level)
	}
}

func (that *botService) MakeTurn(game *entity.Game, level Difficulty) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	move, err := that.ChooseMove(game.Board, botPlayer.Mark, level)
	if err != nil {
		return fmt.Errorf("bot failed to choose a move: %w", err)
	}

	that.logger.Debug("bot chose a move", "difficulty", level.String(), "row", move.Row, "col", move.Col)

	if err = game.MakeTurn(botPlayer.Mark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
