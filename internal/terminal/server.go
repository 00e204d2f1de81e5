package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/bot"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

const (
	modePvP  = "1"
	modeBot  = "2"
	modeQuit = "3"
)

// Server drives the interactive console session: menus, board rendering,
// move input and the replay loop. It owns no game rules of its own.
type Server struct {
	logger *slog.Logger

	gamePlayService service.GamePlayService

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, gamePlayService service.GamePlayService, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:          logger.With("component", "terminal"),
		gamePlayService: gamePlayService,
		in:              bufio.NewScanner(in),
		out:             out,
	}
}

// Run loops over game-mode selection until the player quits or input ends.
func (that *Server) Run(ctx context.Context) error {
	fmt.Fprint(that.out, banner)

	for {
		mode, err := that.promptMode(ctx)
		if err != nil {
			return that.finish(err)
		}

		if mode == modeQuit {
			fmt.Fprintln(that.out, "Exiting the game. Thanks for playing! :D")
			return nil
		}

		gameType := entity.PvPType
		level := bot.DifficultyRandom
		if mode == modeBot {
			gameType = entity.WithBotType
			if level, err = that.promptDifficulty(ctx); err != nil {
				return that.finish(err)
			}
		}

		if err = that.playSession(ctx, gameType, level); err != nil {
			return that.finish(err)
		}
	}
}

// playSession plays games in the chosen mode until the player declines a
// rematch.
func (that *Server) playSession(ctx context.Context, gameType string, level bot.Difficulty) error {
	for {
		game, err := that.gamePlayService.NewGame(gameType, level)
		if err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}

		if err = that.playGame(ctx, game, level); err != nil {
			return err
		}

		again, err := that.promptLine(ctx, "Do you want to play again in the current mode? (Y/N): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(again), "y") {
			return nil
		}
	}
}

func (that *Server) playGame(ctx context.Context, game *entity.Game, level bot.Difficulty) error {
	for !game.IsFinished() {
		renderBoard(that.out, game.Board)
		renderHistory(that.out, game)
		fmt.Fprintf(that.out, "Current Turn: %s (%s)\n", playerName(game, game.Turn), game.Turn)

		move, err := that.promptMove(ctx)
		if err != nil {
			return err
		}

		err = that.gamePlayService.MakeHumanTurn(game, game.Turn, move, level)
		switch {
		case errors.Is(err, apperror.ErrCellOccupied):
			fmt.Fprintf(that.out, "Tile (%d,%d) is already taken. Try again.\n", move.Row+1, move.Col+1)
			continue
		case err != nil:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}

	fmt.Fprintln(that.out, "\n===================================")
	fmt.Fprintln(that.out, "GAME OVER!")
	renderBoard(that.out, game.Board)
	renderHistory(that.out, game)
	renderResult(that.out, game)
	fmt.Fprintln(that.out, "===================================")

	return nil
}

func (that *Server) promptMode(ctx context.Context) (string, error) {
	for {
		fmt.Fprintln(that.out, "\nSelect game mode:")
		fmt.Fprintln(that.out, "1. Player vs Player")
		fmt.Fprintln(that.out, "2. Player vs Computer")
		fmt.Fprintln(that.out, "3. Quit")

		choice, err := that.promptLine(ctx, "Enter your choice: ")
		if err != nil {
			return "", err
		}

		switch choice = strings.TrimSpace(choice); choice {
		case modePvP, modeBot, modeQuit:
			return choice, nil
		default:
			fmt.Fprintln(that.out, "Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}

func (that *Server) promptDifficulty(ctx context.Context) (bot.Difficulty, error) {
	for {
		fmt.Fprintln(that.out, "\nSelect Computer Difficulty:")
		fmt.Fprintln(that.out, "R. Random (no search)")
		fmt.Fprintln(that.out, "E. Easy   (MCTS - low simulations)")
		fmt.Fprintln(that.out, "M. Medium (MCTS - more simulations)")
		fmt.Fprintln(that.out, "H. Hard   (Minimax)")

		choice, err := that.promptLine(ctx, "Enter your choice (R/E/M/H): ")
		if err != nil {
			return bot.DifficultyRandom, err
		}

		switch strings.ToUpper(strings.TrimSpace(choice)) {
		case "R":
			return bot.DifficultyRandom, nil
		case "E":
			return bot.DifficultyEasy, nil
		case "M":
			return bot.DifficultyHard, nil
		case "H":
			return bot.DifficultyOptimal, nil
		default:
			fmt.Fprintln(that.out, "Invalid choice. Please enter R, E, M, or H.")
		}
	}
}

func (that *Server) promptMove(ctx context.Context) (entity.Move, error) {
	for {
		line, err := that.promptLine(ctx, "Enter Row and Column #(1-3): ")
		if err != nil {
			return entity.NoMove, err
		}

		move, err := parseMove(line)
		if err != nil {
			fmt.Fprintf(that.out, "%s\n", inputErrorMessage(err))
			continue
		}

		return move, nil
	}
}

// promptLine prints the prompt and reads one input line. Returns io.EOF when
// input is exhausted or the context was canceled.
func (that *Server) promptLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", io.EOF
	}

	fmt.Fprint(that.out, prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return that.in.Text(), nil
}

// parseMove parses a 1-based "row col" pair into a board coordinate.
func parseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.NoMove, fmt.Errorf("%w: expected two numbers", apperror.ErrInvalidCell)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.NoMove, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.NoMove, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, fields[1])
	}

	move := entity.Move{Row: row - 1, Col: col - 1}
	if !move.InBounds() {
		return entity.NoMove, fmt.Errorf("%w: (%d,%d)", apperror.ErrInvalidCell, row, col)
	}

	return move, nil
}

func inputErrorMessage(err error) string {
	if errors.Is(err, apperror.ErrInvalidCell) {
		return fmt.Sprintf("Invalid input. Please enter two numbers between 1 and %d.", entity.BoardSize)
	}
	return err.Error()
}

// finish swallows end-of-input so quitting with Ctrl-D or a canceled context
// exits cleanly.
func (that *Server) finish(err error) error {
	if errors.Is(err, io.EOF) {
		that.logger.Debug("input ended, shutting down")
		return nil
	}
	return err
}
