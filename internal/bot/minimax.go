package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Terminal scores from the bot's perspective. Independent of depth, so the
// search does not prefer faster wins among equally winning lines.
const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0
)

// searchMinimax evaluates every free cell with a full-depth alpha-beta search
// and keeps the first cell (row-major) with the highest score. Deterministic:
// the same board always yields the same move.
func (that *botService) searchMinimax(board entity.Board, botMark string) (entity.Move, error) {
	bestScore := math.MinInt
	bestMove := entity.NoMove

	for _, move := range board.FreeCells() {
		board.Place(move, botMark)
		score := minimax(&board, botMark, false, math.MinInt, math.MaxInt)
		board.Place(move, entity.EmptyCell)

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	if bestMove == entity.NoMove {
		return entity.NoMove, apperror.ErrNoAvailableMoves
	}

	return bestMove, nil
}

// minimax searches the remaining game tree exhaustively, mutating the board in
// place with a strict place/undo discipline. Alpha tracks the best score the
// bot is guaranteed along the path, beta the same for the opponent; when
// beta <= alpha the remaining siblings cannot change the result and the branch
// is cut. Pruning never changes the returned value, only the search volume.
func minimax(board *entity.Board, botMark string, isMaximizing bool, alpha, beta int) int {
	switch winner := board.Winner(); {
	case winner == botMark:
		return scoreWin
	case winner == entity.PlayerTie:
		return scoreDraw
	case winner != entity.EmptyCell:
		return scoreLoss
	}

	if isMaximizing {
		bestScore := math.MinInt
		for _, move := range board.FreeCells() {
			board.Place(move, botMark)
			score := minimax(board, botMark, false, alpha, beta)
			board.Place(move, entity.EmptyCell)

			bestScore = max(bestScore, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				return bestScore
			}
		}

		return bestScore
	}

	opponentMark := entity.ToggleMark(botMark)

	bestScore := math.MaxInt
	for _, move := range board.FreeCells() {
		board.Place(move, opponentMark)
		score := minimax(board, botMark, true, alpha, beta)
		board.Place(move, entity.EmptyCell)

		bestScore = min(bestScore, score)
		beta = min(beta, score)
		if beta <= alpha {
			return bestScore
		}
	}

	return bestScore
}
