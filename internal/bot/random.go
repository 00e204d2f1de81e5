package bot

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// randomMove picks uniformly among the free cells. Weakest tier.
func (that *botService) randomMove(board entity.Board) (entity.Move, error) {
	free := board.FreeCells()
	if len(free) == 0 {
		return entity.NoMove, apperror.ErrNoAvailableMoves
	}

	return free[that.rng.Intn(len(free))], nil
}
