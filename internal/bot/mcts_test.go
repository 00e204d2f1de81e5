package bot

import (
	"math"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	t.Run("Root visit count equals the iteration budget", func(t *testing.T) {
		// Given: a fresh tree on the empty board
		svc := newTestService(3)

		// When: running a fixed number of iterations
		root := svc.buildTree(entity.Board{}, entity.PlayerO, 500)

		// Then: every simulation was counted exactly once at the root
		assert.Equal(t, 500, root.visits)
	})

	t.Run("Every root child is tried once before any is revisited", func(t *testing.T) {
		// Given: the empty board with nine untried moves
		svc := newTestService(3)

		// When: running exactly nine iterations
		root := svc.buildTree(entity.Board{}, entity.PlayerX, 9)

		// Then: all nine children exist with one visit each
		require.Len(t, root.children, 9)
		for _, child := range root.children {
			assert.Equal(t, 1, child.visits)
		}
		assert.Empty(t, root.untried)
	})

	t.Run("Node boards are private copies", func(t *testing.T) {
		// Given: a small tree
		svc := newTestService(3)
		board := entity.Board{}
		root := svc.buildTree(board, entity.PlayerX, 50)

		// Then: the root board matches the input and children differ by one mark
		assert.Equal(t, board, root.board)
		for _, child := range root.children {
			assert.Equal(t, entity.PlayerX, child.board.At(child.lastMove))
			assert.Equal(t, entity.PlayerO, child.mark)
		}
	})
}

func TestUCB1(t *testing.T) {
	t.Run("Unvisited nodes score positive infinity", func(t *testing.T) {
		// Given: a parent with one visited and one unvisited child
		parent := &node{visits: 10}
		visited := &node{parent: parent, visits: 4, wins: 2}
		fresh := &node{parent: parent}
		parent.children = []*node{visited, fresh}

		// Then: the unvisited child always wins selection
		assert.True(t, math.IsInf(fresh.ucb1(1.414), 1))
		assert.Same(t, fresh, parent.bestChild(1.414))
	})

	t.Run("Score is win rate plus exploration bonus", func(t *testing.T) {
		// Given: a child with 2 wins over 4 visits under a 10-visit parent
		parent := &node{visits: 10}
		child := &node{parent: parent, visits: 4, wins: 2}

		// When: computing UCB1 with C = 1.414
		score := child.ucb1(1.414)

		// Then: it matches winRate + C*sqrt(ln(N)/n)
		expected := 0.5 + 1.414*math.Sqrt(math.Log(10)/4)
		assert.InDelta(t, expected, score, 1e-9)
	})
}

func TestBackpropagate(t *testing.T) {
	t.Run("Counts visits everywhere but wins only for bot wins", func(t *testing.T) {
		// Given: a three-node chain
		root := &node{}
		mid := &node{parent: root}
		leaf := &node{parent: mid}

		// When: backpropagating a bot win, a loss and a draw
		backpropagate(leaf, scoreWin)
		backpropagate(leaf, scoreLoss)
		backpropagate(leaf, scoreDraw)

		// Then: each node saw three visits and exactly one win
		for _, n := range []*node{root, mid, leaf} {
			assert.Equal(t, 3, n.visits)
			assert.Equal(t, 1, n.wins)
		}
	})
}

func TestSearchMCTS(t *testing.T) {
	t.Run("Completes its own three-in-a-row with a high budget", func(t *testing.T) {
		// Given: O to move, one move from winning
		svc := newTestService(5)
		board := entity.Board{
			{entity.PlayerX, entity.PlayerX, entity.EmptyCell},
			{entity.PlayerO, entity.PlayerO, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
		}

		// When: searching with a strong budget
		move, err := svc.searchMCTS(board, entity.PlayerO, 10000)

		// Then: O takes the immediate win at (1,2)
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Signals no move on a terminal board", func(t *testing.T) {
		// Given: a board X already won
		svc := newTestService(5)
		board := entity.Board{
			{entity.PlayerX, entity.PlayerX, entity.PlayerX},
			{entity.PlayerO, entity.PlayerO, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
		}

		// When: searching anyway
		move, err := svc.searchMCTS(board, entity.PlayerO, 100)

		// Then: the tree never grows children and the sentinel comes back
		assert.Equal(t, entity.NoMove, move)
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Does not mutate the caller's board", func(t *testing.T) {
		// Given: an ongoing position
		svc := newTestService(5)
		board := entity.Board{
			{entity.PlayerX, entity.EmptyCell, entity.EmptyCell},
			{entity.EmptyCell, entity.PlayerO, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
		}
		before := board

		// When: searching
		_, err := svc.searchMCTS(board, entity.PlayerO, 300)

		// Then: the input board is untouched
		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Never loses to random play as the first player", func(t *testing.T) {
		// Given: MCTS as X against the random selector as O
		svc := newTestService(9)

		losses := 0
		for trial := 0; trial < 20; trial++ {
			board := entity.Board{}
			mark := entity.PlayerX

			for board.Winner() == entity.EmptyCell {
				var move entity.Move
				var err error
				if mark == entity.PlayerX {
					move, err = svc.searchMCTS(board, entity.PlayerX, 3000)
				} else {
					move, err = svc.randomMove(board)
				}
				require.NoError(t, err)

				board.Place(move, mark)
				mark = entity.ToggleMark(mark)
			}

			if board.Winner() == entity.PlayerO {
				losses++
			}
		}

		// Then: across all trials the random player never won
		assert.Zero(t, losses)
	})

	t.Run("Never beats optimal minimax play", func(t *testing.T) {
		// Given: minimax as X against high-budget MCTS as O
		svc := newTestService(13)

		for trial := 0; trial < 10; trial++ {
			board := entity.Board{}
			mark := entity.PlayerX

			for board.Winner() == entity.EmptyCell {
				var move entity.Move
				var err error
				if mark == entity.PlayerX {
					move, err = svc.searchMinimax(board, entity.PlayerX)
				} else {
					move, err = svc.searchMCTS(board, entity.PlayerO, 5000)
				}
				require.NoError(t, err)

				board.Place(move, mark)
				mark = entity.ToggleMark(mark)
			}

			// Then: the outcome is a draw or a minimax win, never an O win
			assert.NotEqual(t, entity.PlayerO, board.Winner())
		}
	})
}
