package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"golang.org/x/exp/rand"
)

// node is one position in the Monte Carlo search tree. Every node owns a full
// copy of its board, its children and the legal moves it has not expanded yet.
// A fresh tree is built per decision and dropped once the move is extracted.
type node struct {
	board    entity.Board
	mark     string      // side to move at this position
	lastMove entity.Move // move that produced this position; NoMove at the root

	wins   int // simulations won by the bot that passed through this node
	visits int

	parent   *node
	children []*node
	untried  []entity.Move
}

func newNode(board entity.Board, parent *node, lastMove entity.Move, mark string, rng *rand.Rand) *node {
	untried := board.FreeCells()
	// Randomized expansion order, so equally scored lines are not always
	// explored in row-major order.
	rng.Shuffle(len(untried), func(i, j int) {
		untried[i], untried[j] = untried[j], untried[i]
	})

	return &node{
		board:    board,
		mark:     mark,
		lastMove: lastMove,
		parent:   parent,
		untried:  untried,
	}
}

// ucb1 scores a child for selection: win rate plus an exploration bonus. An
// unvisited child scores +Inf, so every child is tried once before any repeat.
func (that *node) ucb1(exploration float64) float64 {
	if that.visits == 0 {
		return math.Inf(1)
	}

	winRate := float64(that.wins) / float64(that.visits)
	bonus := exploration * math.Sqrt(math.Log(float64(that.parent.visits))/float64(that.visits))

	return winRate + bonus
}

func (that *node) bestChild(exploration float64) *node {
	var best *node
	bestScore := math.Inf(-1)

	for _, child := range that.children {
		if score := child.ucb1(exploration); score > bestScore {
			bestScore = score
			best = child
		}
	}

	return best
}

// expand pops one untried move, plays it on a copied board and attaches the
// resulting position as a new child with the turn flipped.
func (that *node) expand(rng *rand.Rand) *node {
	move := that.untried[len(that.untried)-1]
	that.untried = that.untried[:len(that.untried)-1]

	child := newNode(that.board.WithMove(move, that.mark), that, move, entity.ToggleMark(that.mark), rng)
	that.children = append(that.children, child)

	return child
}

func (that *node) isTerminal() bool {
	return that.board.Winner() != entity.EmptyCell
}

// searchMCTS runs the select/expand/simulate/backpropagate loop for the given
// iteration budget and returns the most visited root move. Visit count is the
// more robust final signal under UCB1 than raw win rate.
func (that *botService) searchMCTS(board entity.Board, botMark string, iterations int) (entity.Move, error) {
	root := that.buildTree(board, botMark, iterations)

	var best *node
	maxVisits := -1
	for _, child := range root.children {
		if child.visits > maxVisits {
			maxVisits = child.visits
			best = child
		}
	}

	if best == nil {
		return entity.NoMove, apperror.ErrNoAvailableMoves
	}

	return best.lastMove, nil
}

func (that *botService) buildTree(board entity.Board, botMark string, iterations int) *node {
	root := newNode(board, nil, entity.NoMove, botMark, that.rng)

	for i := 0; i < iterations; i++ {
		current := root

		// 1. Selection: descend through fully expanded positions by UCB1.
		for len(current.untried) == 0 && len(current.children) > 0 && !current.isTerminal() {
			current = current.bestChild(that.exploration)
		}

		// 2. Expansion.
		if len(current.untried) > 0 && !current.isTerminal() {
			current = current.expand(that.rng)
		}

		// 3. Simulation: terminal positions use their own outcome directly.
		var result int
		if winner := current.board.Winner(); winner != entity.EmptyCell {
			result = terminalScore(winner, botMark)
		} else {
			result = that.rollout(current.board, current.mark, botMark)
		}

		// 4. Backpropagation.
		backpropagate(current, result)
	}

	return root
}

// rollout plays uniformly random moves, alternating sides, until the game
// ends, and scores the terminal position from the bot's perspective.
func (that *botService) rollout(board entity.Board, toMove, botMark string) int {
	for {
		if winner := board.Winner(); winner != entity.EmptyCell {
			return terminalScore(winner, botMark)
		}

		free := board.FreeCells()
		board.Place(free[that.rng.Intn(len(free))], toMove)
		toMove = entity.ToggleMark(toMove)
	}
}

// backpropagate walks to the root, counting the visit everywhere but crediting
// a win only when the simulation ended in a bot win. Opponent wins and draws
// add nothing, so wins/visits tracks the bot's win rate at every node.
func backpropagate(current *node, result int) {
	for ; current != nil; current = current.parent {
		current.visits++
		if result == scoreWin {
			current.wins++
		}
	}
}

func terminalScore(winner, botMark string) int {
	switch winner {
	case botMark:
		return scoreWin
	case entity.PlayerTie:
		return scoreDraw
	default:
		return scoreLoss
	}
}
