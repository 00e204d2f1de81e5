package entity

const (
	BoardSize = 3

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Move is a zero-based (row, column) coordinate into the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is the sentinel a search returns when the board has no free cells.
var NoMove = Move{Row: -1, Col: -1}

// WinLines are the 8 three-in-a-row lines: 3 rows, 3 columns, 2 diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid of cell marks. The zero value is an empty board.
type Board [BoardSize][BoardSize]string

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Board) At(move Move) string {
	return that[move.Row][move.Col]
}

// Place writes a mark without validation; the Game aggregate validates turns.
func (that *Board) Place(move Move, mark string) {
	that[move.Row][move.Col] = mark
}

// WithMove returns a copy of the board with the mark placed.
func (that Board) WithMove(move Move, mark string) Board {
	that[move.Row][move.Col] = mark
	return that
}

// Winner returns the winning mark, PlayerTie when the board is full with no
// winner, or EmptyCell while the game is still ongoing.
func (that Board) Winner() string {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	if that.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// FreeCells enumerates the empty cells in row-major order.
func (that Board) FreeCells() []Move {
	free := make([]Move, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == EmptyCell {
				free = append(free, Move{Row: row, Col: col})
			}
		}
	}

	return free
}

func (that Board) IsFull() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
