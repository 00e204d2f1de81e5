package terminal

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const banner = ` _   _      _             _
| | (_)    | |           | |
| |_ _  ___| |_ __ _  ___| |_ ___   ___
| __| |/ __| __/ _` + "`" + ` |/ __| __/ _ \ / _ \
| |_| | (__| || (_| | (__| || (_) |  __/
 \__|_|\___|\__\__,_|\___|\__\___/ \___|

"============= Tic Tac Toe ============="
`

const tieArt = `          IT'S A TIE!
       |\_,,,---,,_
ZZZzz /,` + "`" + `.-'` + "`" + `'    -.  ;-;;,_
     |,4-  ) )-,_. ,\ (  ` + "`" + `'-'
    '---''(_/--'  ` + "`" + `-'\_)`

// renderBoard prints the grid with 1-based row and column labels. Empty cells
// render as spaces.
func renderBoard(out io.Writer, board entity.Board) {
	fmt.Fprintln(out, "\n    1   2   3")
	fmt.Fprintln(out, "  +---+---+---+")
	for row := 0; row < entity.BoardSize; row++ {
		fmt.Fprintf(out, "%d |", row+1)
		for col := 0; col < entity.BoardSize; col++ {
			mark := board[row][col]
			if mark == entity.EmptyCell {
				mark = " "
			}
			fmt.Fprintf(out, " %s |", mark)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  +---+---+---+")
	}
}

// renderHistory prints each side's past moves in play order, 1-based.
func renderHistory(out io.Writer, game *entity.Game) {
	fmt.Fprintln(out, "\nPast Moves:")
	for _, player := range game.Players {
		fmt.Fprintf(out, "%s (%s): ", player.Name, player.Mark)
		for _, move := range game.MovesOf(player.Mark) {
			fmt.Fprintf(out, "(%d,%d) ", move.Row+1, move.Col+1)
		}
		fmt.Fprintln(out)
	}
}

func renderResult(out io.Writer, game *entity.Game) {
	switch winner := game.Winner; {
	case winner == entity.PlayerTie:
		fmt.Fprintln(out, tieArt)
	case game.IsWithBot() && game.BotPlayer().Mark == winner:
		fmt.Fprintln(out, "Computer wins! Better luck next time!")
	case game.IsWithBot():
		fmt.Fprintln(out, "Congratulations! You win!")
	default:
		fmt.Fprintf(out, "%s (%s) wins!\n", playerName(game, winner), winner)
	}
}

func playerName(game *entity.Game, mark string) string {
	for _, player := range game.Players {
		if player.Mark == mark {
			return player.Name
		}
	}
	return "Player"
}
