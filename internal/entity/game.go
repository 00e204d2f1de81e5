package entity

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	PvPType     = "pvp"
	WithBotType = "bot"
)

type Game struct {
	Board   Board             `json:"board"`
	Winner  string            `json:"winner"`
	Status  string            `json:"status"`
	Turn    string            `json:"player_turn"`
	Players []*Player         `json:"players,omitempty"`
	History map[string][]Move `json:"history"`
	Type    string            `json:"type,omitempty"`
}

func NewGame(gameType string) *Game {
	return &Game{
		Board:   Board{},
		Turn:    PlayerX,
		Status:  StatusWaiting,
		History: map[string][]Move{},
		Type:    gameType,
	}
}

// MakeTurn places the mark, records it in that side's history and advances the
// game state. The board is only touched when every validation passed.
func (that *Game) MakeTurn(playerMark string, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !move.InBounds() {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board.At(move) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board.Place(move, playerMark)
	that.History[playerMark] = append(that.History[playerMark], move)

	that.Turn = ToggleMark(playerMark)
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	switch winner := that.Board.Winner(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

// MovesOf returns a copy of the side's move history, oldest first.
func (that *Game) MovesOf(mark string) []Move {
	return slices.Clone(that.History[mark])
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer returns the automated player, or nil for a PvP game.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
