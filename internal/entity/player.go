package entity

type Player struct {
	Name string `json:"name,omitempty"`
	Mark string `json:"mark,omitempty"`
	Bot  bool   `json:"bot,omitempty"`
}

func NewBotPlayer(mark string) *Player {
	return &Player{Name: "Computer", Mark: mark, Bot: true}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
