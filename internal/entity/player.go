package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	DefaultColor = "lightpink"
)

// Player identifies who makes a move. Color is an opaque display tag for the presentation layer.
type Player struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color,omitempty" yaml:"color"`
}

// DefaultPlayers returns the classic X and O pair.
func DefaultPlayers() []Player {
	return []Player{
		{Label: PlayerX, Color: DefaultColor},
		{Label: PlayerO, Color: DefaultColor},
	}
}
