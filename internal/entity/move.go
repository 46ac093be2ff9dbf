package entity

import "fmt"

// EmptyCell is the label of a cell nobody has played yet.
const EmptyCell = ""

// Position is a 0-indexed board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// InBounds reports whether the position lies on a board of the given size.
func (that Position) InBounds(boardSize int) bool {
	return that.Row >= 0 && that.Row < boardSize && that.Col >= 0 && that.Col < boardSize
}

// Move is a position claimed by the player with the given label.
type Move struct {
	Position
	Label string `json:"label"`
}

func NewMove(row, col int, label string) Move {
	return Move{
		Position: Position{Row: row, Col: col},
		Label:    label,
	}
}

// Combo is a line of positions which wins when a single player holds all of them.
type Combo []Position

// Contains reports whether pos is part of the combination.
func (that Combo) Contains(pos Position) bool {
	for _, p := range that {
		if p == pos {
			return true
		}
	}

	return false
}
