package tictactoe

import "github.com/rocketscienceinc/inarow/internal/entity"

// winningCombos builds every row, then every column, then the main diagonal and the anti-diagonal.
// The order is the evaluation order of updateGameStatus.
func winningCombos(boardSize int) []entity.Combo {
	combos := make([]entity.Combo, 0, 2*boardSize+2)

	for row := 0; row < boardSize; row++ {
		combo := make(entity.Combo, 0, boardSize)
		for col := 0; col < boardSize; col++ {
			combo = append(combo, entity.Position{Row: row, Col: col})
		}
		combos = append(combos, combo)
	}

	for col := 0; col < boardSize; col++ {
		combo := make(entity.Combo, 0, boardSize)
		for row := 0; row < boardSize; row++ {
			combo = append(combo, entity.Position{Row: row, Col: col})
		}
		combos = append(combos, combo)
	}

	diagonal := make(entity.Combo, 0, boardSize)
	antiDiagonal := make(entity.Combo, 0, boardSize)
	for i := 0; i < boardSize; i++ {
		diagonal = append(diagonal, entity.Position{Row: i, Col: i})
		antiDiagonal = append(antiDiagonal, entity.Position{Row: i, Col: boardSize - 1 - i})
	}

	return append(combos, diagonal, antiDiagonal)
}

// isComplete - a combo wins when its cells hold exactly one distinct label and that label is not empty.
func isComplete(board [][]string, combo entity.Combo) bool {
	labels := make(map[string]struct{}, 1)
	for _, pos := range combo {
		labels[board[pos.Row][pos.Col]] = struct{}{}
	}

	if len(labels) != 1 {
		return false
	}

	_, hasEmpty := labels[entity.EmptyCell]

	return !hasEmpty
}
