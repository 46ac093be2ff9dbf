package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/usecase"
)

const emptyMark = "."

// renderBoard draws the grid with 1-based row and column numbers. Winning cells are wrapped in brackets.
func renderBoard(snapshot usecase.Snapshot) string {
	size := snapshot.BoardSize
	width := cellWidth(snapshot)
	rowNumWidth := len(strconv.Itoa(size))

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", rowNumWidth+1))
	for col := 1; col <= size; col++ {
		fmt.Fprintf(&b, " %*d  ", width, col)
	}
	b.WriteString("\n")

	for row := 0; row < size; row++ {
		cells := make([]string, 0, size)
		for col := 0; col < size; col++ {
			label := snapshot.Board[row][col]
			if label == entity.EmptyCell {
				label = emptyMark
			}

			if snapshot.WinnerCombo.Contains(entity.Position{Row: row, Col: col}) {
				cells = append(cells, fmt.Sprintf("[%*s]", width, label))
			} else {
				cells = append(cells, fmt.Sprintf(" %*s ", width, label))
			}
		}

		fmt.Fprintf(&b, "%*d %s\n", rowNumWidth, row+1, strings.Join(cells, "|"))
	}

	return b.String()
}

func cellWidth(snapshot usecase.Snapshot) int {
	width := len(strconv.Itoa(snapshot.BoardSize))
	for _, player := range snapshot.Players {
		if len(player.Label) > width {
			width = len(player.Label)
		}
	}

	return width
}

func renderPlayers(players []entity.Player) string {
	parts := make([]string, 0, len(players))
	for _, player := range players {
		parts = append(parts, fmt.Sprintf("%s (%s)", player.Label, player.Color))
	}

	return "Players: " + strings.Join(parts, ", ")
}

// colorTag is the player's display color in brackets, or nothing when the player has none.
func colorTag(player entity.Player) string {
	if player.Color == "" {
		return ""
	}

	return " [" + player.Color + "]"
}

// parsePosition reads a 1-based "row col" pair and returns the 0-based position.
func parsePosition(input string) (entity.Position, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Position{}, fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: row %q", ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: column %q", ErrInvalidInput, fields[1])
	}

	return entity.Position{Row: row - 1, Col: col - 1}, nil
}
