package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
)

const DefaultBoardSize = 3

// GameState is the rule engine of a single N-in-a-row game.
// It has a single owner and is not safe for concurrent use.
type GameState struct {
	players       []entity.Player
	currentPlayer int

	boardSize int
	board     [][]string
	combos    []entity.Combo

	hasWinner   bool
	winnerCombo entity.Combo
}

// NewGameState - creates an empty board of boardSize x boardSize where the first player moves first.
func NewGameState(players []entity.Player, boardSize int) (*GameState, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	if boardSize < 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, boardSize)
	}

	board := make([][]string, boardSize)
	for row := range board {
		board[row] = make([]string, boardSize)
	}

	return &GameState{
		players:   append([]entity.Player(nil), players...),
		boardSize: boardSize,
		board:     board,
		combos:    winningCombos(boardSize),
	}, nil
}

func validatePlayers(players []entity.Player) error {
	if len(players) < 2 {
		return fmt.Errorf("%w: got %d", apperror.ErrInsufficientPlayers, len(players))
	}

	seen := make(map[string]struct{}, len(players))
	for _, player := range players {
		if player.Label == entity.EmptyCell {
			return apperror.ErrInvalidPlayerLabel
		}

		if _, ok := seen[player.Label]; ok {
			return fmt.Errorf("%w: %q", apperror.ErrDuplicatePlayerLabel, player.Label)
		}
		seen[player.Label] = struct{}{}
	}

	return nil
}

// IsValidMove - true when nobody has won yet and the cell is still empty.
func (that *GameState) IsValidMove(pos entity.Position) (bool, error) {
	if err := that.checkPosition(pos); err != nil {
		return false, err
	}

	return !that.hasWinner && that.board[pos.Row][pos.Col] == entity.EmptyCell, nil
}

// ProcessMove - writes the move on the board and rescans every winning combination.
// The state is left untouched when an error is returned.
func (that *GameState) ProcessMove(move entity.Move) error {
	if err := that.validateMove(move); err != nil {
		return fmt.Errorf("invalid move %s: %w", move.Position, err)
	}

	that.board[move.Row][move.Col] = move.Label
	that.updateGameStatus()

	return nil
}

// validateMove - checks if the move is valid.
func (that *GameState) validateMove(move entity.Move) error {
	if err := that.checkPosition(move.Position); err != nil {
		return err
	}

	if that.hasWinner || that.IsTied() {
		return apperror.ErrGameFinished
	}

	if that.board[move.Row][move.Col] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	if that.playerIndex(move.Label) < 0 {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, move.Label)
	}

	return nil
}

func (that *GameState) checkPosition(pos entity.Position) error {
	if !pos.InBounds(that.boardSize) {
		return fmt.Errorf("%w: %s on a %dx%d board", apperror.ErrInvalidPosition, pos, that.boardSize, that.boardSize)
	}

	return nil
}

// updateGameStatus - records the first complete combination, in table order.
func (that *GameState) updateGameStatus() {
	for _, combo := range that.combos {
		if isComplete(that.board, combo) {
			that.hasWinner = true
			that.winnerCombo = combo
			return
		}
	}
}

func (that *GameState) HasWinner() bool {
	return that.hasWinner
}

// IsTied - true when there is no winner and every cell is taken.
func (that *GameState) IsTied() bool {
	if that.hasWinner {
		return false
	}

	for _, row := range that.board {
		for _, cell := range row {
			if cell == entity.EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *GameState) Status() entity.Status {
	switch {
	case that.hasWinner:
		return entity.StatusWon
	case that.IsTied():
		return entity.StatusTied
	default:
		return entity.StatusInProgress
	}
}

// TogglePlayer - passes the turn to the next player, wrapping around after the last one.
func (that *GameState) TogglePlayer() {
	that.currentPlayer = (that.currentPlayer + 1) % len(that.players)
}

func (that *GameState) CurrentPlayer() entity.Player {
	return that.players[that.currentPlayer]
}

func (that *GameState) Players() []entity.Player {
	return append([]entity.Player(nil), that.players...)
}

func (that *GameState) BoardSize() int {
	return that.boardSize
}

// Board returns a copy of the labels, indexed [row][col].
func (that *GameState) Board() [][]string {
	board := make([][]string, len(that.board))
	for row := range that.board {
		board[row] = append([]string(nil), that.board[row]...)
	}

	return board
}

func (that *GameState) Cell(pos entity.Position) (string, error) {
	if err := that.checkPosition(pos); err != nil {
		return "", err
	}

	return that.board[pos.Row][pos.Col], nil
}

// WinnerCombo returns the winning positions, or an empty combo while nobody has won.
func (that *GameState) WinnerCombo() entity.Combo {
	return append(entity.Combo{}, that.winnerCombo...)
}

// Winner returns the player holding the winning combination.
func (that *GameState) Winner() (entity.Player, bool) {
	if !that.hasWinner || len(that.winnerCombo) == 0 {
		return entity.Player{}, false
	}

	first := that.winnerCombo[0]
	idx := that.playerIndex(that.board[first.Row][first.Col])
	if idx < 0 {
		return entity.Player{}, false
	}

	return that.players[idx], true
}

func (that *GameState) WinningCombos() []entity.Combo {
	combos := make([]entity.Combo, 0, len(that.combos))
	for _, combo := range that.combos {
		combos = append(combos, append(entity.Combo(nil), combo...))
	}

	return combos
}

func (that *GameState) playerIndex(label string) int {
	for i, player := range that.players {
		if player.Label == label {
			return i
		}
	}

	return -1
}
