package usecase

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/pkg"
	"github.com/rocketscienceinc/inarow/internal/tictactoe"
)

// TurnResult is the outcome of a single accepted move.
type TurnResult struct {
	Move        entity.Move
	Status      entity.Status
	Winner      *entity.Player
	WinnerCombo entity.Combo
	NextPlayer  entity.Player
}

// Snapshot is a read-only view of a session used for rendering.
type Snapshot struct {
	SessionID     string
	BoardSize     int
	Board         [][]string
	Players       []entity.Player
	CurrentPlayer entity.Player
	Status        entity.Status
	Winner        *entity.Player
	WinnerCombo   entity.Combo
}

// Session owns one GameState and serializes every access to it.
type Session struct {
	ID string

	logger *slog.Logger

	mu   sync.Mutex
	game *tictactoe.GameState
}

func NewSession(logger *slog.Logger, players []entity.Player, boardSize int) (*Session, error) {
	game, err := tictactoe.NewGameState(players, boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	id := pkg.GenerateNewSessionID()
	log := logger.With("component", "session", "sessionID", id)

	log.Info("session started", "boardSize", boardSize, "players", len(players))

	return &Session{
		ID:     id,
		logger: log,
		game:   game,
	}, nil
}

// PlayTurn - the current player claims pos. The turn passes on only while the game is still in progress.
func (that *Session) PlayTurn(pos entity.Position) (*TurnResult, error) {
	log := that.logger.With("method", "PlayTurn", "position", pos.String())

	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.game.CurrentPlayer()

	valid, err := that.game.IsValidMove(pos)
	if err != nil {
		return nil, fmt.Errorf("failed to validate move: %w", err)
	}

	if !valid {
		if that.game.Status().IsFinished() {
			return nil, apperror.ErrGameFinished
		}

		return nil, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	move := entity.Move{Position: pos, Label: player.Label}
	if err = that.game.ProcessMove(move); err != nil {
		return nil, fmt.Errorf("failed to process move: %w", err)
	}

	result := &TurnResult{
		Move:   move,
		Status: that.game.Status(),
	}

	switch result.Status {
	case entity.StatusWon:
		winner, _ := that.game.Winner()
		result.Winner = &winner
		result.WinnerCombo = that.game.WinnerCombo()

		log.Info("game won", "player", winner.Label)
	case entity.StatusTied:
		log.Info("game tied")
	default:
		that.game.TogglePlayer()
		log.Debug("move accepted", "player", player.Label)
	}

	result.NextPlayer = that.game.CurrentPlayer()

	return result, nil
}

func (that *Session) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshot := Snapshot{
		SessionID:     that.ID,
		BoardSize:     that.game.BoardSize(),
		Board:         that.game.Board(),
		Players:       that.game.Players(),
		CurrentPlayer: that.game.CurrentPlayer(),
		Status:        that.game.Status(),
		WinnerCombo:   that.game.WinnerCombo(),
	}

	if winner, ok := that.game.Winner(); ok {
		snapshot.Winner = &winner
	}

	return snapshot
}
