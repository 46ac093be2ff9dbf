package usecase

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, boardSize int) *Session {
	t.Helper()

	session, err := NewSession(newTestLogger(), entity.DefaultPlayers(), boardSize)
	require.NoError(t, err)

	return session
}

func TestNewSession(t *testing.T) {
	t.Run("Starts with an empty board", func(t *testing.T) {
		// When: a session is created
		session := newTestSession(t, 3)

		// Then: it has an ID and X is to move
		snapshot := session.Snapshot()
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, session.ID, snapshot.SessionID)
		assert.Equal(t, 3, snapshot.BoardSize)
		assert.Equal(t, entity.StatusInProgress, snapshot.Status)
		assert.Equal(t, entity.PlayerX, snapshot.CurrentPlayer.Label)
		assert.Nil(t, snapshot.Winner)
		assert.Empty(t, snapshot.WinnerCombo)
	})

	t.Run("Returns construction errors", func(t *testing.T) {
		session, err := NewSession(newTestLogger(), []entity.Player{{Label: "X"}}, 3)

		require.ErrorIs(t, err, apperror.ErrInsufficientPlayers)
		assert.Nil(t, session)
	})

	t.Run("Every session has its own ID", func(t *testing.T) {
		assert.NotEqual(t, newTestSession(t, 3).ID, newTestSession(t, 3).ID)
	})
}

func TestSession_PlayTurn(t *testing.T) {
	t.Run("Alternates players while the game goes on", func(t *testing.T) {
		// Given: a new session
		session := newTestSession(t, 3)

		// When: X plays the centre
		result, err := session.PlayTurn(entity.Position{Row: 1, Col: 1})

		// Then: the move is X's and O is next
		require.NoError(t, err)
		assert.Equal(t, entity.NewMove(1, 1, entity.PlayerX), result.Move)
		assert.Equal(t, entity.StatusInProgress, result.Status)
		assert.Nil(t, result.Winner)
		assert.Equal(t, entity.PlayerO, result.NextPlayer.Label)
	})

	t.Run("Reports the winner and keeps the turn", func(t *testing.T) {
		// Given: X and O alternate so that X fills the first row
		session := newTestSession(t, 3)
		for _, pos := range []entity.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}} {
			_, err := session.PlayTurn(pos)
			require.NoError(t, err)
		}

		// When: X completes the row
		result, err := session.PlayTurn(entity.Position{Row: 0, Col: 2})

		// Then: X won and is still the current player
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWon, result.Status)
		require.NotNil(t, result.Winner)
		assert.Equal(t, entity.PlayerX, result.Winner.Label)
		assert.Equal(t, entity.Combo{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, result.WinnerCombo)
		assert.Equal(t, entity.PlayerX, result.NextPlayer.Label)

		snapshot := session.Snapshot()
		require.NotNil(t, snapshot.Winner)
		assert.Equal(t, entity.PlayerX, snapshot.Winner.Label)
		assert.Equal(t, result.WinnerCombo, snapshot.WinnerCombo)
	})

	t.Run("Reports a tie", func(t *testing.T) {
		// Given: a sequence of alternating moves that blocks every line
		session := newTestSession(t, 3)
		positions := []entity.Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 0},
			{Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
		}

		var result *TurnResult
		var err error
		for _, pos := range positions {
			result, err = session.PlayTurn(pos)
			require.NoError(t, err)
		}

		// Then: the last move ties the game and further moves are rejected
		assert.Equal(t, entity.StatusTied, result.Status)
		assert.Nil(t, result.Winner)

		_, err = session.PlayTurn(entity.Position{Row: 0, Col: 0})
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Rejects an occupied cell without changing the turn", func(t *testing.T) {
		// Given: X holds the corner
		session := newTestSession(t, 3)
		_, err := session.PlayTurn(entity.Position{Row: 0, Col: 0})
		require.NoError(t, err)

		// When: O tries the same corner
		_, err = session.PlayTurn(entity.Position{Row: 0, Col: 0})

		// Then: the move is rejected and it is still O's turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.PlayerO, session.Snapshot().CurrentPlayer.Label)
	})

	t.Run("Rejects moves after a win", func(t *testing.T) {
		session, err := NewSession(newTestLogger(), entity.DefaultPlayers(), 1)
		require.NoError(t, err)

		_, err = session.PlayTurn(entity.Position{})
		require.NoError(t, err)

		_, err = session.PlayTurn(entity.Position{})
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Rejects an out of range position", func(t *testing.T) {
		session := newTestSession(t, 3)

		_, err := session.PlayTurn(entity.Position{Row: 5, Col: 0})

		require.ErrorIs(t, err, apperror.ErrInvalidPosition)
	})
}

func TestSession_ConcurrentTurns(t *testing.T) {
	t.Run("Distinct cells", func(t *testing.T) {
		// Given: a 5x5 session and one goroutine per cell
		const size = 5
		session := newTestSession(t, size)

		var accepted, finished atomic.Int32
		var errg errgroup.Group

		// When: every goroutine tries to play its own cell at once
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				pos := entity.Position{Row: row, Col: col}
				errg.Go(func() error {
					_, err := session.PlayTurn(pos)
					switch {
					case err == nil:
						accepted.Add(1)
					case errors.Is(err, apperror.ErrGameFinished):
						finished.Add(1)
					default:
						return err
					}
					return nil
				})
			}
		}

		// Then: only ErrGameFinished rejections happen and the game ends
		require.NoError(t, errg.Wait())
		assert.Equal(t, int32(size*size), accepted.Load()+finished.Load())

		snapshot := session.Snapshot()
		assert.True(t, snapshot.Status.IsFinished())

		taken := 0
		for _, row := range snapshot.Board {
			for _, cell := range row {
				if cell != entity.EmptyCell {
					taken++
				}
			}
		}
		assert.Equal(t, int(accepted.Load()), taken)
	})

	t.Run("Same cell", func(t *testing.T) {
		// Given: a 3x3 session
		session := newTestSession(t, 3)

		var accepted atomic.Int32
		var errg errgroup.Group

		// When: ten goroutines race for the centre
		for range 10 {
			errg.Go(func() error {
				_, err := session.PlayTurn(entity.Position{Row: 1, Col: 1})
				if err == nil {
					accepted.Add(1)
					return nil
				}
				if errors.Is(err, apperror.ErrCellOccupied) {
					return nil
				}
				return err
			})
		}

		// Then: exactly one of them gets it
		require.NoError(t, errg.Wait())
		assert.Equal(t, int32(1), accepted.Load())
		assert.Equal(t, entity.PlayerO, session.Snapshot().CurrentPlayer.Label)
	})
}
