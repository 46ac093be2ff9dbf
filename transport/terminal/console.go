package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/usecase"
)

var ErrInvalidInput = errors.New("expected a row and a column")

// Session is the game a console plays. It is implemented by usecase.Session.
type Session interface {
	PlayTurn(pos entity.Position) (*usecase.TurnResult, error)
	Snapshot() usecase.Snapshot
}

// Console plays games over a line based reader and writer.
type Console struct {
	logger     *slog.Logger
	newSession func() (Session, error)

	in  io.Reader
	out io.Writer

	session Session
	readErr error

	commands map[string]func() (bool, error)
}

func New(logger *slog.Logger, newSession func() (Session, error), in io.Reader, out io.Writer) *Console {
	console := &Console{
		logger:     logger.With("component", "terminal"),
		newSession: newSession,

		in:  in,
		out: out,

		commands: make(map[string]func() (bool, error)),
	}

	console.commands["q"] = console.handleQuit
	console.commands["quit"] = console.handleQuit
	console.commands["exit"] = console.handleQuit
	console.commands["new"] = console.handlePlayAgain
	console.commands["help"] = console.handleHelp

	return console
}

// Run - plays until the input ends, the player quits or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if err := that.startSession(); err != nil {
		return err
	}

	lines := that.readLines(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if that.readErr != nil {
					return fmt.Errorf("failed to read input: %w", that.readErr)
				}

				log.Info("input closed")
				return nil
			}

			quit, err := that.handleLine(line)
			if err != nil {
				return err
			}

			if quit {
				return nil
			}
		}
	}
}

// readLines - scans input in the background. readErr is set before the channel is closed.
func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		that.readErr = scanner.Err()
	}()

	return lines
}

func (that *Console) handleLine(line string) (bool, error) {
	input := strings.ToLower(strings.TrimSpace(line))
	if input == "" {
		that.prompt()
		return false, nil
	}

	if command, ok := that.commands[input]; ok {
		return command()
	}

	if that.session.Snapshot().Status.IsFinished() {
		return that.handleGameOverAnswer(input)
	}

	return false, that.handleMove(input)
}

func (that *Console) handleMove(input string) error {
	log := that.logger.With("method", "handleMove")

	pos, err := parsePosition(input)
	if err != nil {
		log.Debug("unreadable move", "input", input, "error", err)
		that.printf("Enter a row and a column, for example \"1 3\". Type help for commands.\n")
		that.prompt()

		return nil
	}

	result, err := that.session.PlayTurn(pos)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrInvalidPosition):
		that.printf("Row and column must be between 1 and %d.\n", that.session.Snapshot().BoardSize)
		that.prompt()
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("That cell is taken, pick another one.\n")
		that.prompt()
		return nil
	case errors.Is(err, apperror.ErrGameFinished):
		that.printf("The game is over.\n")
		that.prompt()
		return nil
	default:
		return fmt.Errorf("failed to play turn: %w", err)
	}

	that.printf("%s", renderBoard(that.session.Snapshot()))

	switch result.Status {
	case entity.StatusWon:
		if result.Winner != nil {
			that.printf("Player %q won!%s\n", result.Winner.Label, colorTag(*result.Winner))
		}
	case entity.StatusTied:
		that.printf("Tied game!\n")
	}

	that.prompt()

	return nil
}

func (that *Console) handleGameOverAnswer(input string) (bool, error) {
	switch input {
	case "y", "yes":
		return that.handlePlayAgain()
	case "n", "no":
		return that.handleQuit()
	default:
		that.prompt()
		return false, nil
	}
}

func (that *Console) handlePlayAgain() (bool, error) {
	if err := that.startSession(); err != nil {
		return false, err
	}

	return false, nil
}

func (that *Console) handleQuit() (bool, error) {
	that.printf("Bye!\n")

	return true, nil
}

func (that *Console) handleHelp() (bool, error) {
	that.printf("Moves are \"row col\", counted from 1. Commands: new, help, q.\n")
	that.prompt()

	return false, nil
}

func (that *Console) startSession() error {
	session, err := that.newSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	that.session = session

	snapshot := session.Snapshot()
	that.logger.Info("new game", "sessionID", snapshot.SessionID)

	that.printf("%s\n", renderPlayers(snapshot.Players))
	that.printf("%s", renderBoard(snapshot))
	that.prompt()

	return nil
}

func (that *Console) prompt() {
	snapshot := that.session.Snapshot()
	if snapshot.Status.IsFinished() {
		that.printf("Play again? [y/n] ")
		return
	}

	that.printf("%s's turn%s: ", snapshot.CurrentPlayer.Label, colorTag(snapshot.CurrentPlayer))
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write to terminal", "error", err)
	}
}
