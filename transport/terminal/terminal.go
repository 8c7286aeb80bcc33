// Package terminal is a line-oriented front end for a single local game.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	commandReset = "reset"
	commandQuit  = "quit"
	commandExit  = "exit"
)

type Terminal struct {
	in     *bufio.Scanner
	out    io.Writer
	engine *tictactoe.Engine
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     bufio.NewScanner(in),
		out:    out,
		engine: tictactoe.New(),
	}
}

// Run - renders the board, then reads commands until quit, end of input or ctx is done.
func (that *Terminal) Run(ctx context.Context) error {
	if err := that.render(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go that.scan(ctx, lines, scanErr)

	for {
		that.printf("> ")

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}

				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				return nil
			}

			line = next
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		command := strings.ToLower(strings.TrimSpace(line))

		switch command {
		case "":
			continue
		case commandQuit, commandExit:
			return nil
		case commandReset:
			that.engine.Reset()
		default:
			position, err := strconv.Atoi(command)
			if err != nil {
				that.printf("unknown command %q: enter a cell 0-8, %q or %q\n", command, commandReset, commandQuit)
				continue
			}

			if err = that.engine.ApplyMove(position); err != nil {
				that.printf("error: %v\n", err)
				continue
			}
		}

		if err := that.render(); err != nil {
			return err
		}
	}
}

// scan - feeds input lines to Run so a blocked read never holds up cancellation.
func (that *Terminal) scan(ctx context.Context, lines chan<- string, scanErr chan<- error) {
	defer close(lines)

	for that.in.Scan() {
		select {
		case lines <- that.in.Text():
		case <-ctx.Done():
			return
		}
	}

	scanErr <- that.in.Err()
}

// render - draws the board; empty cells show their index.
func (that *Terminal) render() error {
	if _, err := io.WriteString(that.out, Render(that.engine.Board())); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	that.printf("%s\n", that.engine.StatusText())

	return nil
}

func (that *Terminal) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

// Render - formats a board as three rows separated by rules.
func Render(board tictactoe.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			index := row*3 + col

			cell := string(board[index])
			if cell == string(tictactoe.Empty) {
				cell = strconv.Itoa(index)
			}

			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + cell + " ")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
