package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
)

// shell keeps one session open and runs commands against it until the user
// exits. Lasers keep running between commands; they are soft-locked when the
// session closes.
type shell struct {
	ctrl pb.ControlClient
	open *pb.OpenResponse
	rl   *readline.Instance
}

func newShell(ctrl pb.ControlClient, open *pb.OpenResponse) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("sepia2 %s> ", open.GetSerial()),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("help"),
			readline.PcItem("list"),
			readline.PcItem("status"),
			readline.PcItem("start"),
			readline.PcItem("stop"),
			readline.PcItem("clock"),
			readline.PcItem("intensity"),
			readline.PcItem("lock"),
			readline.PcItem("unlock"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &shell{ctrl: ctrl, open: open, rl: rl}, nil
}

func (s *shell) Run(ctx context.Context) {
	defer s.rl.Close()
	fmt.Fprint(s.rl.Stdout(), usage)

	for ctx.Err() == nil {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return
		}
		if done := s.runLine(ctx, line, s.rl.Stdout()); done {
			return
		}
	}
}

// runLine executes one shell line and reports whether the shell should exit.
func (s *shell) runLine(ctx context.Context, line string, w io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "exit", "quit", "q":
		return true
	}

	cmd, err := parseCommand(fields)
	if err != nil {
		fmt.Fprintln(w, "error:", err)
		return false
	}
	switch cmd.name {
	case "help":
		fmt.Fprint(w, usage)
	case "shell":
		fmt.Fprintln(w, "already in a shell")
	case "list":
		err = printDevices(ctx, s.ctrl, w)
	default:
		err = execute(ctx, s.ctrl, s.open, cmd, w)
	}
	if err != nil {
		fmt.Fprintln(w, "error:", err)
	}
	return false
}
