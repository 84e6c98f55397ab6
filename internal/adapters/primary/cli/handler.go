// Package cli runs the interactive read-eval-print loop over standard input.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/nusclubs/clubconnect/internal/ports/primary"
)

const welcomeMessage = "Welcome to Club Connect! Type 'help' to see available commands."

type Handler struct {
	logic primary.Logic
	in    io.Reader
	out   io.Writer
	log   *zap.SugaredLogger
}

func NewHandler(logic primary.Logic, in io.Reader, out io.Writer, log *zap.SugaredLogger) *Handler {
	return &Handler{
		logic: logic,
		in:    in,
		out:   out,
		log:   log,
	}
}

// Run reads commands line by line until the exit command or end of input.
func (h *Handler) Run() error {
	fmt.Fprintln(h.out, welcomeMessage)

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result := h.logic.Execute(line)
		if result.Feedback != "" {
			fmt.Fprintln(h.out, result.Feedback)
		}
		if result.Exit {
			h.log.Info("exit requested")
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	h.log.Info("input closed")
	return nil
}
