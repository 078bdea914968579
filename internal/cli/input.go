// Package cli runs the interactive spell-check loop on a terminal.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/charmbracelet/log"
)

const exitWord = "exit"

// InputHandler reads words from its input, checks each one and prints the
// verdict, listing up to suggestLimit corrections for unknown words.
type InputHandler struct {
	checker      suggest.Checker
	in           io.Reader
	out          *log.Logger
	suggestLimit int
	requestCount int
}

// NewInputHandler wires a handler reading from in and printing to out.
func NewInputHandler(checker suggest.Checker, in io.Reader, out io.Writer, limit int) *InputHandler {
	return &InputHandler{
		checker:      checker,
		in:           in,
		out:          logger.NewWithWriter(out, ""),
		suggestLimit: limit,
	}
}

// Start runs the loop until "exit" is entered or input ends. Every
// whitespace-separated token on a line is checked on its own.
func (h *InputHandler) Start() error {
	h.out.Print("WordFix CLI")
	h.out.Print("Enter a word to search (or 'exit' to quit):")

	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			word := utils.Normalize(token)
			if word == exitWord {
				log.Debugf("Exiting after %d requests", h.requestCount)
				return nil
			}
			h.handleInput(word)
		}
		h.out.Print("> ")
	}
	return scanner.Err()
}

// handleInput checks a single normalized word and prints the outcome.
func (h *InputHandler) handleInput(word string) {
	h.requestCount++

	if !utils.IsValidInput(word) {
		h.out.Printf("Skipping '%s': only letters a-z are supported", word)
		return
	}

	start := time.Now()
	result := h.checker.Check(word)
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), word)

	if result.Found {
		h.out.Printf("Word found: %s", result.Word)
		return
	}

	h.out.Print("Word not found. Suggestions:")
	if len(result.Suggestions) == 0 {
		h.out.Print("No suggestions available.")
		return
	}
	shown := utils.Truncate(result.Suggestions, h.suggestLimit)
	for _, s := range shown {
		h.out.Print(fmt.Sprintf("\033[38;5;75m%s\033[0m", s))
	}
	if hidden := len(result.Suggestions) - len(shown); hidden > 0 {
		log.Debugf("%d more suggestions hidden by limit %d", hidden, h.suggestLimit)
	}
}
