package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for spell checks.
type Server struct {
	checker suggest.Checker
	config  config.ServerConfig
	decoder *msgpack.Decoder
	writer  *bufio.Writer
	encoder *msgpack.Encoder
	logger  *log.Logger
}

// NewServer creates a server reading requests from r and writing responses
// to w, usually stdin and stdout.
func NewServer(checker suggest.Checker, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	writer := bufio.NewWriter(w)
	return &Server{
		checker: checker,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  writer,
		encoder: msgpack.NewEncoder(writer),
		logger:  logger.New("ipc"),
	}
}

// Start sends the ready banner and serves requests until the input closes.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client disconnected (EOF)")
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "":
		s.handleCheck(req)
	case "get_info":
		s.send(InfoResponse{ID: req.ID, Status: "ok", Stats: s.checker.Stats()})
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 404)
	}
}

// handleCheck validates and answers a check request. Limits outside
// 1..max_limit are clamped to max_limit.
func (s *Server) handleCheck(req Request) {
	word := utils.Normalize(req.Word)

	if word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		return
	}
	if len(word) > s.config.MaxWordLen {
		s.sendError(req.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", s.config.MaxWordLen), 400)
		return
	}
	if !utils.IsValidInput(word) {
		s.sendError(req.ID, "Word must contain only letters a-z", 400)
		return
	}

	limit := req.Limit
	if limit < 1 || limit > s.config.MaxLimit {
		limit = s.config.MaxLimit
	}

	start := time.Now()
	result := s.checker.Check(word)
	elapsed := time.Since(start)

	suggestions := utils.Truncate(result.Suggestions, limit)
	if suggestions == nil {
		suggestions = []string{}
	}

	s.send(CheckResponse{
		ID:          req.ID,
		Word:        result.Word,
		Found:       result.Found,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// send encodes one response and flushes it so the client sees it at once.
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.logger.Errorf("Flushing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(CheckError{ID: id, Error: message, Code: code})
}
