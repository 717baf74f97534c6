// Package server hosts the notification dispatcher behind a minimal
// line-oriented stdio boundary: one JSON request per line in, one JSON
// outcome per line out. The transport is deliberately thin glue; all
// behaviour lives in the dispatch pipeline.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/taskping/taskping/internal/dispatch"
)

// DefaultMessage is used when a request carries no message text,
// matching the tool's documented default.
const DefaultMessage = "Task completed"

// Notifier runs the delivery pipeline for one request.
type Notifier interface {
	Notify(ctx context.Context, kind dispatch.Kind, message string) dispatch.Outcome
}

// request is the single externally callable operation's payload.
type request struct {
	Message string `json:"message"`
}

// Server reads requests from in and writes outcomes to out.
type Server struct {
	notifier Notifier
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
}

// New creates a server around the given notifier and streams.
func New(notifier Notifier, in io.Reader, out io.Writer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{notifier: notifier, in: in, out: out, logger: logger}
}

// Run processes requests until EOF or context cancellation. EOF and
// cancellation are clean shutdowns (nil); only transport errors are
// returned. Individual requests never error: malformed input yields an
// error-status outcome so the caller always gets a response line.
func (s *Server) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("server stopping")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("reading requests: %w", err)
					}
				default:
				}
				s.logger.Info("input closed, server stopping")
				return nil
			}
			if err := s.handle(ctx, line); err != nil {
				return err
			}
		}
	}
}

// handle processes one request line. Only write failures propagate.
func (s *Server) handle(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}

	var req request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		s.logger.Warn("malformed request", "error", err)
		return s.respond(dispatch.Outcome{
			Status:  dispatch.StatusError,
			Message: "malformed request: " + err.Error(),
		})
	}

	message := req.Message
	if message == "" {
		message = DefaultMessage
	}

	kind := dispatch.Classify(message)
	outcome := s.notifier.Notify(ctx, kind, message)
	return s.respond(outcome)
}

func (s *Server) respond(outcome dispatch.Outcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("encoding outcome: %w", err)
	}
	if _, err := fmt.Fprintf(s.out, "%s\n", data); err != nil {
		return fmt.Errorf("writing outcome: %w", err)
	}
	return nil
}
