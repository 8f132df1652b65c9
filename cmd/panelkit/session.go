package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/panelkit/internal/config"
	"github.com/alexisbeaulieu97/panelkit/internal/logger"
	"github.com/alexisbeaulieu97/panelkit/internal/telemetry"
	"github.com/alexisbeaulieu97/panelkit/internal/tui"
)

// session bundles the ambient dependencies of one command invocation.
type session struct {
	id        string
	log       *logger.Logger
	telemetry *telemetry.Provider
	closers   []io.Closer
}

func openSession(ctx context.Context, flags *rootFlags, command string, w io.Writer) (*session, error) {
	s := &session{id: uuid.NewString()}

	if strings.TrimSpace(flags.logFile) != "" {
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.closers = append(s.closers, file)
		w = file
	}

	base, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: true, Writer: w})
	if err != nil {
		s.close(ctx)
		return nil, fmt.Errorf("create logger: %w", err)
	}
	s.log = base.WithFields(map[string]any{
		"session": s.id,
		"command": command,
	})

	provider, err := telemetry.Setup(ctx)
	if err != nil {
		s.log.Warn(fmt.Sprintf("tracing disabled: %v", err))
	} else {
		s.telemetry = provider
	}

	return s, nil
}

func (s *session) tuiOptions(noAnimation bool) tui.Options {
	return tui.Options{
		Logger:      s.log,
		Tracer:      s.telemetry.Tracer(),
		NoAnimation: noAnimation,
	}
}

func (s *session) close(ctx context.Context) {
	if err := s.telemetry.Shutdown(ctx); err != nil {
		s.log.Error(err, "telemetry shutdown failed")
	}
	for _, c := range s.closers {
		_ = c.Close()
	}
}

// loadConfig reads the configured showcase, falling back to the built-in one.
func loadConfig(path string) (*config.Config, error) {
	if strings.TrimSpace(path) == "" {
		return config.DefaultShowcase(), nil
	}
	return config.ParseConfig(path)
}
