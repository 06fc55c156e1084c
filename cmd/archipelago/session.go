package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/toyz/archipelago/internal/config"
	"github.com/toyz/archipelago/pkg/archipelago"
)

// session is the state PersistentPreRunE prepares for every subcommand
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

type sessionKey struct{}

func (s *session) attach(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, sessionKey{}, s))
}

func sessionFrom(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("command ran without a session")
	}
	s, ok := ctx.Value(sessionKey{}).(*session)
	if !ok {
		return nil, errors.New("command ran without a session")
	}
	return s, nil
}

// options maps the routes section onto a discovery run with the builtin handlers
func (s *session) options() (archipelago.Options, error) {
	resolver, err := newResolver(s.logger)
	if err != nil {
		return archipelago.Options{}, err
	}
	return archipelago.Options{
		RootDir:     s.cfg.Routes.Dir,
		Strict:      s.cfg.Routes.Strict,
		Concurrency: s.cfg.Routes.Concurrency,
		Resolver:    resolver,
		Logger:      s.logger,
	}, nil
}
