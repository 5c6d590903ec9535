// Package cli is the interactive presentation layer. It collects input,
// calls session manager operations and renders their results; it owns
// no state beyond the transient copy of the logged-in identity.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/avetrov/profilekeeper/internal/avatars"
	"github.com/avetrov/profilekeeper/internal/config"
	"github.com/avetrov/profilekeeper/internal/identity"
	"github.com/avetrov/profilekeeper/internal/logging"
	"github.com/avetrov/profilekeeper/internal/session"
	"github.com/avetrov/profilekeeper/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	sessions *session.Manager
	avatars  *avatars.Service
	log      logging.Logger
	user     *identity.User
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := store.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	av, err := avatars.NewService(cfg.AvatarDir)
	if err != nil {
		return nil, err
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	sm := session.NewManager(store.NewSQLiteStore(db), log)

	return &App{
		config:   cfg,
		sessions: sm,
		avatars:  av,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
