package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/outstagram/outstagram-cli/internal/client/api"
	"github.com/outstagram/outstagram-cli/internal/client/config"
	"github.com/outstagram/outstagram-cli/internal/client/credentials"
	"github.com/outstagram/outstagram-cli/internal/client/session"
	"github.com/outstagram/outstagram-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   *session.Store
	creds   credentials.Repository
	api     api.Client
	reader  *bufio.Reader
	closeDB func() error
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	log := logging.NewDefault(os.Stderr)

	db, err := credentials.InitDatabase(ctx, c.CredentialsFile)
	if err != nil {
		log.Error(ctx, "error initializing credential store", "error", err)
		return nil, err
	}

	creds := credentials.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, creds.Token, log)

	return &App{
		config:  c,
		log:     log,
		store:   session.NewStore(),
		creds:   creds,
		api:     apiClient,
		reader:  bufio.NewReader(os.Stdin),
		closeDB: db.Close,
	}, nil
}

// Run restores a previously saved session, if any, and starts the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.closeDB != nil {
		defer a.closeDB()
	}

	if err := session.Restore(ctx, a.store, a.creds); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return !a.store.State().Anonymous()
}
