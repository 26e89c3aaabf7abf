package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/spende/internal/client/client"
	"github.com/dmitrijs2005/spende/internal/client/config"
	"github.com/dmitrijs2005/spende/internal/client/models"
	"github.com/dmitrijs2005/spende/internal/client/repositories/wallets"
	"github.com/jmoiron/sqlx"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	api    client.Client
	db     *sqlx.DB
	cache  wallets.Repository
	user   *models.User
	Mode   Mode
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}

	if c.CachePath != "" {
		db, err := client.OpenCache(context.Background(), c.CachePath)
		if err != nil {
			return nil, fmt.Errorf("error initializing cache: %w", err)
		}
		app.db = db
		app.cache = wallets.NewSQLiteRepository(db)
	}

	return app, nil
}

func (app *App) setMode(mode Mode) {
	if app.Mode != mode {
		app.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// checkServer pings the server and updates Mode accordingly.
func (a *App) checkServer(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// handleErr reports a failed command. A 401 means the session is gone, so the
// cached user is dropped; a transport failure flips Mode to offline.
func (a *App) handleErr(err error) error {
	switch {
	case err == nil:
		a.setMode(ModeOnline)
	case errors.Is(err, client.ErrUnauthorized):
		if a.user != nil {
			a.user = nil
			fmt.Fprintln(a.out, "Session expired, please log in again")
		}
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
	}
	return err
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("closing cache: %v", err)
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Username + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run checks connectivity once and then blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.close()
	log.Printf("spende CLI, server %s (type 'help' for commands)", a.config.ServerURL)
	a.checkServer(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}
