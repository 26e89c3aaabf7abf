package cli

import (
	"bytes"
	"context"
	"errors"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/spende/internal/client/config"
	"github.com/dmitrijs2005/spende/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	app, err := NewApp(&config.Config{ServerURL: "http://127.0.0.1:8080/api", RequestTimeout: time.Second})
	require.NoError(t, err)
	assert.NotNil(t, app.api)
	assert.False(t, app.isLoggedIn())

	_, err = NewApp(&config.Config{ServerURL: "tcp://nowhere"})
	assert.Error(t, err)
}

func TestNewApp_WithCache(t *testing.T) {
	app, err := NewApp(&config.Config{
		ServerURL:      "http://127.0.0.1:8080/api",
		RequestTimeout: time.Second,
		CachePath:      filepath.Join(t.TempDir(), "cache.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, app.cache)
	app.close()

	_, err = NewApp(&config.Config{
		ServerURL: "http://127.0.0.1:8080/api",
		CachePath: filepath.Join(t.TempDir(), "missing", "cache.db"),
	})
	assert.Error(t, err)
}

func TestIsLoggedIn(t *testing.T) {
	app := &App{}
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false without a user")
	}
	app.user = &models.User{Username: "ann"}
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true with a user")
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		app  *App
		want string
	}{
		{name: "empty", app: &App{}, want: ""},
		{name: "user only", app: &App{user: &models.User{Username: "alice"}}, want: "(alice )"},
		{name: "user and mode", app: &App{user: &models.User{Username: "alice"}, Mode: ModeOnline}, want: "(alice online)"},
		{name: "mode only", app: &App{Mode: ModeOffline}, want: "(offline)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.app.getStatus())
		})
	}
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ModeOnline)
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode to be %q, got %q", ModeOffline, app.Mode)
	}
}

func TestCheckServer(t *testing.T) {
	api := &fakeAPI{}
	app, _ := newTestApp(api, readerFromLines())

	app.checkServer(context.Background())
	assert.Equal(t, ModeOnline, app.Mode)

	api.pingErr = errors.New("down")
	app.checkServer(context.Background())
	assert.Equal(t, ModeOffline, app.Mode)
}
