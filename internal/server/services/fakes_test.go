package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/spende/internal/common"
	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/dmitrijs2005/spende/internal/server/config"
	"github.com/dmitrijs2005/spende/internal/server/models"
	usersrepo "github.com/dmitrijs2005/spende/internal/server/repositories/users"
	walletsrepo "github.com/dmitrijs2005/spende/internal/server/repositories/wallets"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

// plainHasher stores "h:"+password so tests can reason about hashes.
type plainHasher struct {
	hashErr    error
	compareErr error
}

func (h *plainHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "h:" + password, nil
}

func (h *plainHasher) Compare(hash, password string) error {
	if h.compareErr != nil {
		return h.compareErr
	}
	if !strings.HasPrefix(hash, "h:") || hash[2:] != password {
		return ErrPasswordMismatch
	}
	return nil
}

type seqIDs struct {
	n   int
	err error
}

func (g *seqIDs) NextID() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.n++
	return fmt.Sprintf("id-%d", g.n), nil
}

// memUsers is an in-memory users.Repository.
type memUsers struct {
	rows map[string]*models.User
	err  error
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{rows: map[string]*models.User{}}
	for _, u := range users {
		m.rows[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.rows {
		if r.Username == u.Username {
			return nil, common.ErrConflict
		}
	}
	c := *u
	m.rows[u.ID] = &c
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.rows {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memUsers) Update(_ context.Context, u *models.User) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.rows[u.ID]; !ok {
		return nil, common.ErrNotFound
	}
	c := *u
	m.rows[u.ID] = &c
	return u, nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// memWallets is an in-memory wallets.Repository honouring ownership.
type memWallets struct {
	rows map[string]*models.Wallet
	err  error
}

func newMemWallets(ws ...*models.Wallet) *memWallets {
	m := &memWallets{rows: map[string]*models.Wallet{}}
	for _, w := range ws {
		m.rows[w.ID] = w
	}
	return m
}

func (m *memWallets) ListByUser(_ context.Context, userID string) ([]*models.Wallet, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*models.Wallet, 0)
	for _, w := range m.rows {
		if w.UserID == userID {
			c := *w
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memWallets) GetForUser(_ context.Context, id, userID string) (*models.Wallet, error) {
	if m.err != nil {
		return nil, m.err
	}
	w, ok := m.rows[id]
	if !ok || w.UserID != userID {
		return nil, common.ErrNotFound
	}
	c := *w
	return &c, nil
}

func (m *memWallets) Create(_ context.Context, w *models.Wallet) (*models.Wallet, error) {
	if m.err != nil {
		return nil, m.err
	}
	c := *w
	m.rows[w.ID] = &c
	return w, nil
}

func (m *memWallets) Update(_ context.Context, w *models.Wallet) (*models.Wallet, error) {
	if m.err != nil {
		return nil, m.err
	}
	old, ok := m.rows[w.ID]
	if !ok || old.UserID != w.UserID {
		return nil, common.ErrNotFound
	}
	c := *w
	c.Balance = old.Balance
	m.rows[w.ID] = &c
	return w, nil
}

func (m *memWallets) Delete(_ context.Context, id, userID string) error {
	if m.err != nil {
		return m.err
	}
	w, ok := m.rows[id]
	if !ok || w.UserID != userID {
		return common.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type fakeRepoManager struct {
	u *memUsers
	w *memWallets
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *fakeRepoManager) Wallets(dbx.DBTX) walletsrepo.Repository     { return m.w }

func testConfig() *config.Config {
	return &config.Config{SecretKey: "k", TokenValidityDuration: time.Hour}
}

