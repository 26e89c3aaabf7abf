package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/spende/internal/client/client"
	"github.com/dmitrijs2005/spende/internal/client/models"
)

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

// stubPasswords makes getPassword return the given answers in order.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if i >= len(pws) {
			t.Fatalf("unexpected password prompt #%d", i+1)
		}
		pw := []byte(pws[i])
		i++
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

type fakeAPI struct {
	pingErr error

	user    *models.User
	userErr error

	lastPassword string
	lastUpdate   models.UserUpdate
	loggedOut    bool
	deleted      bool

	wallets     []*models.Wallet
	walletErr   error
	created     models.NewWallet
	updatedID   string
	walletUpd   models.WalletUpdate
	removedID   string
	requestedID string
}

var _ client.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }

func (f *fakeAPI) Register(_ context.Context, name, username, password string) (*models.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	f.lastPassword = password
	f.user = &models.User{ID: "1", Name: name, Username: username}
	return f.user, nil
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (*models.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	f.lastPassword = password
	f.user = &models.User{ID: "1", Name: "Ann", Username: username}
	return f.user, nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.loggedOut = true
	return nil
}

func (f *fakeAPI) CurrentUser(context.Context) (*models.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, upd models.UserUpdate) (*models.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	f.lastUpdate = upd
	u := *f.user
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	f.user = &u
	return f.user, nil
}

func (f *fakeAPI) DeleteUser(context.Context) (*models.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	f.deleted = true
	return f.user, nil
}

func (f *fakeAPI) ListWallets(context.Context) ([]*models.Wallet, error) {
	return f.wallets, f.walletErr
}

func (f *fakeAPI) GetWallet(_ context.Context, id string) (*models.Wallet, error) {
	f.requestedID = id
	if f.walletErr != nil {
		return nil, f.walletErr
	}
	for _, w := range f.wallets {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, &client.APIError{Code: 404, Reason: "Wallet not found", Description: "not found"}
}

func (f *fakeAPI) CreateWallet(_ context.Context, nw models.NewWallet) (*models.Wallet, error) {
	if f.walletErr != nil {
		return nil, f.walletErr
	}
	f.created = nw
	return &models.Wallet{ID: "100", Name: nw.Name, Currency: nw.Currency, Rational: 1}, nil
}

func (f *fakeAPI) UpdateWallet(_ context.Context, id string, upd models.WalletUpdate) (*models.Wallet, error) {
	if f.walletErr != nil {
		return nil, f.walletErr
	}
	f.updatedID = id
	f.walletUpd = upd
	return &models.Wallet{ID: id, Name: "x", Currency: "EUR", Rational: 1}, nil
}

func (f *fakeAPI) DeleteWallet(_ context.Context, id string) (*models.Wallet, error) {
	if f.walletErr != nil {
		return nil, f.walletErr
	}
	f.removedID = id
	return &models.Wallet{ID: id, Name: "Cash"}, nil
}

func newTestApp(api *fakeAPI, r *bufio.Reader) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{api: api, reader: r, out: &out}, &out
}
