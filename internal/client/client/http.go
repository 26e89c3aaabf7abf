package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/spende/internal/client/models"
	"github.com/dmitrijs2005/spende/internal/common"
	"github.com/google/uuid"
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client

	mu      sync.Mutex
	session string
}

// NewHTTPClient builds a client for the API mounted at baseURL, e.g.
// "http://127.0.0.1:8080/api".
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url: unsupported scheme %q", u.Scheme)
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// LoggedIn reports whether a session cookie is currently held.
func (c *HTTPClient) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != ""
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *APIError       `json:"error"`
}

// do sends one request and decodes the data member into out (when non-nil).
// The session cookie is attached on the way out and refreshed from any
// Set-Cookie on the way back.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	c.mu.Lock()
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: c.session})
	}
	c.mu.Unlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.storeSession(resp)

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("unexpected response (%s): %w", resp.Status, err)
	}

	if env.Error != nil {
		return env.Error
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Code: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *HTTPClient) storeSession(resp *http.Response) {
	for _, ck := range resp.Cookies() {
		if ck.Name != common.SessionCookieName {
			continue
		}
		c.mu.Lock()
		if ck.MaxAge < 0 || ck.Value == "" {
			c.session = ""
		} else {
			c.session = ck.Value
		}
		c.mu.Unlock()
	}
}

// Ping checks GET /health on the server root.
func (c *HTTPClient) Ping(ctx context.Context) error {
	u := *c.baseURL
	u.Path = "/health"
	u.RawPath = ""

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %s", ErrUnavailable, resp.Status)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, name, username, password string) (*models.User, error) {
	body := map[string]string{"name": name, "username": username, "password": password}
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/users", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	body := map[string]string{"username": username, "password": password}
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/users/logout", nil, nil)

	c.mu.Lock()
	c.session = ""
	c.mu.Unlock()

	return err
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/users", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodDelete, "/users", nil, &u); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = ""
	c.mu.Unlock()

	return &u, nil
}

func (c *HTTPClient) ListWallets(ctx context.Context) ([]*models.Wallet, error) {
	var ws []*models.Wallet
	if err := c.do(ctx, http.MethodGet, "/wallets", nil, &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

func (c *HTTPClient) GetWallet(ctx context.Context, id string) (*models.Wallet, error) {
	var w models.Wallet
	if err := c.do(ctx, http.MethodGet, "/wallets/"+url.PathEscape(id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) CreateWallet(ctx context.Context, nw models.NewWallet) (*models.Wallet, error) {
	var w models.Wallet
	if err := c.do(ctx, http.MethodPost, "/wallets", nw, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) UpdateWallet(ctx context.Context, id string, upd models.WalletUpdate) (*models.Wallet, error) {
	var w models.Wallet
	if err := c.do(ctx, http.MethodPut, "/wallets/"+url.PathEscape(id), upd, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) DeleteWallet(ctx context.Context, id string) (*models.Wallet, error) {
	var w models.Wallet
	if err := c.do(ctx, http.MethodDelete, "/wallets/"+url.PathEscape(id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}
