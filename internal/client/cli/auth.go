package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/spende/internal/client/models"
	"github.com/dmitrijs2005/spende/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("not logged in, use 'login' or 'register'")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

// readPasswordString reads a password and wipes the raw bytes.
func (a *App) readPasswordString(prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register prompts for display name, username and password and creates the
// account. The server logs the new user in right away.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPasswordString("Enter password")
	if err != nil {
		return err
	}

	user, err := a.api.Register(ctx, name, userName, password)
	if err := a.handleErr(err); err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials. A failed attempt leaves the client logged
// out, matching the server which drops the session cookie first.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPasswordString("Enter password")
	if err != nil {
		return err
	}

	a.user = nil
	user, err := a.api.Login(ctx, userName, password)
	if err := a.handleErr(err); err != nil {
		return err
	}

	a.user = user
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.api.Logout(ctx)
	a.clearCache(ctx)
	a.user = nil
	if err := a.handleErr(err); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI asks the server who the session belongs to.
func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	user, err := a.api.CurrentUser(ctx)
	if err := a.handleErr(err); err != nil {
		return err
	}
	a.user = user
	fmt.Fprintf(a.out, "%s (%s), id %s\n", user.Name, user.Username, user.ID)
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	oldPassword, err := a.readPasswordString("Current password")
	if err != nil {
		return err
	}
	newPassword, err := a.readPasswordString("New password")
	if err != nil {
		return err
	}
	repeat, err := a.readPasswordString("Repeat new password")
	if err != nil {
		return err
	}
	if newPassword != repeat {
		return errors.New("passwords do not match")
	}

	_, err = a.api.UpdateUser(ctx, models.UserUpdate{Password: &newPassword, OldPassword: &oldPassword})
	if err := a.handleErr(err); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

// Rename changes the display name and/or username.
func (a *App) Rename(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	name, err := GetOptionalText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	userName, err := GetOptionalText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}
	if name == nil && userName == nil {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	user, err := a.api.UpdateUser(ctx, models.UserUpdate{Name: name, Username: userName})
	if err := a.handleErr(err); err != nil {
		return err
	}
	a.user = user
	fmt.Fprintf(a.out, "Now %s (%s)\n", user.Name, user.Username)
	return nil
}

// DeleteAccount removes the account and all its wallets after confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "This deletes your account and all wallets. Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	user, err := a.api.DeleteUser(ctx)
	if err := a.handleErr(err); err != nil {
		return err
	}
	a.clearCache(ctx)
	a.user = nil
	fmt.Fprintf(a.out, "Account %s deleted\n", user.Username)
	return nil
}
