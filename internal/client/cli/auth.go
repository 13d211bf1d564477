package cli

import (
	"context"
	"fmt"

	"github.com/pushkard/userconsole/internal/client/api"
	"github.com/pushkard/userconsole/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, validates them locally and exchanges them
// for a token. A validation failure lists the offending fields and sends
// nothing over the network. A rejected login leaves the state anonymous.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	passWord, err := getPassword(a.out)
	if err != nil {
		return err
	}

	creds := api.Credentials{UserName: userName, PassWord: passWord}
	if errs := validation.ValidateLogin(creds); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	token, err := a.client.Login(ctx, creds)
	if err != nil {
		a.log.Warn(ctx, "login rejected", "error", err)
		fmt.Fprintln(a.out, "Login failed. Please check your credentials.")
		return nil
	}

	if err := a.session.Activate(ctx, token); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful.")
	return nil
}

// Logout ends the session. The server call is best effort: local state
// transitions to anonymous whatever the outcome, so a dead token cannot
// strand the operator in an authenticated-looking console. Running it with
// no session active is harmless.
func (a *App) Logout(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	a.session.Clear(ctx)
	return nil
}
