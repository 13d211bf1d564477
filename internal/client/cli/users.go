package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pushkard/userconsole/internal/client/api"
	"github.com/pushkard/userconsole/internal/client/validation"
)

// AddUser walks through the account-creation form. Field checks run before
// anything is submitted; on failure the messages are shown next to their
// fields and no network call is made. The endpoint itself needs no session.
func (a *App) AddUser(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	passWord, err := getPassword(a.out)
	if err != nil {
		return err
	}
	roleText, err := getSimpleText(a.reader, "Role (user/admin)", a.out)
	if err != nil {
		return err
	}

	var role api.Role
	switch strings.ToLower(roleText) {
	case "", "user":
		role = api.RoleUser
	case "admin":
		role = api.RoleAdmin
	default:
		fmt.Fprintf(a.out, "Unknown role %q, expected user or admin.\n", roleText)
		return nil
	}

	user := api.NewUserRequest{
		UserName:  userName,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		PassWord:  passWord,
		Roles:     role,
	}

	if errs := validation.ValidateNewUser(user); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	conf, err := a.client.AddUser(ctx, user)
	if err != nil {
		a.log.Warn(ctx, "user creation failed", "error", err)
		if errors.Is(err, api.ErrValidation) {
			fmt.Fprintln(a.out, "User creation failed:", err)
		} else {
			fmt.Fprintln(a.out, "User creation failed. Please try again.")
		}
		return nil
	}

	if conf.UserID != nil {
		fmt.Fprintf(a.out, "User created successfully! (id %d)\n", *conf.UserID)
	} else {
		fmt.Fprintln(a.out, "User created successfully!")
	}
	return nil
}

// List re-requests and renders the page currently shown.
func (a *App) List(ctx context.Context) error {
	if err := a.view.Refresh(ctx); err != nil {
		a.showListError(ctx, err)
	}
	return nil
}

// Page jumps to the given 1-based page.
func (a *App) Page(ctx context.Context, n int) error {
	if err := a.view.ShowPage(ctx, n); err != nil {
		a.showListError(ctx, err)
	}
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if err := a.view.Next(ctx); err != nil {
		a.showListError(ctx, err)
	}
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	if err := a.view.Prev(ctx); err != nil {
		a.showListError(ctx, err)
	}
	return nil
}

// Search scopes the listing to a single field filter.
func (a *App) Search(ctx context.Context, field, value string) error {
	f := api.SearchField(field)
	if !f.Valid() {
		fmt.Fprintln(a.out, "Searchable fields: firstName, lastName, userName, email")
		return nil
	}
	if err := a.view.Search(ctx, api.SearchQuery{Field: f, Value: value}); err != nil {
		a.showListError(ctx, err)
	}
	return nil
}

// ResetSearch returns to the unfiltered listing.
func (a *App) ResetSearch(ctx context.Context) error {
	if err := a.view.ResetSearch(ctx); err != nil {
		a.showListError(ctx, err)
	}
	return nil
}
