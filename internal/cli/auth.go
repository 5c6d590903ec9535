package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/avetrov/profilekeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// renderError maps the session error taxonomy onto the messages shown
// to the user. Anything unrecognized surfaces as a generic failure.
func renderError(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, common.ErrDuplicateAccount):
		return "An account with this email already exists."
	case errors.Is(err, common.ErrNoAccount):
		return "No account found. Please sign up first."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password."
	default:
		return "Something went wrong: " + err.Error()
	}
}

// Signup collects the four signup fields and creates the account. On
// success the user stays logged out and must log in explicitly. The
// password slices are wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeBytes(password)
	confirm, err := getPassword("Confirm password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeBytes(confirm)

	u, err := a.sessions.Signup(ctx, name, email, string(password), string(confirm))
	if err != nil {
		printlnFn(renderError(err))
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s! You can now log in.", u.Name))
	return nil
}

// Login prompts for credentials and the remember-me choice and tries to
// authenticate. On success the transient user copy is set and the
// prompt switches to the authenticated command set.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeBytes(password)

	remember, err := getSimpleText(a.reader, "Remember me? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	rememberMe := strings.HasPrefix(strings.ToLower(remember), "y")

	u, err := a.sessions.Login(ctx, email, string(password), rememberMe)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}

	a.user = u
	printlnFn("Login successful.")
	return nil
}

// Logout clears the remembered session and the transient user copy.
// The stored account is preserved.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		printlnFn(renderError(err))
		return err
	}
	a.user = nil
	printlnFn("Logged out.")
	return nil
}
