package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Email)
}

// Root greets the user, tries to restore a remembered session once, and
// enters the command loop.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to ProfileKeeper (type 'help' for commands)")
	a.AutoLogin(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// AutoLogin runs once at startup. When valid remembered credentials
// match the stored account the session is restored without user
// interaction; anything else leaves the user logged out. Failures are
// logged, never fatal.
func (a *App) AutoLogin(ctx context.Context) {
	u, err := a.sessions.AutoLogin(ctx)
	if err != nil {
		a.log.Error(ctx, "auto login failed", "error", err)
		return
	}
	if u != nil {
		a.user = u
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Name))
	}
}
