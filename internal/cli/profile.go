package cli

import (
	"context"
	"os"

	"github.com/avetrov/profilekeeper/internal/session"
)

// Profile prints the signed-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	printlnFn("Name:   " + a.user.Name)
	printlnFn("Email:  " + a.user.Email)
	if a.user.AvatarRef != "" {
		printlnFn("Avatar: " + a.avatars.Path(a.user.AvatarRef))
	} else {
		printlnFn("Avatar: (none)")
	}
	return nil
}

func (a *App) SetName(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}
	return a.applyUpdate(ctx, session.ProfileUpdate{Name: &name})
}

func (a *App) SetEmail(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter new email", os.Stdout)
	if err != nil {
		return err
	}
	return a.applyUpdate(ctx, session.ProfileUpdate{Email: &email})
}

// SetAvatar imports the picked image into the managed avatar directory
// and persists the new ref immediately, independent of any further
// edits.
func (a *App) SetAvatar(ctx context.Context, path string) error {
	if a.user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	ref, err := a.avatars.Import(path)
	if err != nil {
		printlnFn("Could not import avatar: " + err.Error())
		return err
	}
	return a.applyUpdate(ctx, session.ProfileUpdate{AvatarRef: &ref})
}

func (a *App) applyUpdate(ctx context.Context, upd session.ProfileUpdate) error {
	u, err := a.sessions.UpdateProfile(ctx, upd)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}
	a.user = u
	printlnFn("Profile updated.")
	return nil
}
