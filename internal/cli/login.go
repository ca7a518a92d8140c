package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/haeun-dev/maumdiary/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}

	if err := a.accounts.Login(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Wrong username or password.")
		} else {
			fmt.Fprintln(a.out, "Login failed:", err)
		}
		return err
	}

	sess := a.accounts.Current()
	fmt.Fprintf(a.out, "Hello, %s!\n", sess.Nickname)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.accounts.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
