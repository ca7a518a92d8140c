package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/haeun-dev/maumdiary/internal/common"
)

func (a *App) Signup(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username (4+ characters)", a.out)
	if err != nil {
		return err
	}
	if err := ValidateUsername(username); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	nickname, err := GetSimpleText(a.reader, "Nickname", a.out)
	if err != nil {
		return err
	}
	if err := ValidateNickname(nickname); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	password, err := GetPassword(a.out, "Password (6+ characters)")
	if err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	if err := ValidatePasswordConfirm(password, confirm); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.accounts.SignUp(ctx, username, password, nickname); err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			fmt.Fprintln(a.out, "That username is already taken.")
		} else {
			fmt.Fprintln(a.out, "Signup failed:", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Welcome aboard! You can log in now.")
	return nil
}
