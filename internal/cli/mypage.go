package cli

import (
	"context"
	"fmt"
)

func (a *App) MyPage(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	fmt.Fprintf(a.out, "Username: %s\n", sess.Username)
	fmt.Fprintf(a.out, "Nickname: %s\n", sess.Nickname)
	fmt.Fprintf(a.out, "Entries:  %d\n", len(a.diaries.ForOwner(sess.ID)))
	fmt.Fprintln(a.out, "Use 'update' to edit your profile or 'unregister' to delete your account.")
	return nil
}

// UpdateProfile edits username/password/nickname. Empty answers keep the
// current values; the stored password pre-fills the same way the original
// form did.
func (a *App) UpdateProfile(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	username, err := GetSimpleText(a.reader, fmt.Sprintf("Username [%s]", sess.Username), a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = sess.Username
	}
	if err := ValidateUsername(username); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	nickname, err := GetSimpleText(a.reader, fmt.Sprintf("Nickname [%s]", sess.Nickname), a.out)
	if err != nil {
		return err
	}
	if nickname == "" {
		nickname = sess.Nickname
	}
	if err := ValidateNickname(nickname); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	password, err := GetPassword(a.out, "Password (Enter keeps current)")
	if err != nil {
		return err
	}
	if password == "" {
		current, ok := a.accounts.CurrentPassword()
		if !ok {
			fmt.Fprintln(a.out, "Please log in first.")
			return nil
		}
		password = current
	} else {
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
	}

	if err := a.accounts.UpdateUser(ctx, username, password, nickname); err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) Unregister(ctx context.Context) error {
	if a.requireSession() == nil {
		return nil
	}

	confirmed, err := GetConfirm(a.reader, "Really delete your account and every entry?", a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	if err := a.accounts.DeleteUser(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not delete account:", err)
		return err
	}

	fmt.Fprintln(a.out, "Account deleted. Take care!")
	return nil
}
